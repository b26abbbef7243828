package queue

import (
	"sync"
	"testing"
)

func TestQueue_EmptyPop(t *testing.T) {
	q := New()
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue should report empty")
	}
}

func TestQueue_FIFO(t *testing.T) {
	q := New()
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	for i := 0; i < 100; i++ {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Queue empty after %d pops, expected 100", i)
		}
		if v != i {
			t.Fatalf("Expected %d, got %d", i, v)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Queue should be empty after draining")
	}
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	q := New()
	q.Push(1)
	q.Push(2)
	if v, _ := q.Pop(); v != 1 {
		t.Fatalf("Expected 1, got %d", v)
	}
	q.Push(3)
	if v, _ := q.Pop(); v != 2 {
		t.Fatalf("Expected 2, got %d", v)
	}
	if v, _ := q.Pop(); v != 3 {
		t.Fatalf("Expected 3, got %d", v)
	}
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 1000

	q := New()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	last := make([]int, producers)
	for p := range last {
		last[p] = -1
	}

	count := 0
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		if seen[v] {
			t.Fatalf("Value %d popped twice", v)
		}
		seen[v] = true

		// Per-producer order must be preserved.
		p := v / perProducer
		i := v % perProducer
		if i <= last[p] {
			t.Fatalf("Producer %d values out of order: %d after %d", p, i, last[p])
		}
		last[p] = i
		count++
	}

	if count != producers*perProducer {
		t.Fatalf("Expected %d values, got %d", producers*perProducer, count)
	}
}
