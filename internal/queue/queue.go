// Package queue provides the unbounded lock-free queues that carry
// deferred handle operations from arbitrary goroutines to the single
// goroutine that runs collection passes.
package queue

import "sync/atomic"

type node struct {
	next  atomic.Pointer[node]
	index int
}

// Queue is an unbounded multi-producer/single-consumer FIFO of slot
// indices, a linked queue in the style of Michael and Scott. Push is
// lock-free and safe to call from any number of goroutines; Pop must
// only be called by the single draining consumer.
type Queue struct {
	head atomic.Pointer[node]
	tail atomic.Pointer[node]
}

// New creates an empty queue.
func New() *Queue {
	q := &Queue{}
	stub := &node{}
	q.head.Store(stub)
	q.tail.Store(stub)
	return q
}

// Push appends index to the queue. It never blocks and never fails.
func (q *Queue) Push(index int) {
	n := &node{index: index}
	for {
		tail := q.tail.Load()
		if tail.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(tail, n)
			return
		}
		// Tail fell behind a concurrent push; help it forward and retry.
		q.tail.CompareAndSwap(tail, tail.next.Load())
	}
}

// Pop removes and returns the oldest index, or false if the queue is
// empty. Indices pushed before a drain started are observed in FIFO
// order.
func (q *Queue) Pop() (int, bool) {
	head := q.head.Load()
	next := head.next.Load()
	if next == nil {
		return 0, false
	}
	q.head.Store(next)
	return next.index, true
}
