package scene

import "testing"

func TestTable_InsertGet(t *testing.T) {
	var tb table[string]

	i := tb.insert("a")
	if i != 0 {
		t.Fatalf("First insert should use index 0, got %d", i)
	}
	j := tb.insert("b")
	if j != 1 {
		t.Fatalf("Second insert should use index 1, got %d", j)
	}

	e, ok := tb.get(i)
	if !ok {
		t.Fatal("get failed for live slot")
	}
	if e.payload != "a" {
		t.Fatalf("Expected 'a', got %q", e.payload)
	}
	if e.refs != 1 {
		t.Fatalf("Fresh slot should have 1 ref, got %d", e.refs)
	}
}

func TestTable_GetAbsent(t *testing.T) {
	var tb table[string]
	tb.insert("a")

	if _, ok := tb.get(-1); ok {
		t.Fatal("get with negative index should fail")
	}
	if _, ok := tb.get(5); ok {
		t.Fatal("get past the end should fail")
	}
}

func TestTable_IndexReuse(t *testing.T) {
	var tb table[string]
	tb.insert("a")
	tb.insert("b")
	tb.insert("c")

	e, _ := tb.get(1)
	e.refs = 0
	tb.remove(1)

	if _, ok := tb.get(1); ok {
		t.Fatal("Removed slot should not be retrievable")
	}
	if tb.len() != 2 {
		t.Fatalf("Expected len 2 after removal, got %d", tb.len())
	}

	i := tb.insert("d")
	if i != 1 {
		t.Fatalf("Insert should reuse freed index 1, got %d", i)
	}
	if tb.len() != 3 {
		t.Fatalf("Expected len 3, got %d", tb.len())
	}
}

func TestTable_RemoveLiveRefsPanics(t *testing.T) {
	var tb table[string]
	i := tb.insert("a")

	defer func() {
		if recover() == nil {
			t.Fatal("remove of slot with live refs should panic")
		}
	}()
	tb.remove(i)
}

func TestTable_RemoveMissingPanics(t *testing.T) {
	var tb table[string]

	defer func() {
		if recover() == nil {
			t.Fatal("remove of missing slot should panic")
		}
	}()
	tb.remove(0)
}
