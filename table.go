package scene

import "fmt"

// entry holds one stored object together with its live reference count.
// The count is only ever touched by the collection pass.
type entry[T any] struct {
	payload T
	refs    int
}

// grab accounts for one more strong handle.
func (e *entry[T]) grab() {
	e.refs++
}

// release drops one strong handle and reports whether the entry is now
// unreferenced and must be removed.
func (e *entry[T]) release() bool {
	e.refs--
	return e.refs == 0
}

type tableSlot[T any] struct {
	entry entry[T]
	live  bool
}

// table is a compacting slot store. Freed indices are recycled through a
// free list so memory stays bounded under insert/remove churn. The zero
// value is ready to use.
//
// The table is not safe for concurrent use; it belongs exclusively to the
// goroutine that owns the Scene.
type table[T any] struct {
	slots    []tableSlot[T]
	freeList []int
}

// insert stores a payload with an initial reference count of 1 and
// returns its slot index, reusing a freed index when one is available.
func (t *table[T]) insert(payload T) int {
	s := tableSlot[T]{
		entry: entry[T]{payload: payload, refs: 1},
		live:  true,
	}

	if n := len(t.freeList); n > 0 {
		index := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.slots[index] = s
		return index
	}

	t.slots = append(t.slots, s)
	return len(t.slots) - 1
}

// get returns the entry at index, or false if no live slot exists there.
func (t *table[T]) get(index int) (*entry[T], bool) {
	if index < 0 || index >= len(t.slots) || !t.slots[index].live {
		return nil, false
	}
	return &t.slots[index].entry, true
}

// remove frees the slot at index for reuse. The slot must exist and its
// reference count must be exactly zero; anything else means the
// collection bookkeeping is corrupt, which is unrecoverable.
func (t *table[T]) remove(index int) {
	e, ok := t.get(index)
	if !ok {
		panic(fmt.Sprintf("scene: remove of missing slot %d", index))
	}
	if e.refs != 0 {
		panic(fmt.Sprintf("scene: remove of slot %d with %d live references", index, e.refs))
	}

	t.slots[index] = tableSlot[T]{}
	t.freeList = append(t.freeList, index)
}

// len returns the number of live slots.
func (t *table[T]) len() int {
	return len(t.slots) - len(t.freeList)
}
