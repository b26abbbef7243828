package scene

import (
	"sync/atomic"
	"weak"
)

// Id is a strong handle to an object stored in a Scene. Holding a live
// Id keeps the object's slot alive across collection passes.
//
// Clone, Release and Downgrade are safe to call from any goroutine: they
// never touch the slot table, they only record deferred operations that
// the owning goroutine applies during the next GarbageCollect.
//
// An Id must be released exactly once. Using a handle after releasing it
// is a programming error and panics.
type Id[T any] struct {
	state    *state
	index    int
	released atomic.Bool
}

// Index returns the slot index this handle refers to.
func (id *Id[T]) Index() int {
	return id.index
}

// Clone records a deferred grab for the slot and returns a new
// independent handle to it. Clone never blocks and always succeeds; the
// reference count is incremented at the next collection pass.
func (id *Id[T]) Clone() *Id[T] {
	if id.released.Load() {
		panic("scene: Clone of released handle")
	}
	id.state.grabs.Push(id.index)
	return &Id[T]{state: id.state, index: id.index}
}

// Release records a deferred release for the slot. The reference count
// is decremented, and the object possibly removed, at the next
// collection pass. Release never blocks.
func (id *Id[T]) Release() {
	if id.released.Swap(true) {
		panic("scene: handle released twice")
	}
	id.state.releases.Push(id.index)
}

// Downgrade returns a weak handle to the same slot. The weak handle does
// not keep the slot alive and does not affect reference counts.
func (id *Id[T]) Downgrade() WeakId[T] {
	if id.released.Load() {
		panic("scene: Downgrade of released handle")
	}
	return WeakId[T]{state: weak.Make(id.state), index: id.index}
}

// Equal reports whether two handles were issued by the same Scene and
// refer to the same slot.
func (id *Id[T]) Equal(other *Id[T]) bool {
	return id.state == other.state && id.index == other.index
}

// WeakId identifies a slot without keeping it alive. It may outlive the
// object, or the Scene itself, in which case Scene.Upgrade reports not
// found. WeakIds are plain values; copying one clones it.
type WeakId[T any] struct {
	state weak.Pointer[state]
	index int
}

// Index returns the slot index this handle refers to.
func (w WeakId[T]) Index() int {
	return w.index
}

// Equal reports whether two weak handles came from the same Scene and
// refer to the same slot.
func (w WeakId[T]) Equal(other WeakId[T]) bool {
	return w.state == other.state && w.index == other.index
}

// Ref is a read-only view of a stored object, valid until the next
// operation on the Scene that issued it.
type Ref[T any] struct {
	entry *entry[T]
	id    *Id[T]
}

// ID returns the handle this view was obtained through.
func (r Ref[T]) ID() *Id[T] {
	return r.id
}

// Value returns the stored payload.
func (r Ref[T]) Value() T {
	return r.entry.payload
}

// Mut is a read-write view of a stored object, valid until the next
// operation on the Scene that issued it.
type Mut[T any] struct {
	entry *entry[T]
	id    *Id[T]
}

// ID returns the handle this view was obtained through.
func (m Mut[T]) ID() *Id[T] {
	return m.id
}

// Value returns a pointer to the stored payload.
func (m Mut[T]) Value() *T {
	return &m.entry.payload
}

// Set replaces the stored payload.
func (m Mut[T]) Set(v T) {
	m.entry.payload = v
}
