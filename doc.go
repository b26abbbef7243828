// Package scene provides a concurrency-safe object store addressed by
// reference counted handles.
//
// Objects live in compacting slots owned by a single goroutine, yet the
// handles that keep them alive can be cloned and released from any
// goroutine without locking. The trick is that handles never touch the
// slot table: cloning or releasing only pushes a deferred grab or
// release onto a lock-free queue, and the owning goroutine reconciles
// everything in an explicit collection pass.
//
// # Handles
//
//	s := scene.NewDefault[string]()
//
//	h := s.Insert("mesh")      // refcount 1, emits new(0)
//	h2 := h.Clone()            // deferred +1, usable immediately
//	go func() {
//		defer h2.Release()     // deferred -1, safe from any goroutine
//		// ...
//	}()
//
//	s.Get(h).Value()           // "mesh"
//
// Weak handles identify a slot without keeping it alive:
//
//	w := h.Downgrade()
//	if h3, ok := s.Upgrade(w); ok {
//		// slot still exists; h3 is a fresh counted handle
//		h3.Release()
//	}
//
// # Collection
//
// Nothing is ever removed outside GarbageCollect. The pass applies all
// pending grabs, then all pending releases, removing slots that reach
// zero and recording a drop event for each:
//
//	s.GarbageCollect()
//	for _, e := range s.Events() {
//		// e.Kind is EventNew or EventDrop
//	}
//	s.ClearEvents()
//
// A drop event for an index is always recorded before any new event
// that reuses the same index, so consumers can track identity across
// slot reuse. Call GarbageCollect from time to time: the deferred
// queues and the event buffer grow until drained.
//
// # Threading
//
// Insert, ID, Get, GetMut, Upgrade, GarbageCollect, Events, ClearEvents
// and Len belong to the goroutine that owns the Scene. Clone, Release
// and Downgrade are safe from any goroutine. Misuse that would corrupt
// bookkeeping, such as using a handle against a Scene that did not
// issue it or releasing a handle twice, panics rather than corrupting
// state.
package scene
