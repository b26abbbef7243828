package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wippyai/scene/internal/queue"
	"go.uber.org/zap"
)

// state is the shared coordination point between a Scene and every
// handle it has issued. Handles push deferred operations onto the
// queues; the Scene drains them during GarbageCollect. The state lives
// as long as the Scene or any strong handle still refers to it.
type state struct {
	id       uuid.UUID
	grabs    *queue.Queue
	releases *queue.Queue
}

// Scene is a concurrency-safe object store addressed by reference
// counted handles. T is the payload type; E is the event type
// accumulated during insertion and collection.
//
// Insert, ID, Get, GetMut, Upgrade, GarbageCollect, Events, ClearEvents
// and Len must all be called from the single goroutine that owns the
// Scene. Handles, by contrast, may be cloned and released from any
// goroutine; their effects are reconciled at the next GarbageCollect.
type Scene[T, E any] struct {
	table   table[T]
	state   *state
	events  []E
	convert func(Event) E
}

// New creates an empty Scene. Lifecycle events are passed through
// convert before being accumulated, so callers can collect them as any
// type constructible from an Event.
func New[T, E any](convert func(Event) E) *Scene[T, E] {
	if convert == nil {
		panic("scene: nil event converter")
	}
	return &Scene[T, E]{
		state: &state{
			id:       uuid.New(),
			grabs:    queue.New(),
			releases: queue.New(),
		},
		convert: convert,
	}
}

// NewDefault creates an empty Scene that accumulates plain Events.
func NewDefault[T any]() *Scene[T, Event] {
	return New[T](func(e Event) Event { return e })
}

// Insert stores a payload in a fresh slot with a reference count of 1,
// records an EventNew, and returns the strong handle that accounts for
// that initial reference.
func (s *Scene[T, E]) Insert(payload T) *Id[T] {
	index := s.table.insert(payload)
	s.events = append(s.events, s.convert(Event{Kind: EventNew, Index: index}))
	return &Id[T]{state: s.state, index: index}
}

// ID returns a new strong handle to the slot at index, or false if no
// object lives there. On success a grab is recorded first, so the new
// handle is accounted for before it can be released.
func (s *Scene[T, E]) ID(index int) (*Id[T], bool) {
	if _, ok := s.table.get(index); !ok {
		return nil, false
	}
	s.state.grabs.Push(index)
	return &Id[T]{state: s.state, index: index}, true
}

// Get returns a read-only view of the object behind id. The handle must
// be live and issued by this Scene.
func (s *Scene[T, E]) Get(id *Id[T]) Ref[T] {
	return Ref[T]{entry: s.entryOf(id), id: id}
}

// GetMut returns a read-write view of the object behind id. The handle
// must be live and issued by this Scene.
func (s *Scene[T, E]) GetMut(id *Id[T]) Mut[T] {
	return Mut[T]{entry: s.entryOf(id), id: id}
}

func (s *Scene[T, E]) entryOf(id *Id[T]) *entry[T] {
	if id.state != s.state {
		panic(fmt.Sprintf("scene: handle from scene %s used against scene %s", id.state.id, s.state.id))
	}
	if id.released.Load() {
		panic(fmt.Sprintf("scene: lookup through released handle for slot %d", id.index))
	}
	e, ok := s.table.get(id.index)
	if !ok {
		panic(fmt.Sprintf("scene: no slot %d for live handle", id.index))
	}
	return e
}

// Upgrade returns a new strong handle for a weak one, or false if the
// object is gone. It succeeds iff the weak handle resolves to this
// Scene's shared state and the slot still exists; like ID, it records a
// grab before constructing the handle. A weak handle from a different
// or torn-down Scene yields false, never a handle into this Scene.
func (s *Scene[T, E]) Upgrade(w WeakId[T]) (*Id[T], bool) {
	if st := w.state.Value(); st == nil || st != s.state {
		return nil, false
	}
	if _, ok := s.table.get(w.index); !ok {
		return nil, false
	}
	s.state.grabs.Push(w.index)
	return &Id[T]{state: s.state, index: w.index}, true
}

// GarbageCollect drains all deferred operations and removes objects
// whose reference count reaches zero, recording an EventDrop for each.
// All pending grabs are applied before any release, so a drop for an
// index always precedes a later EventNew reusing that index.
//
// Neglecting to call this only grows the queues and the event buffer;
// nothing is ever removed outside a collection pass. New EventDrops may
// appear here, so consume events before clearing them.
func (s *Scene[T, E]) GarbageCollect() {
	var grabs, releases, removed int

	for {
		index, ok := s.state.grabs.Pop()
		if !ok {
			break
		}
		e, ok := s.table.get(index)
		if !ok {
			panic(fmt.Sprintf("scene: deferred grab for missing slot %d", index))
		}
		e.grab()
		grabs++
	}

	for {
		index, ok := s.state.releases.Pop()
		if !ok {
			break
		}
		e, ok := s.table.get(index)
		if !ok {
			panic(fmt.Sprintf("scene: deferred release for missing slot %d", index))
		}
		if e.release() {
			s.table.remove(index)
			s.events = append(s.events, s.convert(Event{Kind: EventDrop, Index: index}))
			removed++
		}
		releases++
	}

	Logger().Debug("collected deferred handle operations",
		zap.String("scene", s.state.id.String()),
		zap.Int("grabs", grabs),
		zap.Int("releases", releases),
		zap.Int("removed", removed))
}

// Events returns the lifecycle events accumulated since the last
// ClearEvents. The buffer grows without bound until cleared.
func (s *Scene[T, E]) Events() []E {
	return s.events
}

// ClearEvents discards all accumulated events.
func (s *Scene[T, E]) ClearEvents() {
	s.events = s.events[:0]
}

// Len returns the number of objects currently stored.
func (s *Scene[T, E]) Len() int {
	return s.table.len()
}
