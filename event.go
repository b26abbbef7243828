package scene

import "fmt"

// EventKind discriminates lifecycle events emitted by a Scene.
type EventKind uint8

const (
	// EventNew is emitted when a new object is inserted into the scene.
	EventNew EventKind = iota

	// EventDrop is emitted when an object is removed during a collection
	// pass. A drop for an index is always emitted before any EventNew that
	// reuses the same index.
	EventDrop
)

func (k EventKind) String() string {
	switch k {
	case EventNew:
		return "new"
	case EventDrop:
		return "drop"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event describes a change to the set of objects stored in a Scene.
// Scenes are parametric over the event type they accumulate; any type
// constructible from an Event can be used (see New).
type Event struct {
	Index int
	Kind  EventKind
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}
