package scene

// Key is anything that addresses a slot by index: strong handles, weak
// handles, or a raw Index.
type Key interface {
	Index() int
}

// Index makes a raw slot index usable as a Map key.
type Index int

// Index implements Key.
func (i Index) Index() int {
	return int(i)
}

type mapSlot[T any] struct {
	value T
	set   bool
}

// Map associates side data with slot indices. It is a dense growable
// array, not a hash map: lookups are O(1) slice indexing and memory is
// proportional to the highest index ever set. The zero value is ready
// to use.
//
// A Map does not track object lifetimes; entries for collected slots
// simply linger until overwritten by a reused index.
type Map[T any] struct {
	data []mapSlot[T]
}

// Get returns the value stored under key, or false if none was set.
func (m *Map[T]) Get(key Key) (T, bool) {
	i := key.Index()
	if i < 0 || i >= len(m.data) || !m.data[i].set {
		var zero T
		return zero, false
	}
	return m.data[i].value, true
}

// GetMut returns a pointer to the value stored under key, or false if
// none was set.
func (m *Map[T]) GetMut(key Key) (*T, bool) {
	i := key.Index()
	if i < 0 || i >= len(m.data) || !m.data[i].set {
		return nil, false
	}
	return &m.data[i].value, true
}

// Set stores a value under key, growing the map as needed, and returns
// the previous value if one was set.
func (m *Map[T]) Set(key Key, value T) (T, bool) {
	i := key.Index()
	for len(m.data) <= i {
		m.data = append(m.data, mapSlot[T]{})
	}

	prev := m.data[i]
	m.data[i] = mapSlot[T]{value: value, set: true}
	return prev.value, prev.set
}
