package scene

import "testing"

func TestId_Equality(t *testing.T) {
	s := NewDefault[string]()
	h := s.Insert("a")
	other := s.Insert("b")

	c := h.Clone()
	if !h.Equal(c) {
		t.Fatal("A handle and its clone should be equal")
	}
	if h.Equal(other) {
		t.Fatal("Handles to different slots should not be equal")
	}

	foreign := NewDefault[string]().Insert("a")
	if h.Equal(foreign) {
		t.Fatal("Same index in a different scene should not be equal")
	}
}

func TestWeakId_Equality(t *testing.T) {
	s := NewDefault[string]()
	h := s.Insert("a")

	w1 := h.Downgrade()
	w2 := h.Downgrade()
	if !w1.Equal(w2) {
		t.Fatal("Weak handles to the same slot should be equal")
	}
	if w1.Index() != h.Index() {
		t.Fatalf("Weak index %d should match handle index %d", w1.Index(), h.Index())
	}

	// WeakIds are values; copying clones them.
	w3 := w1
	if !w3.Equal(w1) {
		t.Fatal("A copied weak handle should equal the original")
	}

	wf := NewDefault[string]().Insert("a").Downgrade()
	if w1.Equal(wf) {
		t.Fatal("Weak handles from different scenes should not be equal")
	}
}

func TestId_DowngradeDoesNotCount(t *testing.T) {
	s := NewDefault[string]()
	h := s.Insert("a")

	w := h.Downgrade()
	_ = w

	h.Release()
	s.GarbageCollect()
	if s.Len() != 0 {
		t.Fatal("Weak handles must not keep the slot alive")
	}
}
