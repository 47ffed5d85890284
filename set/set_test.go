package set

import (
	"testing"
)

func TestAddRemoveContains(t *testing.T) {
	s := New[string]()
	if s.Contains("a") {
		t.Error("empty set should not contain anything")
	}
	s.Add("a")
	s.Add("a")
	if !s.Contains("a") {
		t.Error("expected set to contain a")
	}
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1", s.Size())
	}
	s.Remove("a")
	if s.Contains("a") {
		t.Error("expected a to be removed")
	}
	// Removing an absent item is a no-op.
	s.Remove("a")
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
}

func TestClear(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")
	s.Clear()
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after Clear", s.Size())
	}
	s.Add("c")
	if !s.Contains("c") {
		t.Error("set should be usable after Clear")
	}
}
