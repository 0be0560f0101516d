package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(64)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if len(s.Values()) != 1 {
		t.Errorf("len should be 1, got %d", len(s.Values()))
	}

	s.Insert(10)
	s.Insert(3)
	if len(s.Values()) != 3 {
		t.Errorf("len should be 3, got %d", len(s.Values()))
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(64)
	for _, v := range []uint32{52, 2, 63, 0} {
		s.Insert(v)
	}

	expected := []uint32{52, 2, 63, 0}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range expected {
		if values[i] != v {
			t.Errorf("values[%d] = %d, want %d", i, values[i], v)
		}
	}
}

func TestSet_ReuseAfterClear(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	s.Insert(2)

	if s.Contains(1) {
		t.Error("stale sparse entry must not report membership")
	}
	if !s.Contains(2) || len(s.Values()) != 1 {
		t.Errorf("want {2}, got %v", s.Values())
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(4)
	if s.Contains(4) || s.Contains(1000) {
		t.Error("values past capacity are never members")
	}

	defer func() {
		if recover() == nil {
			t.Error("insert past capacity should panic")
		}
	}()
	s.Insert(4)
}
