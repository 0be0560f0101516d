package lut

import (
	"errors"
	"testing"

	"github.com/coregx/utf8lut/automaton"
)

// distinctBehavior returns a Behavior unique to i for i < 81.
func distinctBehavior(i int) Behavior {
	var b Behavior
	b[0] = automaton.State(i % automaton.StateCount)
	b[1] = automaton.State(i / automaton.StateCount % automaton.StateCount)
	return b
}

func TestCatalogue_Add(t *testing.T) {
	c := NewCatalogue()

	id, added, err := c.Add(Identity())
	if err != nil || !added || id != 0 {
		t.Fatalf("Add(identity) = %d, %v, %v", id, added, err)
	}
	id, added, err = c.Add(Identity())
	if err != nil || added || id != 0 {
		t.Fatalf("second Add(identity) = %d, %v, %v", id, added, err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	got, ok := c.Lookup(Identity())
	if !ok || got != 0 {
		t.Errorf("Lookup(identity) = %d, %v", got, ok)
	}
	if _, ok := c.Lookup(BehaviorOf([]byte{0xFF})); ok {
		t.Error("Lookup found an uncatalogued behavior")
	}
}

func TestCatalogue_Overflow(t *testing.T) {
	c := NewCatalogue()
	for i := 0; i < MaxClasses; i++ {
		if _, _, err := c.Add(distinctBehavior(i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}

	_, _, err := c.Add(distinctBehavior(MaxClasses))
	if !errors.Is(err, ErrCatalogueOverflow) {
		t.Fatalf("error = %v, want ErrCatalogueOverflow", err)
	}
	if c.Len() != MaxClasses {
		t.Errorf("Len() = %d after overflow, want %d", c.Len(), MaxClasses)
	}

	// Existing members still resolve when full.
	if _, added, err := c.Add(distinctBehavior(3)); err != nil || added {
		t.Errorf("re-adding a member when full = %v, %v", added, err)
	}
}

func TestCatalogue_CloseOverflow(t *testing.T) {
	// Affine maps over the state indexes compose into up to 81 distinct
	// maps; the catalogue must report the overflow, not truncate.
	c := NewCatalogue()
	for i := 0; i < 9; i++ {
		var b Behavior
		for s := range b {
			b[s] = automaton.State((s*(i+2) + i) % automaton.StateCount)
		}
		if _, _, err := c.Add(b); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}

	_, err := c.Close(8)
	if !errors.Is(err, ErrCatalogueOverflow) {
		t.Errorf("Close error = %v, want ErrCatalogueOverflow", err)
	}
}

func TestCatalogue_CloseFixedPoint(t *testing.T) {
	c := NewCatalogue()
	c.Add(BehaviorOf([]byte("a")))
	c.Add(BehaviorOf([]byte{0xC3}))
	c.Add(BehaviorOf([]byte{0xA9}))

	rounds, err := c.Close(16)
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rounds < 2 {
		t.Errorf("rounds = %d, want at least 2", rounds)
	}

	n := c.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if _, ok := c.Lookup(c.Behavior(ClassID(a)).Then(c.Behavior(ClassID(b)))); !ok {
				t.Fatalf("composition of %d and %d missing after Close", a, b)
			}
		}
	}
}

func TestCatalogue_CloseEmpty(t *testing.T) {
	rounds, err := NewCatalogue().Close(1)
	if err != nil || rounds != 1 {
		t.Errorf("Close on empty catalogue = %d, %v", rounds, err)
	}
}

// TestCatalogue_CloseFromPairs closes the two-byte atoms directly and checks
// that iterating only the frontier still covers both composition orders.
func TestCatalogue_CloseFromPairs(t *testing.T) {
	c := NewCatalogue()
	for w := 0; w < PairCount; w++ {
		if _, _, err := c.Add(pairBehavior(uint16(w))); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	rounds, err := c.Close(DefaultConfig().MaxClosureRounds)
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rounds != 2 || c.Len() != 52 {
		t.Errorf("Close = %d rounds, %d classes; want 2 rounds, 52 classes", rounds, c.Len())
	}

	n := c.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if _, ok := c.Lookup(c.Behavior(ClassID(a)).Then(c.Behavior(ClassID(b)))); !ok {
				t.Fatalf("composition of %d and %d missing after Close", a, b)
			}
		}
	}
}
