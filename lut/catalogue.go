package lut

import (
	"fmt"

	"github.com/coregx/utf8lut/internal/conv"
	"github.com/coregx/utf8lut/internal/sparse"
)

// ClassID identifies a Behavior in a Catalogue.
type ClassID uint8

const (
	// ClassBits is the width of a class id in packed table indexes.
	ClassBits = 6

	// MaxClasses bounds the number of distinct Behaviors a Catalogue may hold.
	// It sizes the join and concat tables.
	MaxClasses = 1 << ClassBits
)

// Catalogue assigns dense class ids to distinct Behaviors in discovery order.
type Catalogue struct {
	behaviors []Behavior
	index     map[Behavior]ClassID
}

// NewCatalogue returns an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		behaviors: make([]Behavior, 0, MaxClasses),
		index:     make(map[Behavior]ClassID, MaxClasses),
	}
}

// Len returns the number of classes.
func (c *Catalogue) Len() int {
	return len(c.behaviors)
}

// Behavior returns the Behavior of class id.
func (c *Catalogue) Behavior(id ClassID) Behavior {
	return c.behaviors[id]
}

// Lookup returns the class id of b, if b is catalogued.
func (c *Catalogue) Lookup(b Behavior) (ClassID, bool) {
	id, ok := c.index[b]
	return id, ok
}

// Add catalogues b and returns its class id. added is false when b was
// already present. Adding a class past MaxClasses fails with
// ErrCatalogueOverflow and leaves the catalogue unchanged.
func (c *Catalogue) Add(b Behavior) (id ClassID, added bool, err error) {
	if id, ok := c.index[b]; ok {
		return id, false, nil
	}
	if len(c.behaviors) >= MaxClasses {
		return 0, false, &CompileError{
			Kind:    CatalogueOverflow,
			Message: fmt.Sprintf("more than %d distinct behaviors", MaxClasses),
		}
	}
	id = ClassID(conv.IntToUint8(len(c.behaviors)))
	c.behaviors = append(c.behaviors, b)
	c.index[b] = id
	return id, true, nil
}

// Close adds the composition of every ordered pair of classes until a round
// discovers nothing new. It returns the number of rounds run, including the
// final round that found nothing.
//
// Each round only composes pairs involving a class discovered in the round
// before; pairs of older classes were composed already. If maxRounds rounds
// pass without reaching a fixed point, Close fails with ErrClosureUnstable.
func (c *Catalogue) Close(maxRounds int) (int, error) {
	frontier := sparse.New(MaxClasses)
	next := sparse.New(MaxClasses)
	for id := range c.behaviors {
		frontier.Insert(conv.IntToUint32(id))
	}

	for round := 1; round <= maxRounds; round++ {
		n := len(c.behaviors)
		for _, f := range frontier.Values() {
			for b := 0; b < n; b++ {
				bid := conv.IntToUint32(b)
				if err := c.compose(f, bid, next); err != nil {
					return round, err
				}
				// Pairs of two frontier classes are covered with f first.
				if !frontier.Contains(bid) {
					if err := c.compose(bid, f, next); err != nil {
						return round, err
					}
				}
			}
		}
		if next.IsEmpty() {
			return round, nil
		}
		frontier, next = next, frontier
		next.Clear()
	}

	return maxRounds, &CompileError{
		Kind:    ClosureUnstable,
		Message: fmt.Sprintf("no fixed point after %d rounds (%d classes)", maxRounds, len(c.behaviors)),
	}
}

// compose catalogues the composition of classes first and second, recording
// a newly added class in discovered.
func (c *Catalogue) compose(first, second uint32, discovered *sparse.Set) error {
	id, added, err := c.Add(c.behaviors[first].Then(c.behaviors[second]))
	if err != nil {
		return err
	}
	if added {
		discovered.Insert(uint32(id))
	}
	return nil
}
