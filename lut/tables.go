// Package lut compiles the UTF-8 automaton into lookup tables that validate
// two bytes per decode and eight bytes per state transition.
//
// The compiler runs every two-byte value from every automaton state and
// groups the values by their Behavior, the start-to-end state mapping they
// induce. The distinct Behaviors, closed under composition, form a small
// catalogue (52 classes for UTF-8). Three tables are emitted from it:
//
//   - decode maps a two-byte value to its class.
//   - join maps two classes, applied in order, to the class of their
//     composition.
//   - concat maps a running state and a class to the resulting state.
//
// An eight-byte block is then four decodes, three joins arranged as a
// balanced tree in byte order, and one concat.
//
// Tables are immutable once compiled and safe for concurrent use. Shared
// returns tables compiled once per process.
package lut

import (
	"sync"

	"github.com/coregx/utf8lut/automaton"
	"github.com/coregx/utf8lut/internal/conv"
)

const (
	// PairCount is the number of two-byte values.
	PairCount = 1 << 16

	joinSize   = MaxClasses << ClassBits
	concatSize = MaxClasses << automaton.StateBits
)

// Tables holds the compiled lookup tables.
type Tables struct {
	decode [PairCount]ClassID
	join   [joinSize]ClassID
	concat [concatSize]automaton.State

	catalogue *Catalogue
	atoms     int
	rounds    int
}

// Compile builds the lookup tables from the automaton.
//
// It returns an error if cfg is invalid, if closure does not reach a fixed
// point within cfg.MaxClosureRounds, or if more than MaxClasses distinct
// Behaviors appear. Partial tables are never returned.
func Compile(cfg Config) (*Tables, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Tables{catalogue: NewCatalogue()}

	// Step 1: catalogue the Behavior of every two-byte value.
	for w := 0; w < PairCount; w++ {
		id, _, err := t.catalogue.Add(pairBehavior(conv.IntToUint16(w)))
		if err != nil {
			return nil, err
		}
		t.decode[w] = id
	}
	t.atoms = t.catalogue.Len()

	// Step 2: close under composition so every join has a class.
	rounds, err := t.catalogue.Close(cfg.MaxClosureRounds)
	if err != nil {
		return nil, err
	}
	t.rounds = rounds

	// Step 3: emit join and concat.
	n := t.catalogue.Len()
	for a := 0; a < n; a++ {
		first := t.catalogue.behaviors[a]
		for b := 0; b < n; b++ {
			id, ok := t.catalogue.Lookup(first.Then(t.catalogue.behaviors[b]))
			if !ok {
				// Close guarantees membership.
				panic("lut: composition missing from closed catalogue")
			}
			t.join[a<<ClassBits|b] = id
		}
		for s, end := range first {
			t.concat[a<<automaton.StateBits|s] = end
		}
	}

	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(cfg Config) *Tables {
	t, err := Compile(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

var shared = sync.OnceValues(func() (*Tables, error) {
	return Compile(DefaultConfig())
})

// Shared returns the process-wide tables, compiling them on first use.
// It panics if compilation fails: every validation would be wrong otherwise.
func Shared() *Tables {
	t, err := shared()
	if err != nil {
		panic(err)
	}
	return t
}

// Decode returns the class of the two-byte value w.
// The byte that comes first in the input is the low byte of w.
func (t *Tables) Decode(w uint16) ClassID {
	return t.decode[w]
}

// Join returns the class of applying first and then second.
func (t *Tables) Join(first, second ClassID) ClassID {
	return t.join[int(first&(MaxClasses-1))<<ClassBits|int(second&(MaxClasses-1))]
}

// Concat returns the state reached by applying class c from state s.
func (t *Tables) Concat(s automaton.State, c ClassID) automaton.State {
	return t.concat[int(c&(MaxClasses-1))<<automaton.StateBits|int(s&(1<<automaton.StateBits-1))]
}

// NumClasses returns the number of classes in the catalogue.
func (t *Tables) NumClasses() int {
	return t.catalogue.Len()
}

// NumAtoms returns the number of distinct two-byte Behaviors.
func (t *Tables) NumAtoms() int {
	return t.atoms
}

// ClosureRounds returns the number of rounds closure took to reach a fixed
// point.
func (t *Tables) ClosureRounds() int {
	return t.rounds
}

// Behavior returns the Behavior of class id.
// Panics if id >= NumClasses.
func (t *Tables) Behavior(id ClassID) Behavior {
	return t.catalogue.Behavior(id)
}

// Size returns the memory footprint of the three tables in bytes.
func (t *Tables) Size() int {
	return len(t.decode) + len(t.join) + len(t.concat)
}
