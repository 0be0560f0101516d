package lut

import (
	"strings"

	"github.com/coregx/utf8lut/automaton"
)

// Behavior is the net effect of a byte block on the automaton: for every start
// state, the state the block leaves the automaton in.
//
// Two blocks with equal Behaviors are interchangeable for validation whatever
// their bytes are. The automaton is deterministic, so the set of
// (start, end) pairs has exactly one pair per start state and is stored as an
// array indexed by start state. Behavior is comparable and usable as a map key.
type Behavior [automaton.StateCount]automaton.State

// Pair is one (start, end) element of a Behavior.
type Pair struct {
	Start automaton.State
	End   automaton.State
}

// Identity returns the Behavior of the empty block.
func Identity() Behavior {
	var b Behavior
	for s := range b {
		b[s] = automaton.State(s)
	}
	return b
}

// BehaviorOf runs block from every start state.
func BehaviorOf(block []byte) Behavior {
	var b Behavior
	for s := range b {
		b[s] = automaton.Run(automaton.State(s), block)
	}
	return b
}

// pairBehavior is BehaviorOf for a two-byte block packed as first | second<<8.
func pairBehavior(w uint16) Behavior {
	first, second := byte(w), byte(w>>8)
	var b Behavior
	for s := range b {
		b[s] = automaton.Step(second, automaton.Step(first, automaton.State(s)))
	}
	return b
}

// Then composes b with next: the Behavior of running b's block followed by
// next's block. Composition is associative but not commutative.
func (b Behavior) Then(next Behavior) Behavior {
	var out Behavior
	for s, mid := range b {
		out[s] = next[mid]
	}
	return out
}

// Apply returns the state the block leaves the automaton in when started
// from s. Values outside the enumeration map to Invalid.
func (b Behavior) Apply(s automaton.State) automaton.State {
	if int(s) >= len(b) {
		return automaton.Invalid
	}
	return b[s]
}

// Pairs returns the (start, end) pairs ordered by start state.
func (b Behavior) Pairs() []Pair {
	pairs := make([]Pair, len(b))
	for s, end := range b {
		pairs[s] = Pair{Start: automaton.State(s), End: end}
	}
	return pairs
}

// String lists the pairs whose end state is not Invalid, for example
// "{Ready->Ready}". A Behavior that invalidates every start prints "{}".
func (b Behavior) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, p := range b.Pairs() {
		if p.End == automaton.Invalid {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(p.Start.String())
		sb.WriteString("->")
		sb.WriteString(p.End.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
