package automaton

// Table is the automaton's transition function flattened into a lookup table.
//
// Entries are indexed by state<<8 | byte, so a transition is a single load
// instead of a switch. Rows for values past the last state stay Invalid.
//
// A Table is immutable after NewTable returns and safe for concurrent use.
type Table struct {
	next [1 << (StateBits + 8)]State
}

// NewTable builds the transition table from Step.
func NewTable() *Table {
	t := &Table{}
	for s := State(0); s < stateSentinel; s++ {
		for b := 0; b < 256; b++ {
			t.next[int(s)<<8|b] = Step(byte(b), s)
		}
	}
	return t
}

// Step returns the state reached from s after consuming b.
// s must be one of the automaton's states.
func (t *Table) Step(b byte, s State) State {
	return t.next[int(s&(1<<StateBits-1))<<8|int(b)]
}

// Run feeds p to the automaton starting from s and returns the final state.
func (t *Table) Run(s State, p []byte) State {
	for _, b := range p {
		s = t.Step(b, s)
	}
	return s
}

// Valid reports whether p is well-formed UTF-8.
func (t *Table) Valid(p []byte) bool {
	return t.Run(Ready, p) == Ready
}
