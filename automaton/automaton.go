// Package automaton defines UTF-8 validity as a byte-at-a-time finite automaton.
//
// The automaton is the ground truth for every other validator in this module.
// It follows the well-formed byte sequence table of the Unicode standard:
//
//	00-7F
//	C2-DF   80-BF
//	E0      A0-BF   80-BF
//	E1-EC   80-BF   80-BF
//	ED      80-9F   80-BF
//	EE-EF   80-BF   80-BF
//	F0      90-BF   80-BF   80-BF
//	F1-F3   80-BF   80-BF   80-BF
//	F4      80-8F   80-BF   80-BF
//
// Lead bytes E0, ED, F0 and F4 get their own states because they narrow the
// range of the byte that follows them. That is how overlong encodings,
// UTF-16 surrogates and code points above U+10FFFF are rejected.
package automaton

import "fmt"

// State is a state of the UTF-8 automaton.
type State uint8

const (
	// Invalid is absorbing: every byte maps Invalid to Invalid.
	Invalid State = iota

	// Ready is the initial state and the only accepting state.
	Ready

	// Expect1Continuation expects the last continuation byte of a sequence.
	Expect1Continuation

	// ThreeByteLeadLow follows E0 and accepts A0-BF.
	ThreeByteLeadLow

	// ThreeByteLeadHigh follows ED and accepts 80-9F.
	ThreeByteLeadHigh

	// FourByteLead0 follows F0 and accepts 90-BF.
	FourByteLead0

	// FourByteLead1 follows F1-F3 and accepts 80-BF.
	FourByteLead1

	// FourByteLead2 follows F4 and accepts 80-8F.
	FourByteLead2

	// Expect2Continuations expects two more continuation bytes.
	Expect2Continuations

	// stateSentinel ends the enumeration.
	stateSentinel
)

const (
	// StateCount is the number of automaton states.
	StateCount = int(stateSentinel)

	// StateBits is the number of bits a state occupies in packed table indexes.
	StateBits = 4
)

// The full enumeration, sentinel included, must fit in StateBits.
var _ [1<<StateBits - int(stateSentinel) - 1]struct{}

// Continuation byte bounds.
const (
	contLo = 0x80
	contHi = 0xBF
)

var stateNames = [...]string{
	Invalid:              "Invalid",
	Ready:                "Ready",
	Expect1Continuation:  "Expect1Continuation",
	ThreeByteLeadLow:     "ThreeByteLeadLow",
	ThreeByteLeadHigh:    "ThreeByteLeadHigh",
	FourByteLead0:        "FourByteLead0",
	FourByteLead1:        "FourByteLead1",
	FourByteLead2:        "FourByteLead2",
	Expect2Continuations: "Expect2Continuations",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// IsValid reports whether s is one of the automaton's states.
func (s State) IsValid() bool {
	return s < stateSentinel
}

// Accepting reports whether input may end in state s.
func (s State) Accepting() bool {
	return s == Ready
}

// Step returns the state reached from s after consuming b.
// Step is total: values outside the enumeration behave like Invalid.
func Step(b byte, s State) State {
	switch s {
	case Ready:
		return stepLead(b)
	case Expect1Continuation:
		return accept(b, contLo, contHi, Ready)
	case ThreeByteLeadLow:
		return accept(b, 0xA0, contHi, Expect1Continuation)
	case ThreeByteLeadHigh:
		return accept(b, contLo, 0x9F, Expect1Continuation)
	case FourByteLead0:
		return accept(b, 0x90, contHi, Expect2Continuations)
	case FourByteLead1:
		return accept(b, contLo, contHi, Expect2Continuations)
	case FourByteLead2:
		return accept(b, contLo, 0x8F, Expect2Continuations)
	case Expect2Continuations:
		return accept(b, contLo, contHi, Expect1Continuation)
	default:
		return Invalid
	}
}

// stepLead handles the first byte of a sequence.
func stepLead(b byte) State {
	switch {
	case b <= 0x7F:
		return Ready
	case b >= 0xC2 && b <= 0xDF:
		return Expect1Continuation
	case b == 0xE0:
		return ThreeByteLeadLow
	case b >= 0xE1 && b <= 0xEC, b == 0xEE, b == 0xEF:
		return Expect2Continuations
	case b == 0xED:
		return ThreeByteLeadHigh
	case b == 0xF0:
		return FourByteLead0
	case b >= 0xF1 && b <= 0xF3:
		return FourByteLead1
	case b == 0xF4:
		return FourByteLead2
	default:
		// 80-C1 and F5-FF never start a sequence.
		return Invalid
	}
}

func accept(b, lo, hi byte, next State) State {
	if b >= lo && b <= hi {
		return next
	}
	return Invalid
}

// Run feeds p to the automaton starting from s and returns the final state.
func Run(s State, p []byte) State {
	for _, b := range p {
		s = Step(b, s)
		if s == Invalid {
			return Invalid
		}
	}
	return s
}

// Valid reports whether p is well-formed UTF-8.
//
// Every byte of p is consumed; a NUL byte is ordinary ASCII. Input that ends
// inside a multi-byte sequence is invalid.
func Valid(p []byte) bool {
	return Run(Ready, p) == Ready
}

// ValidUntilNUL reports whether the bytes of p before the first NUL byte
// (or all of p, if it holds none) are well-formed UTF-8.
// It is meant for NUL-terminated buffers handed over from C.
func ValidUntilNUL(p []byte) bool {
	s := Ready
	for _, b := range p {
		if b == 0 {
			break
		}
		s = Step(b, s)
		if s == Invalid {
			return false
		}
	}
	return s == Ready
}
