package utf8lut

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/coregx/utf8lut/automaton"
	"github.com/coregx/utf8lut/lut"
	"github.com/coregx/utf8lut/simd"
)

// blockSize is the number of bytes folded into one state transition.
const blockSize = 8

// Validator checks UTF-8 eight bytes per state transition using compiled
// lookup tables.
//
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	tables *lut.Tables
	step   *automaton.Table
	config Config
}

// New creates a Validator with the given configuration.
//
// With the default MaxClosureRounds the Validator uses lut.Shared; otherwise
// it compiles its own tables, which takes a few milliseconds.
func New(config Config) (*Validator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var tables *lut.Tables
	if config.MaxClosureRounds == lut.DefaultConfig().MaxClosureRounds {
		tables = lut.Shared()
	} else {
		var err error
		tables, err = lut.Compile(config.lutConfig())
		if err != nil {
			return nil, err
		}
	}

	return &Validator{
		tables: tables,
		step:   sharedStepTable(),
		config: config,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(config Config) *Validator {
	v, err := New(config)
	if err != nil {
		panic("utf8lut: New: " + err.Error())
	}
	return v
}

var sharedStepTable = sync.OnceValue(automaton.NewTable)

var defaultValidator = sync.OnceValue(func() *Validator {
	return MustNew(DefaultConfig())
})

// Default returns the process-wide Validator built from DefaultConfig.
// The tables are compiled on first call.
func Default() *Validator {
	return defaultValidator()
}

// Config returns the configuration the Validator was built with.
func (v *Validator) Config() Config {
	return v.config
}

// Tables returns the compiled tables the Validator reads.
func (v *Validator) Tables() *lut.Tables {
	return v.tables
}

// Valid reports whether p is well-formed UTF-8.
//
// The leading len(p)%8 bytes go through the automaton one at a time. Every
// following 8-byte block is decoded as four byte pairs, joined pairwise in
// byte order and applied to the running state in one lookup.
func (v *Validator) Valid(p []byte) bool {
	head := len(p) % blockSize
	s := v.step.Run(automaton.Ready, p[:head])
	if s == automaton.Invalid {
		return false
	}

	t := v.tables
	for i := head; i < len(p); i += blockSize {
		if v.config.ASCIIFastPath && s == automaton.Ready {
			// ASCII keeps Ready in Ready.
			i += simd.ASCIIWords(p[i:])
			if i == len(p) {
				break
			}
		}

		// The lower-addressed byte of each pair is the low byte of the
		// decode index, whatever the host byte order.
		w := binary.LittleEndian.Uint64(p[i : i+blockSize])
		c0 := t.Decode(uint16(w))
		c1 := t.Decode(uint16(w >> 16))
		c2 := t.Decode(uint16(w >> 32))
		c3 := t.Decode(uint16(w >> 48))
		s = t.Concat(s, t.Join(t.Join(c0, c1), t.Join(c2, c3)))
		if s == automaton.Invalid {
			return false
		}
	}

	return s == automaton.Ready
}

// ValidString reports whether s is well-formed UTF-8.
// It does not copy s.
func (v *Validator) ValidString(s string) bool {
	return v.Valid(unsafe.Slice(unsafe.StringData(s), len(s)))
}
