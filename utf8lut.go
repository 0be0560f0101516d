// Package utf8lut validates UTF-8 with lookup tables compiled from the
// byte-at-a-time UTF-8 automaton.
//
// Instead of one state transition per byte, the validator decodes byte pairs
// into behavior classes, joins four of them into the class of an 8-byte
// block and advances the automaton once per block. The tables are derived
// at first use from the automaton itself (see package lut), so the fast path
// is correct by construction and behaves exactly like the reference.
//
// Basic usage:
//
//	if !utf8lut.Valid(data) {
//	    return errors.New("input is not UTF-8")
//	}
//
// Custom configuration:
//
//	v, err := utf8lut.New(utf8lut.DefaultConfig().WithASCIIFastPath(false))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok := v.Valid(data)
//
// The answer is only valid or not valid: no offsets, no decoded runes. Each
// call checks one complete buffer; a multi-byte sequence split across two
// calls is reported invalid by both.
package utf8lut

import "github.com/coregx/utf8lut/automaton"

// Valid reports whether p is well-formed UTF-8, using the Default validator.
//
// Example:
//
//	utf8lut.Valid([]byte("h\xc3\xa9llo")) // true
//	utf8lut.Valid([]byte{0xED, 0xA0, 0x80}) // false: UTF-16 surrogate
func Valid(p []byte) bool {
	return Default().Valid(p)
}

// ValidString reports whether s is well-formed UTF-8, using the Default
// validator.
func ValidString(s string) bool {
	return Default().ValidString(s)
}

// ValidReference reports whether p is well-formed UTF-8 by stepping the
// automaton one byte at a time. It needs no tables and always agrees with
// Valid.
func ValidReference(p []byte) bool {
	return automaton.Valid(p)
}
