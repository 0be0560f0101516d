// Package simd provides word-at-a-time ASCII scanning for the validators.
//
// ASCII bytes leave the UTF-8 automaton in Ready, so a validator sitting in
// Ready can skip a run of ASCII words without touching its tables. The scans
// use SWAR (SIMD Within A Register): eight bytes are loaded into a uint64 and
// their high bits are tested with a single AND.
//
// On x86-64 CPUs with AVX2 the scan runs 32 bytes per iteration in an
// assembly kernel; the feature flag comes from golang.org/x/sys/cpu. All other
// platforms use the pure Go SWAR loop.
package simd

import (
	"encoding/binary"
)

const (
	// WordSize is the number of bytes tested per SWAR load.
	WordSize = 8

	// hi8 has the high bit of every byte lane set.
	hi8 = uint64(0x8080808080808080)
)

// asciiWordsGeneric returns the length of the longest prefix of data made of
// whole 8-byte ASCII words. The result is a multiple of WordSize.
func asciiWordsGeneric(data []byte) int {
	idx := 0
	for idx+WordSize <= len(data) {
		// Byte order is irrelevant: only the high bit of each lane is tested.
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return idx
		}
		idx += WordSize
	}
	return idx
}

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
func IsASCII(data []byte) bool {
	for _, b := range data[ASCIIWords(data):] {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
