//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
var hasAVX2 = cpu.X86.HasAVX2

// avx2Size is the number of bytes the AVX2 kernel tests per iteration.
const avx2Size = 32

// Assembly function declaration for the AVX2 ASCII scan.
// It is implemented in ascii_amd64.s and returns the length of the longest
// prefix of data made of whole 32-byte ASCII chunks.
//
//go:noescape
func asciiChunksAVX2(data []byte) int

// ASCIIWords returns the length of the longest prefix of data made of whole
// 8-byte ASCII words. The result is a multiple of WordSize; a trailing
// partial word is never counted.
//
// With AVX2 the kernel skips 32-byte ASCII chunks (VPMOVMSKB collects the
// high bit of every lane) and the SWAR loop locates the failing word.
//
// Example:
//
//	data := []byte("0123456789abcdef\xc3\xa9")
//	n := simd.ASCIIWords(data) // 16
func ASCIIWords(data []byte) int {
	if hasAVX2 && len(data) >= avx2Size {
		n := asciiChunksAVX2(data)
		return n + asciiWordsGeneric(data[n:])
	}
	return asciiWordsGeneric(data)
}
