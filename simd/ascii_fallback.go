//go:build !amd64

package simd

// ASCIIWords returns the length of the longest prefix of data made of whole
// 8-byte ASCII words. The result is a multiple of WordSize.
//
// On non-AMD64 platforms this is the pure Go SWAR loop.
func ASCIIWords(data []byte) int {
	return asciiWordsGeneric(data)
}
