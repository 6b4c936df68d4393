package core

import "math/bits"

// IsPowerOfTwo reports whether n is a positive power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n, assuming n is a power of two.
func Log2(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// ReverseBits reverses the lower nbits bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, nbits int) int {
	result := 0
	for range nbits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReversalIndices returns the bit-reversal permutation for a
// power-of-two length n. It returns nil when n is not a power of two.
func BitReversalIndices(n int) []int {
	if !IsPowerOfTwo(n) {
		return nil
	}

	idx := make([]int, n)
	nbits := Log2(n)
	for i := range n {
		idx[i] = ReverseBits(i, nbits)
	}

	return idx
}
