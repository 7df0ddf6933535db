package codec

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NextPowerOfTwo returns the smallest power of two that is >= n. Values <= 1 yield 1.
// The caller must keep n small enough for the result to fit in T.
func NextPowerOfTwo[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(n-1))
}

// checkIndex reports whether i addresses a live element of a list of the given size.
// Negative indexes wrap to huge unsigned values and fail the same comparison.
func checkIndex(i, size int) bool { return uint(i) < uint(size) }
