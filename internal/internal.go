package internal

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// DepthBudget returns the recursion budget of introsort for a range of the
// given size, which is 2 * floor(log2(size)). Sizes 0 and 1 yield 0.
func DepthBudget(size int) int {
	switch {
	case size > 1:
		return 2 * (bits.Len(uint(size)) - 1)
	case size >= 0:
		return 0
	default:
		panic(fmt.Sprintf("invalid size: %v", size))
	}
}

// IsNaN reports whether x is not equal to itself, which only holds for
// floating-point NaN values.
func IsNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// Unordered reports whether a and b are incomparable, that is, whether at
// least one of them is NaN.
func Unordered[T constraints.Ordered](a, b T) bool {
	return a != a || b != b
}

// Less is the NaN-safe strict order: a NaN is never less than anything, and
// nothing is less than a NaN.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Compare is the NaN-safe three-way comparison. Incomparable pairs compare
// as equal, so Compare is defined for every pair of values.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// LessNaNLast is a strict weak order that agrees with Less on numbers and
// places every NaN after all numbers.
func LessNaNLast[T constraints.Ordered](a, b T) bool {
	return a < b || (b != b && a == a)
}
