/*
Package radix provides a least-significant-digit radix sort for float32
keys.

Each float is mapped to an unsigned 32-bit key whose natural order matches
the IEEE-754 order of the floats, the keys are sorted with four stable
counting passes of eight bits each, and the floats are recovered from the
sorted keys. The sort runs in O(n) time. Float32s needs 2n words of extra
memory, one slice for the keys and one pass buffer.
*/
package radix

import "math"

const (
	signMask uint32 = 1 << 31

	digitBits = 8
	buckets   = 1 << digitBits
	passes    = 32 / digitBits
)

/*
Key maps f to an unsigned key that preserves the float order: if the sign
bit is set, all bits are inverted, otherwise only the sign bit is flipped.
Negative floats, whose raw bit patterns are in reverse order, become
ascending and end up below all non-negative floats.

-0.0 maps to a key just below the key of +0.0. A NaN maps above +Inf or
below -Inf, depending on its sign bit.
*/
func Key(f float32) uint32 {
	b := math.Float32bits(f)
	if b&signMask != 0 {
		return ^b
	}
	return b ^ signMask
}

// FromKey is the inverse of Key.
func FromKey(k uint32) float32 {
	if k&signMask != 0 {
		return math.Float32frombits(k ^ signMask)
	}
	return math.Float32frombits(^k)
}

/*
Float32s sorts data in increasing order.

The keys are kept in a separate []uint32 that never aliases data, and a
second buffer of the same length is allocated once and reused by all
passes. Equal keys retain their relative order, and -0.0 always precedes
+0.0.

Float32s does not inspect its input for NaN. A NaN does not cause a panic,
but it is sorted by its bit pattern: above +Inf if its sign bit is clear,
and below -Inf otherwise.
*/
func Float32s(data []float32) {
	n := len(data)
	if n <= 1 {
		return
	}
	keys := make([]uint32, n)
	for i, f := range data {
		keys[i] = Key(f)
	}
	sortKeys(keys, make([]uint32, n))
	for i, k := range keys {
		data[i] = FromKey(k)
	}
}

// Uint32s sorts data in increasing order with the same passes that
// Float32s runs over its transformed keys.
func Uint32s(data []uint32) {
	if len(data) <= 1 {
		return
	}
	sortKeys(data, make([]uint32, len(data)))
}

// sortKeys runs all passes, alternating between keys and buf as source and
// destination. Skipped passes swap nothing, so the result is copied back if
// it ends up in buf.
func sortKeys(keys, buf []uint32) {
	src, dst := keys, buf
	for pass := 0; pass < passes; pass++ {
		if radixPass(src, dst, uint(pass*digitBits)) {
			src, dst = dst, src
		}
	}
	if &src[0] != &keys[0] {
		copy(keys, src)
	}
}

// radixPass performs one stable counting pass over the digit at shift,
// scattering src into dst. It reports false, leaving dst untouched, if all
// elements share the same digit.
func radixPass(src, dst []uint32, shift uint) bool {
	var count [buckets]int
	for _, k := range src {
		count[(k>>shift)&(buckets-1)]++
	}
	if count[(src[0]>>shift)&(buckets-1)] == len(src) {
		return false
	}

	// After this loop, count[d] is the end offset of bucket d.
	for d := 1; d < buckets; d++ {
		count[d] += count[d-1]
	}

	// Scanning backwards and filling each bucket from its end keeps equal
	// digits in their original order.
	for i := len(src) - 1; i >= 0; i-- {
		k := src[i]
		d := (k >> shift) & (buckets - 1)
		count[d]--
		dst[count[d]] = k
	}
	return true
}
