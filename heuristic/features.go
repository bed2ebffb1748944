/*
Package heuristic estimates cheap statistical properties of a data sample
and maps them to a sorting strategy.

The feature extraction is a single linear scan over the sample, and the
strategy selection is a pure decision table over the extracted features.
Neither step sorts, copies, or retains the sample.
*/
package heuristic

import (
	"github.com/exascience/adasort/internal"
	"golang.org/x/exp/constraints"
)

// Features are the properties of a sample that drive strategy selection.
type Features struct {
	// PreSortedness is 1 for a non-descending sample and approaches 0 as
	// the number of runs approaches the sample length.
	PreSortedness float64

	// NumericLike is false if the sample contains at least one NaN.
	NumericLike bool
}

/*
Extract computes the Features of a sample.

A sample of length n consists of 1 + d runs, where d is the number of
adjacent pairs in which the later element is strictly less than the
former. PreSortedness is 1 - d/(n-1). Since a NaN is never less than
anything, pairs involving NaN never count as descents.

Samples of length 0 and 1 are trivially sorted and numeric.
*/
func Extract[T constraints.Ordered](sample []T) Features {
	n := len(sample)
	if n <= 1 {
		return Features{PreSortedness: 1, NumericLike: true}
	}
	descents := 0
	numeric := !internal.IsNaN(sample[0])
	for i := 1; i < n; i++ {
		if sample[i] < sample[i-1] {
			descents++
		}
		if internal.IsNaN(sample[i]) {
			numeric = false
		}
	}
	return Features{
		PreSortedness: 1 - float64(descents)/float64(n-1),
		NumericLike:   numeric,
	}
}
