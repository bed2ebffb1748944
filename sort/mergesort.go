package sort

import (
	"github.com/exascience/adasort"
	"github.com/exascience/adasort/internal"
	"golang.org/x/exp/constraints"
)

// StableSort sorts data in increasing order, keeping equal elements in
// their original order. Incomparable pairs (NaN) are treated as equal.
//
// StableSort is a natural merge sort: it is close to linear on inputs that
// consist of few ascending runs, but needs a shallow copy of data as
// temporary memory.
func StableSort[T constraints.Ordered](data []T) {
	stableSort(data, internal.Less[T], adasort.DefaultMicroThreshold)
}

// StableSortFunc sorts data stably according to less, which reports
// whether a must sort before b. If neither less(a, b) nor less(b, a) holds,
// a and b keep their relative order.
func StableSortFunc[E any](data []E, less func(a, b E) bool) {
	stableSort(data, less, adasort.DefaultMicroThreshold)
}

// stableSort splits data into ascending runs, extends runs shorter than
// minRun with insertion sort, and then merges neighbouring runs pairwise
// until one run is left, alternating between data and one temporary slice.
func stableSort[E any](data []E, less func(a, b E) bool, minRun int) {
	n := len(data)
	if n <= minRun {
		insertionSortFunc(data, 1, less)
		return
	}
	bounds := findRuns(data, less, minRun)
	if len(bounds) == 2 {
		return
	}
	temp := make([]E, n)
	src, dst := data, temp
	inTemp := false
	for len(bounds) > 2 {
		runs := len(bounds) - 1
		w := 1
		for i := 0; i < runs; i += 2 {
			lo := bounds[i]
			if i+1 == runs {
				copy(dst[lo:n], src[lo:n])
				bounds[w] = n
			} else {
				mid, hi := bounds[i+1], bounds[i+2]
				if !less(src[mid], src[mid-1]) {
					copy(dst[lo:hi], src[lo:hi])
				} else {
					merge(dst[lo:hi], src[lo:mid], src[mid:hi], less)
				}
				bounds[w] = hi
			}
			w++
		}
		bounds = bounds[:w]
		src, dst = dst, src
		inTemp = !inTemp
	}
	if inTemp {
		copy(data, temp)
	}
}

// findRuns returns the boundaries of the runs of data: 0, the end of each
// run, and finally len(data). A run shorter than minRun is extended to
// minRun elements (or to the end of data) with insertion sort.
func findRuns[E any](data []E, less func(a, b E) bool, minRun int) []int {
	n := len(data)
	bounds := make([]int, 1, n/minRun+2)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && !less(data[hi], data[hi-1]) {
			hi++
		}
		if hi-lo < minRun {
			end := min(lo+minRun, n)
			insertionSortFunc(data[lo:end], hi-lo, less)
			hi = end
		}
		bounds = append(bounds, hi)
		lo = hi
	}
	return bounds
}

// merge writes the merge of the sorted slices a and b to dst, alternately
// copying the longest prefix of a that does not sort after b[0] and the
// longest prefix of b that sorts before a[0]. Elements from a precede equal
// elements from b.
func merge[E any](dst, a, b []E, less func(a, b E) bool) {
	for {
		if len(b) == 0 {
			copy(dst, a)
			return
		}
		n := 0
		for n < len(a) && !less(b[0], a[n]) {
			n++
		}
		copy(dst, a[:n])
		dst, a = dst[n:], a[n:]

		if len(a) == 0 {
			copy(dst, b)
			return
		}
		n = 0
		for n < len(b) && less(b[n], a[0]) {
			n++
		}
		copy(dst, b[:n])
		dst, b = dst[n:], b[n:]
	}
}

// insertionSortFunc sorts data stably, assuming data[:sorted] is already
// sorted.
func insertionSortFunc[E any](data []E, sorted int, less func(a, b E) bool) {
	for i := max(sorted, 1); i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
