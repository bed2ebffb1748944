package sort

import (
	"github.com/exascience/adasort"
	"github.com/exascience/adasort/internal"
	"golang.org/x/exp/constraints"
)

/*
Introsort sorts data in increasing order. The sort is not stable.

Ranges up to the micro-threshold are handed to SortSmall. Larger ranges
are partitioned around the median of their first, middle, and last
elements. Each level of partitioning consumes one unit of a recursion
budget of 2 * floor(log2(len(data))); a range that exhausts the budget is
finished with HeapSort, which bounds the worst case at O(n log n).

If any of the three pivot candidates is NaN, the range is not partitioned
but sorted with the stable NaN-safe merge sort instead.
*/
func Introsort[T constraints.Ordered](data []T) {
	introsort(data, adasort.DefaultMicroThreshold)
}

func introsort[T constraints.Ordered](data []T, threshold int) {
	if len(data) <= threshold {
		SortSmall(data)
		return
	}
	introsortRange(data, internal.DepthBudget(len(data)), threshold)
}

func introsortRange[T constraints.Ordered](data []T, budget, threshold int) {
	if len(data) <= threshold {
		SortSmall(data)
		return
	}
	if budget == 0 {
		HeapSort(data)
		return
	}
	p, ok := partition(data)
	if !ok {
		stableSort(data, internal.Less[T], threshold)
		return
	}
	introsortRange(data[:p], budget-1, threshold)
	introsortRange(data[p+1:], budget-1, threshold)
}

/*
partition orders the first, middle, and last element of data, moves the
median to the second-to-last slot, and partitions the elements in between
with a single forward scan. Elements that are not greater than the pivot
move left. The pivot is then swapped to its final index, which is
returned: data[:p] holds no element greater than data[p], and every
element of data[p+1:] is greater than or equal to data[p].

partition reports false, without modifying data, if one of the candidates
is NaN. data must have at least three elements.
*/
func partition[T constraints.Ordered](data []T) (int, bool) {
	mid, last := len(data)/2, len(data)-1
	if internal.Unordered(data[0], data[mid]) ||
		internal.Unordered(data[0], data[last]) ||
		internal.Unordered(data[mid], data[last]) {
		return 0, false
	}
	compareExchange(data, 0, mid)
	compareExchange(data, 0, last)
	compareExchange(data, mid, last)

	// data[0] <= pivot <= data[last] now act as sentinels.
	slot := last - 1
	data[mid], data[slot] = data[slot], data[mid]
	pivot := data[slot]
	i := 1
	for j := 1; j < slot; j++ {
		if !(data[j] > pivot) {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[slot] = data[slot], data[i]
	return i, true
}
