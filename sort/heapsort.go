package sort

import (
	"github.com/exascience/adasort/internal"
	"golang.org/x/exp/constraints"
)

// HeapSort sorts data in increasing order in O(n log n) time and O(1)
// extra space. The sort is not stable. NaN values are ordered after all
// numbers, which keeps the heap invariant intact on NaN input.
func HeapSort[T constraints.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T constraints.Ordered](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && internal.LessNaNLast(data[largest], data[left]) {
			largest = left
		}
		if right < n && internal.LessNaNLast(data[largest], data[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
