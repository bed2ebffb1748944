package sort

import "golang.org/x/exp/constraints"

/*
SortSmall sorts data in increasing order with a fixed sorting network for
lengths 2, 3, and 4. The networks perform the same compare-exchanges
regardless of the values. Longer inputs fall back to a stable insertion
sort, which is intended for lengths up to the micro-threshold.

A compare-exchange only swaps if the first element is greater than the
second, so a NaN never moves, and incomparable pairs are treated as
equal.
*/
func SortSmall[T constraints.Ordered](data []T) {
	switch len(data) {
	case 0, 1:
	case 2:
		compareExchange(data, 0, 1)
	case 3:
		sort3(data)
	case 4:
		sort4(data)
	default:
		insertionSort(data)
	}
}

func compareExchange[T constraints.Ordered](data []T, i, j int) {
	if data[i] > data[j] {
		data[i], data[j] = data[j], data[i]
	}
}

func sort3[T constraints.Ordered](data []T) {
	compareExchange(data, 0, 1)
	compareExchange(data, 1, 2)
	compareExchange(data, 0, 1)
}

// sort4 is the optimal five-comparator network for four elements.
func sort4[T constraints.Ordered](data []T) {
	compareExchange(data, 0, 2)
	compareExchange(data, 1, 3)
	compareExchange(data, 0, 1)
	compareExchange(data, 2, 3)
	compareExchange(data, 1, 2)
}

// insertionSort is stable. An element only moves past elements that are
// greater than it.
func insertionSort[T constraints.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
