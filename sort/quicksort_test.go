package sort

import (
	"math"
	"slices"
	"testing"

	"github.com/exascience/adasort/internal/sortdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func organPipe(n int) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = float32(min(i, n-1-i))
	}
	return result
}

func TestIntrosort(t *testing.T) {
	inputs := map[string][]float32{
		"Uniform":     sortdata.Uniform(10000, -1000, 1000),
		"Normal":      sortdata.Normal(10000, 0, 50),
		"Exponential": sortdata.Exponential(10000, 3),
		"Ascending":   sortdata.Ascending(5000),
		"Descending":  sortdata.Descending(5000),
		"Constant":    sortdata.Constant(5000, 4),
		"OrganPipe":   organPipe(5000),
		"Small":       sortdata.Uniform(20, 0, 1),
		"Threshold":   sortdata.Uniform(33, 0, 1),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			want := slices.Clone(data)
			slices.Sort(want)
			Introsort(data)
			require.Equal(t, want, data)
		})
	}
}

func TestIntrosortInts(t *testing.T) {
	data := sortdata.Ints(100*0x600, 100*100*0x600)
	want := slices.Clone(data)
	slices.Sort(want)
	Introsort(data)
	assert.Equal(t, want, data)
}

func TestIntrosortNaN(t *testing.T) {
	cases := map[string][]float32{
		"Sparse":   sortdata.WithNaN(sortdata.Uniform(5000, -1, 1), 17, 101),
		"Dense":    sortdata.WithNaN(sortdata.Uniform(5000, -1, 1), 0, 3),
		"Pivot":    sortdata.WithNaN(sortdata.Uniform(5000, -1, 1), 2500, 5000),
		"AllNaN":   sortdata.WithNaN(make([]float32, 1000), 0, 1),
		"Constant": sortdata.WithNaN(sortdata.Constant(3000, 1), 5, 11),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			input := slices.Clone(data)
			Introsort(data)
			require.True(t, IsSorted(data))
			requireSameMultiset(t, input, data)
		})
	}
}

func TestIntrosortBudgetExhausted(t *testing.T) {
	data := sortdata.Uniform(1000, -5, 5)
	want := slices.Clone(data)
	slices.Sort(want)
	introsortRange(data, 0, 32)
	assert.Equal(t, want, data)

	data = sortdata.WithNaN(sortdata.Uniform(1000, -5, 5), 1, 9)
	input := slices.Clone(data)
	introsortRange(data, 0, 32)
	assert.True(t, IsSorted(data))
	requireSameMultiset(t, input, data)
}

func TestIntrosortThresholds(t *testing.T) {
	for _, threshold := range []int{4, 5, 16, 64} {
		data := sortdata.Normal(3000, 0, 10)
		want := slices.Clone(data)
		slices.Sort(want)
		introsort(data, threshold)
		require.Equal(t, want, data, "threshold %d", threshold)
	}
}

func TestPartition(t *testing.T) {
	t.Run("Boundary", func(t *testing.T) {
		data := []int{9, 3, 7, 1, 8, 2, 6, 5, 4, 0}
		p, ok := partition(data)
		require.True(t, ok)
		for i := 0; i < p; i++ {
			assert.LessOrEqual(t, data[i], data[p])
		}
		for i := p + 1; i < len(data); i++ {
			assert.GreaterOrEqual(t, data[i], data[p])
		}
	})

	t.Run("Three", func(t *testing.T) {
		data := []int{3, 1, 2}
		p, ok := partition(data)
		require.True(t, ok)
		assert.Equal(t, 1, p)
		assert.Equal(t, []int{1, 2, 3}, data)
	})

	t.Run("NaNCandidate", func(t *testing.T) {
		nan := math.NaN()
		for _, idx := range []int{0, 3, 6} {
			data := []float64{5, 4, 3, 2, 1, 0, -1}
			data[idx] = nan
			input := slices.Clone(data)
			_, ok := partition(data)
			assert.False(t, ok, "NaN at %d", idx)
			assert.Equal(t, countNaN(input), countNaN(data))
			for i := range data {
				if i != idx {
					assert.Equal(t, input[i], data[i])
				}
			}
		}
	})
}

func TestHeapSort(t *testing.T) {
	t.Run("Random", func(t *testing.T) {
		data := sortdata.Ints(10000, 50)
		want := slices.Clone(data)
		slices.Sort(want)
		HeapSort(data)
		assert.Equal(t, want, data)
	})

	t.Run("NaNLast", func(t *testing.T) {
		nan := float32(math.NaN())
		data := []float32{3, nan, -1, 2, nan, 0, 7}
		HeapSort(data)
		assert.Equal(t, []float32{-1, 0, 2, 3, 7}, data[:5])
		assert.Equal(t, 2, countNaN(data[5:]))
	})

	t.Run("Trivial", func(t *testing.T) {
		HeapSort([]int{})
		one := []int{1}
		HeapSort(one)
		assert.Equal(t, []int{1}, one)
	})
}
