// Package sortdata generates inputs with the shapes the dispatcher is
// tuned for: random numeric data drawn from common distributions, nearly
// sorted data, and NaN-contaminated data. It is used by tests and
// benchmarks only.
package sortdata

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

type sampler interface {
	Rand() float64
}

func draw(n int, dist sampler) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = float32(dist.Rand())
	}
	return result
}

// Normal returns n values drawn from a normal distribution.
func Normal(n int, mu, sigma float64) []float32 {
	return draw(n, distuv.Normal{Mu: mu, Sigma: sigma})
}

// Uniform returns n values drawn uniformly from [lo, hi).
func Uniform(n int, lo, hi float64) []float32 {
	return draw(n, distuv.Uniform{Min: lo, Max: hi})
}

// Exponential returns n values drawn from an exponential distribution,
// which produces many near-duplicates close to zero.
func Exponential(n int, rate float64) []float32 {
	return draw(n, distuv.Exponential{Rate: rate})
}

// Ints returns n integers in [0, limit).
func Ints(n, limit int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = rand.Intn(limit)
	}
	return result
}

// Ascending returns 0, 1, ..., n-1.
func Ascending(n int) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = float32(i)
	}
	return result
}

// Descending returns n-1, n-2, ..., 0.
func Descending(n int) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = float32(n - 1 - i)
	}
	return result
}

// Constant returns n copies of v.
func Constant(n int, v float32) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = v
	}
	return result
}

// NearlySorted returns Ascending(n) with swaps random pairs of neighbours
// exchanged.
func NearlySorted(n, swaps int) []float32 {
	result := Ascending(n)
	if n < 2 {
		return result
	}
	for k := 0; k < swaps; k++ {
		i := rand.Intn(n - 1)
		result[i], result[i+1] = result[i+1], result[i]
	}
	return result
}

// Misplaced returns Ascending(n) with the element at index from moved to
// index to, shifting the elements in between.
func Misplaced(n, from, to int) []float32 {
	result := Ascending(n)
	v := result[from]
	if from < to {
		copy(result[from:to], result[from+1:to+1])
	} else {
		copy(result[to+1:from+1], result[to:from])
	}
	result[to] = v
	return result
}

// WithNaN overwrites every k-th element of data, starting at offset, with
// NaN and returns data.
func WithNaN(data []float32, offset, k int) []float32 {
	nan := float32(math.NaN())
	for i := offset; i < len(data); i += k {
		data[i] = nan
	}
	return data
}
