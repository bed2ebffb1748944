/*
Package sort provides adaptive sorting. Sort and Float32s inspect a bounded
prefix of their input, select a strategy with package heuristic, and run
the selected backend over the whole input.

The backends are available on their own as well: SortSmall (sorting
networks), StableSort (natural merge sort), Introsort, and HeapSort.
*/
package sort

import (
	"fmt"
	"log/slog"

	"github.com/exascience/adasort"
	"github.com/exascience/adasort/heuristic"
	"github.com/exascience/adasort/internal"
	"github.com/exascience/adasort/radix"
	"golang.org/x/exp/constraints"
)

var discardLogger = slog.New(slog.DiscardHandler)

/*
A Sorter holds the tunables of the dispatcher. A Sorter is immutable
after New returns and can be shared between goroutines, but the slices
passed to it must not be accessed concurrently while they are sorted.

The zero value of Sorter is ready to use and behaves like the default
Sorter.
*/
type Sorter struct {
	microThreshold int
	sampleSize     int
	logger         *slog.Logger
}

var defaultSorter = &Sorter{
	microThreshold: adasort.DefaultMicroThreshold,
	sampleSize:     adasort.DefaultSampleSize,
	logger:         discardLogger,
}

// New creates a Sorter. It returns ErrInvalidMicroThreshold or
// ErrInvalidSampleSize if an option is out of range.
func New(opts ...Option) (*Sorter, error) {
	s := *defaultSorter
	for _, opt := range opts {
		opt(&s)
	}
	if s.microThreshold < minMicroThreshold {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMicroThreshold, s.microThreshold)
	}
	if s.sampleSize < minSampleSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, s.sampleSize)
	}
	return &s, nil
}

// config returns a copy of s in which unset fields hold their defaults.
func (s *Sorter) config() *Sorter {
	c := *s
	if c.microThreshold == 0 {
		c.microThreshold = adasort.DefaultMicroThreshold
	}
	if c.sampleSize == 0 {
		c.sampleSize = adasort.DefaultSampleSize
	}
	if c.logger == nil {
		c.logger = discardLogger
	}
	return &c
}

// MicroThreshold returns the configured micro-threshold.
func (s *Sorter) MicroThreshold() int { return s.config().microThreshold }

// SampleSize returns the configured sample size.
func (s *Sorter) SampleSize() int { return s.config().sampleSize }

/*
Sort sorts data in increasing order with the default Sorter.

Nearly sorted inputs are sorted stably with StableSort, everything else
with Introsort. Radix sort is never used, since there is no
order-preserving unsigned key for an arbitrary ordered type.
*/
func Sort[T constraints.Ordered](data []T) {
	SortWith(defaultSorter, data)
}

// SortWith is like Sort, but uses the tunables of s.
func SortWith[T constraints.Ordered](s *Sorter, data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	s = s.config()
	features, strategy := decideOrdered(s, data)
	s.logDecision(n, features, strategy)
	if strategy == heuristic.StableMerge {
		stableSort(data, internal.Less[T], s.microThreshold)
	} else {
		introsort(data, s.microThreshold)
	}
}

/*
Float32s sorts data in increasing order with the default Sorter.

Inputs up to the micro-threshold go to SortSmall. Otherwise nearly sorted
inputs are sorted stably, inputs whose sample contains no NaN are radix
sorted, and the remaining inputs are sorted with Introsort.

Only the sample is checked for NaN. A NaN beyond the sample does not cause
a panic, but the radix sort places it by its bit pattern, above +Inf or
below -Inf.
*/
func Float32s(data []float32) {
	defaultSorter.Float32s(data)
}

// Float32s is like the package-level Float32s, but uses the tunables of s.
func (s *Sorter) Float32s(data []float32) {
	n := len(data)
	if n <= 1 {
		return
	}
	s = s.config()
	if n <= s.microThreshold {
		SortSmall(data)
		return
	}
	features, strategy := s.decideFloat32(data)
	s.logDecision(n, features, strategy)
	switch strategy {
	case heuristic.Radix:
		radix.Float32s(data)
	case heuristic.StableMerge:
		stableSort(data, internal.Less[float32], s.microThreshold)
	default:
		introsort(data, s.microThreshold)
	}
}

// PredictWith returns the strategy SortWith(s, data) would select for an
// input longer than one element.
func PredictWith[T constraints.Ordered](s *Sorter, data []T) heuristic.Strategy {
	_, strategy := decideOrdered(s.config(), data)
	return strategy
}

// PredictFloat32 returns the strategy s.Float32s(data) would select for an
// input longer than the micro-threshold.
func (s *Sorter) PredictFloat32(data []float32) heuristic.Strategy {
	_, strategy := s.config().decideFloat32(data)
	return strategy
}

func decideOrdered[T constraints.Ordered](s *Sorter, data []T) (heuristic.Features, heuristic.Strategy) {
	f := heuristic.Extract(adasort.Sample(data, s.sampleSize))
	return f, heuristic.SelectOrdered(f)
}

func (s *Sorter) decideFloat32(data []float32) (heuristic.Features, heuristic.Strategy) {
	f := heuristic.Extract(adasort.Sample(data, s.sampleSize))
	return f, heuristic.SelectFloat32(f)
}

func (s *Sorter) logDecision(n int, f heuristic.Features, strategy heuristic.Strategy) {
	s.logger.Debug("strategy selected",
		"len", n,
		"sample", min(n, s.sampleSize),
		"presortedness", f.PreSortedness,
		"numeric", f.NumericLike,
		"strategy", strategy.String(),
	)
}

// IsSorted reports whether data contains no adjacent pair in which the
// later element is less than the former. Pairs involving NaN never violate
// the order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := len(data) - 1; i > 0; i-- {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
