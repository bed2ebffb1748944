package sort

import "log/slog"

const (
	minMicroThreshold = 4
	minSampleSize     = 2
)

// Option configures a Sorter.
type Option func(*Sorter)

/*
WithMicroThreshold sets the size at or below which Float32s hands its
input directly to SortSmall, and below which introsort stops partitioning.
It is also the minimum run length of the stable merge sort.

The default is adasort.DefaultMicroThreshold.
*/
func WithMicroThreshold(n int) Option {
	return func(s *Sorter) {
		s.microThreshold = n
	}
}

/*
WithSampleSize sets the length of the prefix that is inspected to select
a strategy.

The default is adasort.DefaultSampleSize.
*/
func WithSampleSize(n int) Option {
	return func(s *Sorter) {
		s.sampleSize = n
	}
}

// WithLogger configures a logger that receives one Debug record per
// dispatch decision. If nil is passed, log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sorter) {
		if logger == nil {
			logger = discardLogger
		}
		s.logger = logger
	}
}
