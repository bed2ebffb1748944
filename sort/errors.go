package sort

import "errors"

var (
	// ErrInvalidMicroThreshold indicates a micro-threshold below 4, the
	// largest size covered by a sorting network.
	ErrInvalidMicroThreshold = errors.New("sort: micro-threshold must be at least 4")
	// ErrInvalidSampleSize indicates a sample size below 2, which cannot
	// contain a single adjacent pair.
	ErrInvalidSampleSize = errors.New("sort: sample size must be at least 2")
)
