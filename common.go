package adasort

const (
	// DefaultMicroThreshold is the size at or below which inputs are handed
	// directly to the sorting networks and the insertion sort fallback,
	// both by the float32 dispatcher and by introsort for its partitions.
	DefaultMicroThreshold = 32

	// DefaultSampleSize bounds the prefix of the input that is inspected
	// to select a sorting strategy.
	DefaultSampleSize = 1024
)

/*
Sample returns the prefix of data that is inspected by the feature
extractor, which is data[:min(len(data), size)].

The result shares its backing array with data. It must not be retained
beyond the strategy selection of the current call.

A size below 1 is treated as 1.
*/
func Sample[T any](data []T, size int) []T {
	if size < 1 {
		size = 1
	}
	if len(data) <= size {
		return data
	}
	return data[:size]
}
