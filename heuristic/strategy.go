package heuristic

// A Strategy names the backend a dispatcher runs over the whole input.
type Strategy uint8

const (
	// Introsort is the unstable, depth-bounded quicksort with heapsort
	// fallback. It tolerates NaN.
	Introsort Strategy = iota

	// StableMerge is the stable natural merge sort, which is close to
	// linear on inputs with few inversions.
	StableMerge

	// Radix is the linear-time LSD radix sort over float32 bit patterns.
	Radix
)

// StableThreshold is the PreSortedness above which StableMerge is selected.
const StableThreshold = 0.8

func (s Strategy) String() string {
	switch s {
	case Introsort:
		return "introsort"
	case StableMerge:
		return "stable-merge"
	case Radix:
		return "radix"
	default:
		return "unknown"
	}
}

// SelectOrdered maps features of a sample of an arbitrary ordered type to a
// strategy. Radix is never selected, because there is no order-preserving
// mapping from an arbitrary ordered type to a fixed-width unsigned key.
func SelectOrdered(f Features) Strategy {
	if f.PreSortedness > StableThreshold {
		return StableMerge
	}
	return Introsort
}

// SelectFloat32 maps features of a float32 sample to a strategy. Nearly
// sorted samples select StableMerge, NaN-free samples select Radix, and
// samples containing NaN select Introsort, whose comparisons tolerate
// incomparable values.
func SelectFloat32(f Features) Strategy {
	switch {
	case f.PreSortedness > StableThreshold:
		return StableMerge
	case f.NumericLike:
		return Radix
	default:
		return Introsort
	}
}
