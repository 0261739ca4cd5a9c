package utils

import (
	"math"

	"github.com/pkg/errors"
)

// NanEquals reports whether a equals b, treating co-located NaNs as equal.
// Ordinary equality treats NaN as unequal to everything including itself,
// which is the wrong semantic when NaN is a nodata marker.
func NanEquals(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// NanEqualsSlice compares a and b elementwise with NanEquals. A length-1
// operand broadcasts against the other; otherwise lengths must match.
func NanEqualsSlice(a, b []float64) ([]bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, errors.New("cannot compare empty slices")
	}
	if len(a) != len(b) && len(a) != 1 && len(b) != 1 {
		return nil, errors.Errorf("cannot broadcast slices of length %d and %d", len(a), len(b))
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = NanEquals(a[minInt(i, len(a)-1)], b[minInt(i, len(b)-1)])
	}
	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
