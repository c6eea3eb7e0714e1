//go:build fastmath

package gmix

import (
	"github.com/meko-christian/algo-approx"
)

// mathSqrt computes sqrt(x) using fast approximation. Normalizations are
// computed once per component at construction time, so this only matters
// for callers that rebuild mixtures inside tight fitting loops.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
