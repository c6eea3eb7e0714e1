//go:build !fastmath

package em

import "math"

// mathExp computes exp(x) using the standard library.
func mathExp(x float64) float64 {
	return math.Exp(x)
}
