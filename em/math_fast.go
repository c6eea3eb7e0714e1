//go:build fastmath

package em

import (
	"github.com/meko-christian/algo-approx"
)

// mathExp computes exp(x) using fast approximation. The E-step needs the
// exponential over the full sampled range, so the evaluation cutoff used
// for rendering does not apply here.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
