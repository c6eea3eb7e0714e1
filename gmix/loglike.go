package gmix

import (
	"math"

	"github.com/cwbudde/algo-gmix/jacobian"
)

// LogLikeResult carries the gaussian log likelihood of a mixture against
// an image, plus the signal-to-noise sums derived in the same pass.
type LogLikeResult struct {
	LogLike  float64
	S2NNumer float64
	S2NDenom float64
}

// S2N returns the model signal-to-noise ratio, s2n_numer/sqrt(s2n_denom).
// Zero denominator yields zero.
func (r LogLikeResult) S2N() float64 {
	if r.S2NDenom <= 0 {
		return 0
	}

	return r.S2NNumer / math.Sqrt(r.S2NDenom)
}

// LogLike computes -0.5*sum((model-pixel)^2 * ivar) over all pixels,
// evaluating the mixture at pixel-center coordinates. Pixels with
// non-positive inverse variance are skipped entirely.
func (m *GMix) LogLike(img, wt *Image) (LogLikeResult, error) {
	var res LogLikeResult

	if m.Len() == 0 {
		return res, ErrEmptyMixture
	}
	if img.rows != wt.rows || img.cols != wt.cols {
		return res, ErrDimsMismatch
	}

	for row := 0; row < img.rows; row++ {
		base := row * img.cols
		for col := 0; col < img.cols; col++ {
			ivar := wt.data[base+col]
			if ivar <= 0 {
				continue
			}

			model := m.Eval(float64(row), float64(col))
			pixval := img.data[base+col]
			diff := model - pixval

			res.LogLike += diff * diff * ivar
			res.S2NNumer += pixval * model * ivar
			res.S2NDenom += model * model * ivar
		}
	}

	res.LogLike *= -0.5

	return res, nil
}

// LogLikeJacobian is [GMix.LogLike] with pixel coordinates mapped
// through jac before evaluation. The (u, v) position is advanced by the
// per-column step on every pixel, including skipped ones, so the walk
// stays aligned with the pixel grid.
func (m *GMix) LogLikeJacobian(img, wt *Image, jac jacobian.Jacobian) (LogLikeResult, error) {
	var res LogLikeResult

	if m.Len() == 0 {
		return res, ErrEmptyMixture
	}
	if img.rows != wt.rows || img.cols != wt.cols {
		return res, ErrDimsMismatch
	}

	ustep, vstep := jac.ColStep()

	for row := 0; row < img.rows; row++ {
		base := row * img.cols
		u, v := jac.Apply(float64(row), 0)

		for col := 0; col < img.cols; col++ {
			ivar := wt.data[base+col]
			if ivar > 0 {
				model := m.Eval(u, v)
				pixval := img.data[base+col]
				diff := model - pixval

				res.LogLike += diff * diff * ivar
				res.S2NNumer += pixval * model * ivar
				res.S2NDenom += model * model * ivar
			}

			u += ustep
			v += vstep
		}
	}

	res.LogLike *= -0.5

	return res, nil
}
