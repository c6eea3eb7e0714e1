package gmix

import (
	"github.com/cwbudde/algo-gmix/jacobian"
)

type renderConfig struct {
	nsub int
	jac  *jacobian.Jacobian
}

// RenderOption configures image rendering.
type RenderOption func(*renderConfig)

// WithNsub sets the per-pixel subsampling factor: each pixel is averaged
// over nsub x nsub sub-positions. Values below 1 are clamped to 1.
func WithNsub(nsub int) RenderOption {
	return func(cfg *renderConfig) {
		if nsub < 1 {
			nsub = 1
		}
		cfg.nsub = nsub
	}
}

// WithJacobian evaluates the mixture in the (u, v) frame defined by jac
// instead of raw pixel coordinates.
func WithJacobian(jac jacobian.Jacobian) RenderOption {
	return func(cfg *renderConfig) {
		cfg.jac = &jac
	}
}

// MakeImage renders the mixture into a new rows x cols image.
func (m *GMix) MakeImage(rows, cols int, opts ...RenderOption) (*Image, error) {
	im, err := NewImage(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := m.FillImage(im, opts...); err != nil {
		return nil, err
	}

	return im, nil
}

// FillImage renders the mixture into im, adding to the existing pixel
// values rather than overwriting them. Callers that want a fresh render
// must zero or allocate the image first.
func (m *GMix) FillImage(im *Image, opts ...RenderOption) error {
	if m.Len() == 0 {
		return ErrEmptyMixture
	}

	cfg := renderConfig{nsub: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.jac != nil {
		m.renderJacobian(im, cfg.nsub, *cfg.jac)
	} else {
		m.render(im, cfg.nsub)
	}

	return nil
}

// render evaluates the mixture at pixel centers, averaging nsub x nsub
// sub-positions per pixel. The sub-grid is centered on the pixel: the
// first sample sits at -(nsub-1)/(2*nsub) and steps by 1/nsub.
func (m *GMix) render(im *Image, nsub int) {
	stepsize := 1.0 / float64(nsub)
	offset := float64(nsub-1) * stepsize / 2
	areafac := 1.0 / float64(nsub*nsub)

	for row := 0; row < im.rows; row++ {
		for col := 0; col < im.cols; col++ {
			tval := 0.0
			trow := float64(row) - offset
			for rowsub := 0; rowsub < nsub; rowsub++ {
				tcol := float64(col) - offset
				for colsub := 0; colsub < nsub; colsub++ {
					tval += m.Eval(trow, tcol)
					tcol += stepsize
				}
				trow += stepsize
			}

			im.data[row*im.cols+col] += tval * areafac
		}
	}
}

// renderJacobian is render with pixel coordinates mapped through jac
// before evaluation. Within a pixel row the (u, v) position is advanced
// incrementally by the per-column step, avoiding a full transform per
// sub-sample.
func (m *GMix) renderJacobian(im *Image, nsub int, jac jacobian.Jacobian) {
	stepsize := 1.0 / float64(nsub)
	offset := float64(nsub-1) * stepsize / 2
	areafac := 1.0 / float64(nsub*nsub)

	ducol, dvcol := jac.ColStep()
	ustep := stepsize * ducol
	vstep := stepsize * dvcol

	for row := 0; row < im.rows; row++ {
		for col := 0; col < im.cols; col++ {
			tval := 0.0
			trow := float64(row) - offset
			lowcol := float64(col) - offset

			for rowsub := 0; rowsub < nsub; rowsub++ {
				u, v := jac.Apply(trow, lowcol)
				for colsub := 0; colsub < nsub; colsub++ {
					tval += m.Eval(u, v)
					u += ustep
					v += vstep
				}
				trow += stepsize
			}

			im.data[row*im.cols+col] += tval * areafac
		}
	}
}
