package gmix

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gmix/fastexp"
)

// MaxChi2 is the tail cutoff of the evaluation: points whose squared
// Mahalanobis distance reaches this value contribute exactly zero. This
// both skips the exponential in the negligible far tail and keeps its
// argument inside the approximation's validated range. The value is a
// fixed configuration constant; do not re-derive it.
const MaxChi2 = 25.0

// Gauss2D is a single 2-D elliptical gaussian with precomputed
// inverse-covariance coefficients and normalization. Construct it with
// [NewGauss2D] (or through a [GMix]); the zero value evaluates to zero
// everywhere and has no valid covariance.
//
// Field conventions follow the usual image moments: irr is the variance
// along rows, icc along columns, irc the covariance. drr, drc, dcc are
// the inverse-covariance entries scaled by 1/det, norm is
// 1/(2*pi*sqrt(det)), and pnorm = p*norm is the amplitude applied at
// evaluation time.
type Gauss2D struct {
	p        float64
	row, col float64

	irr, irc, icc float64

	det float64

	drr, drc, dcc float64

	norm  float64
	pnorm float64
}

// NewGauss2D returns a gaussian with weight p, center (row, col) and
// covariance moments (irr, irc, icc). The weight may be negative
// (mixtures may subtract components). Returns ErrBadDet when the
// covariance is degenerate.
func NewGauss2D(p, row, col, irr, irc, icc float64) (Gauss2D, error) {
	var g Gauss2D
	if err := g.set(p, row, col, irr, irc, icc); err != nil {
		return Gauss2D{}, err
	}

	return g, nil
}

// set recomputes every derived field from the six free parameters. This
// is the only place derived fields are written.
func (g *Gauss2D) set(p, row, col, irr, irc, icc float64) error {
	det := irr*icc - irc*irc
	if det <= 0 {
		return fmt.Errorf("%w: det=%g", ErrBadDet, det)
	}

	g.p = p
	g.row = row
	g.col = col
	g.irr = irr
	g.irc = irc
	g.icc = icc

	g.det = det

	idet := 1.0 / det
	g.drr = irr * idet
	g.drc = irc * idet
	g.dcc = icc * idet
	g.norm = 1.0 / (2 * math.Pi * mathSqrt(det))
	g.pnorm = g.p * g.norm

	return nil
}

// Eval returns the gaussian's value at (row, col).
//
// The quadratic form chi2 = dcc*u^2 + drr*v^2 - 2*drc*u*v is tested
// against [MaxChi2] first; at or beyond the cutoff the result is exactly
// zero and the exponential is never called.
func (g Gauss2D) Eval(row, col float64) float64 {
	u := row - g.row
	v := col - g.col

	chi2 := g.dcc*u*u + g.drr*v*v - 2.0*g.drc*u*v
	if chi2 >= MaxChi2 {
		return 0.0
	}

	return g.pnorm * fastexp.Expd(-0.5*chi2)
}

// P returns the weight.
func (g Gauss2D) P() float64 { return g.p }

// Row returns the row center.
func (g Gauss2D) Row() float64 { return g.row }

// Col returns the column center.
func (g Gauss2D) Col() float64 { return g.col }

// Irr returns the row-row covariance moment.
func (g Gauss2D) Irr() float64 { return g.irr }

// Irc returns the row-col covariance moment.
func (g Gauss2D) Irc() float64 { return g.irc }

// Icc returns the col-col covariance moment.
func (g Gauss2D) Icc() float64 { return g.icc }

// Det returns the covariance determinant.
func (g Gauss2D) Det() float64 { return g.det }

// Drr returns irr/det.
func (g Gauss2D) Drr() float64 { return g.drr }

// Drc returns irc/det.
func (g Gauss2D) Drc() float64 { return g.drc }

// Dcc returns icc/det.
func (g Gauss2D) Dcc() float64 { return g.dcc }

// Norm returns the normalization 1/(2*pi*sqrt(det)).
func (g Gauss2D) Norm() float64 { return g.norm }

// Pnorm returns p*norm, the value of the gaussian at its center.
func (g Gauss2D) Pnorm() float64 { return g.pnorm }

// T returns the size moment irr+icc.
func (g Gauss2D) T() float64 { return g.irr + g.icc }
