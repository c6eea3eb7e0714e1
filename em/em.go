package em

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gmix/gmix"
	"github.com/cwbudde/algo-gmix/jacobian"
)

// ErrMaxIter reports that the iteration budget was exhausted before the
// moments converged.
var ErrMaxIter = errors.New("em: maximum iterations reached")

const (
	// DefaultMaxIter is the iteration budget used when no option is given.
	DefaultMaxIter = 100
	// DefaultTol is the relative moment tolerance used when no option is
	// given.
	DefaultTol = 1e-6
)

type config struct {
	maxIter int
	tol     float64
}

// Option configures a fit.
type Option func(*config)

// WithMaxIter sets the iteration budget. Values below 1 are clamped to 1.
func WithMaxIter(n int) Option {
	return func(cfg *config) {
		if n < 1 {
			n = 1
		}
		cfg.maxIter = n
	}
}

// WithTol sets the relative tolerance on the weighted moment sum that
// declares convergence.
func WithTol(tol float64) Option {
	return func(cfg *config) {
		cfg.tol = tol
	}
}

// Result carries fit statistics.
type Result struct {
	// NumIter is the number of completed iterations before convergence.
	NumIter int
	// FDiff is the final relative change of the weighted moment sum.
	FDiff float64
}

// PrepImage returns a copy of im shifted so the minimum pixel sits on a
// small positive sky pedestal, plus the pedestal level. The pedestal is
// 0.1% of the image range, keeping every pixel usable as a probability
// weight.
func PrepImage(im *gmix.Image) (*gmix.Image, float64) {
	min := im.Min()
	sky := 0.001 * (im.Max() - min)

	out := im.Clone()
	out.AddScalar(sky - min)

	return out, sky
}

// Fitter runs EM fits against a fixed image and coordinate transform.
type Fitter struct {
	img    *gmix.Image
	jac    jacobian.Jacobian
	counts float64
}

// NewFitter returns a fitter for im with pixel coordinates mapped
// through jac. The image must be strictly positive; see [PrepImage].
func NewFitter(im *gmix.Image, jac jacobian.Jacobian) *Fitter {
	return &Fitter{
		img:    im,
		jac:    jac,
		counts: im.Sum(),
	}
}

// Counts returns the total image counts the fit normalizes against.
func (f *Fitter) Counts() float64 {
	return f.counts
}

// Run fits a mixture starting from guess with the given sky pedestal.
// The guess is not modified. On ErrMaxIter the mixture from the last
// iteration is still returned along with the result.
func (f *Fitter) Run(guess *gmix.GMix, sky float64, opts ...Option) (*gmix.GMix, Result, error) {
	cfg := config{maxIter: DefaultMaxIter, tol: DefaultTol}
	for _, opt := range opts {
		opt(&cfg)
	}

	if guess.Len() == 0 {
		return nil, Result{}, gmix.ErrEmptyMixture
	}

	gm := guess.Copy()
	res, err := f.runEM(gm, sky, cfg)
	if err != nil && !errors.Is(err, ErrMaxIter) {
		return nil, res, err
	}

	return gm, res, err
}

// sums holds the per-component E-step scratch and M-step accumulators
// for one iteration.
type sums struct {
	gi float64

	// per-pixel scratch
	trowsum float64
	tcolsum float64
	tu2sum  float64
	tuvsum  float64
	tv2sum  float64

	// accumulated over all pixels
	pnew   float64
	rowsum float64
	colsum float64
	u2sum  float64
	uvsum  float64
	v2sum  float64
}

func (f *Fitter) runEM(gm *gmix.GMix, sky float64, cfg config) (Result, error) {
	nrows := f.img.Rows()
	ncols := f.img.Cols()
	ngauss := gm.Len()

	scale := f.jac.Scale()
	area := float64(nrows*ncols) * scale * scale

	nsky := sky / f.counts

	ssums := make([]sums, ngauss)

	dudcol, dvdcol := f.jac.ColStep()

	wmomLast := -9999.0
	fdiff := 9999.0

	iter := 0
	for iter < cfg.maxIter {
		psum := 0.0
		skysum := 0.0
		for i := range ssums {
			ssums[i] = sums{}
		}

		comps := gm.Components()

		for row := 0; row < nrows; row++ {
			u, v := f.jac.Apply(float64(row), 0)

			for col := 0; col < ncols; col++ {
				imnorm := f.img.At(row, col) / f.counts

				// E step: component responsibilities at this pixel.
				// Unlike rendering there is no chi2 cutoff; the moment
				// sums need the full tails.
				gtot := 0.0
				for i := range comps {
					g := &comps[i]

					udiff := u - g.Row()
					vdiff := v - g.Col()

					u2 := udiff * udiff
					v2 := vdiff * vdiff
					uv := udiff * vdiff

					chi2 := g.Dcc()*u2 + g.Drr()*v2 - 2*g.Drc()*uv
					gi := g.Norm() * g.P() * mathExp(-0.5*chi2)

					s := &ssums[i]
					s.gi = gi
					gtot += gi

					s.trowsum = u * gi
					s.tcolsum = v * gi
					s.tu2sum = u2 * gi
					s.tuvsum = uv * gi
					s.tv2sum = v2 * gi
				}

				gtot += nsky
				igrat := imnorm / gtot

				// M step accumulation, weighted by the pixel flux share.
				for i := range ssums {
					s := &ssums[i]
					wtau := s.gi * igrat

					psum += wtau
					s.pnew += wtau

					s.rowsum += s.trowsum * igrat
					s.colsum += s.tcolsum * igrat
					s.u2sum += s.tu2sum * igrat
					s.uvsum += s.tuvsum * igrat
					s.v2sum += s.tv2sum * igrat
				}

				skysum += nsky * imnorm / gtot
				u += dudcol
				v += dvdcol
			}
		}

		if err := setFromSums(gm, ssums); err != nil {
			return Result{NumIter: iter, FDiff: fdiff}, err
		}

		nsky = skysum / area

		wmom := wmomSum(gm) / psum
		fdiff = math.Abs((wmom - wmomLast) / wmom)
		if fdiff < cfg.tol {
			return Result{NumIter: iter, FDiff: fdiff}, nil
		}

		wmomLast = wmom
		iter++
	}

	return Result{NumIter: iter, FDiff: fdiff}, ErrMaxIter
}

// setFromSums rebuilds every component from the accumulated moment sums.
func setFromSums(gm *gmix.GMix, ssums []sums) error {
	for i := range ssums {
		s := &ssums[i]
		p := s.pnew

		err := gm.SetGauss(i, p,
			s.rowsum/p,
			s.colsum/p,
			s.u2sum/p,
			s.uvsum/p,
			s.v2sum/p)
		if err != nil {
			return fmt.Errorf("em: iteration produced invalid component %d: %w", i, err)
		}
	}

	return nil
}

// wmomSum returns the weight-times-size sum over all components.
func wmomSum(gm *gmix.GMix) float64 {
	var wmom float64
	comps := gm.Components()
	for i := range comps {
		g := &comps[i]
		wmom += g.P() * (g.Irr() + g.Icc())
	}

	return wmom
}
