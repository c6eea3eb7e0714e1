package gmix

import (
	"fmt"
	"strings"
)

// GMix is an ordered sequence of gaussian components. The length is
// fixed at construction; evaluation sums component contributions in
// stored order, so floating-point results are reproducible call to call.
//
// A GMix owns its components by value: copies share nothing, and
// concurrent read-only evaluation from multiple goroutines is safe.
type GMix struct {
	gauss []Gauss2D
}

// New returns a mixture of n zero-valued components. The components are
// invalid until filled through [GMix.Fill] or [GMix.SetGauss]; a
// zero-valued component evaluates to zero everywhere.
func New(n int) *GMix {
	if n < 0 {
		n = 0
	}

	return &GMix{gauss: make([]Gauss2D, n)}
}

// NewFromPars builds a mixture from a full parameter array
// [p1,row1,col1,irr1,irc1,icc1, p2,...], six values per component.
func NewFromPars(pars []float64) (*GMix, error) {
	if len(pars) == 0 || len(pars)%6 != 0 {
		return nil, fmt.Errorf("%w: len(pars)=%d, want a positive multiple of 6", ErrBadPars, len(pars))
	}

	m := New(len(pars) / 6)
	if err := m.Fill(pars); err != nil {
		return nil, err
	}

	return m, nil
}

// Len returns the number of components.
func (m *GMix) Len() int {
	return len(m.gauss)
}

// Gauss returns a copy of component i.
func (m *GMix) Gauss(i int) Gauss2D {
	return m.gauss[i]
}

// Components returns the underlying component slice. The slice aliases
// the mixture's storage and must be treated as read-only; use
// [GMix.SetGauss] to mutate a component so derived fields stay
// consistent.
func (m *GMix) Components() []Gauss2D {
	return m.gauss
}

// SetGauss replaces component i, recomputing all derived fields.
func (m *GMix) SetGauss(i int, p, row, col, irr, irc, icc float64) error {
	return m.gauss[i].set(p, row, col, irr, irc, icc)
}

// Fill replaces every component from a full parameter array. The length
// must be exactly six per component.
func (m *GMix) Fill(pars []float64) error {
	if len(pars) != 6*len(m.gauss) {
		return fmt.Errorf("%w: len(pars)=%d, want %d", ErrBadPars, len(pars), 6*len(m.gauss))
	}

	for i := range m.gauss {
		beg := i * 6
		err := m.gauss[i].set(pars[beg], pars[beg+1], pars[beg+2], pars[beg+3], pars[beg+4], pars[beg+5])
		if err != nil {
			return err
		}
	}

	return nil
}

// FullPars returns the full parameter array of the mixture, six values
// per component in storage order.
func (m *GMix) FullPars() []float64 {
	pars := make([]float64, 6*len(m.gauss))
	for i := range m.gauss {
		g := &m.gauss[i]
		beg := i * 6
		pars[beg] = g.p
		pars[beg+1] = g.row
		pars[beg+2] = g.col
		pars[beg+3] = g.irr
		pars[beg+4] = g.irc
		pars[beg+5] = g.icc
	}

	return pars
}

// Copy returns a new mixture with the same components.
func (m *GMix) Copy() *GMix {
	out := New(len(m.gauss))
	copy(out.gauss, m.gauss)

	return out
}

// Eval returns the mixture value at (row, col): the sum of all component
// evaluations in stored order, with no early termination.
func (m *GMix) Eval(row, col float64) float64 {
	val := 0.0
	for i := range m.gauss {
		val += m.gauss[i].Eval(row, col)
	}

	return val
}

// Psum returns the sum of component weights.
func (m *GMix) Psum() float64 {
	psum := 0.0
	for i := range m.gauss {
		psum += m.gauss[i].p
	}

	return psum
}

// SetPsum rescales all weights so they sum to psum. Only p and pnorm
// change; centers and covariances are untouched.
func (m *GMix) SetPsum(psum float64) error {
	psum0 := m.Psum()
	if psum0 == 0 {
		return ErrZeroPsum
	}

	rat := psum / psum0
	for i := range m.gauss {
		g := &m.gauss[i]
		g.p *= rat
		g.pnorm = g.p * g.norm
	}

	return nil
}

// Cen returns the weight-averaged center of the mixture. A zero weight
// sum propagates NaN.
func (m *GMix) Cen() (row, col float64) {
	var psum float64
	for i := range m.gauss {
		g := &m.gauss[i]
		row += g.p * g.row
		col += g.p * g.col
		psum += g.p
	}

	return row / psum, col / psum
}

// SetCen rigidly shifts all components so the weight-averaged center
// lands on (row, col).
func (m *GMix) SetCen(row, col float64) {
	curRow, curCol := m.Cen()
	rowShift := row - curRow
	colShift := col - curCol

	for i := range m.gauss {
		m.gauss[i].row += rowShift
		m.gauss[i].col += colShift
	}
}

// T returns the weight-averaged size moment sum(p*(irr+icc))/sum(p).
func (m *GMix) T() float64 {
	var tsum, psum float64
	for i := range m.gauss {
		g := &m.gauss[i]
		tsum += g.p * (g.irr + g.icc)
		psum += g.p
	}

	return tsum / psum
}

// E1E2T returns the ellipticity and size of the weight-averaged
// covariance of the mixture. Only meaningful when the component centers
// coincide. Returns ErrNonPositiveT when the averaged T is not positive.
func (m *GMix) E1E2T() (e1, e2, T float64, err error) {
	var irr, irc, icc, psum float64
	for i := range m.gauss {
		g := &m.gauss[i]
		irr += g.p * g.irr
		irc += g.p * g.irc
		icc += g.p * g.icc
		psum += g.p
	}

	ipsum := 1.0 / psum
	irr *= ipsum
	irc *= ipsum
	icc *= ipsum

	T = irr + icc
	if !(T > 0) {
		return 0, 0, T, fmt.Errorf("%w: T=%g", ErrNonPositiveT, T)
	}

	return (icc - irr) / T, 2 * irc / T, T, nil
}

// G1G2T is like [GMix.E1E2T] with the ellipticity converted to reduced
// shear.
func (m *GMix) G1G2T() (g1, g2, T float64, err error) {
	e1, e2, T, err := m.E1E2T()
	if err != nil {
		return 0, 0, T, err
	}

	g1, g2, err = E1E2ToG1G2(e1, e2)
	if err != nil {
		return 0, 0, T, err
	}

	return g1, g2, T, nil
}

// String formats one component per line.
func (m *GMix) String() string {
	var b strings.Builder
	for i := range m.gauss {
		g := &m.gauss[i]
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "p: %-10.5g row: %-10.5g col: %-10.5g irr: %-10.5g irc: %-10.5g icc: %-10.5g",
			g.p, g.row, g.col, g.irr, g.irc, g.icc)
	}

	return b.String()
}
