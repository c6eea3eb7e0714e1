package gmix

import (
	"errors"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-gmix/internal/testutil"
)

func TestConvolveSingleGauss(t *testing.T) {
	obj, err := NewFromPars([]float64{2.0, 1.0, 2.0, 3.0, 0.5, 4.0})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}
	psf, err := NewFromPars([]float64{5.0, 0.5, -0.5, 1.0, 0, 1.5})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}

	conv, err := obj.Convolve(psf)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	if conv.Len() != 1 {
		t.Fatalf("Len = %d, want 1", conv.Len())
	}

	// With a single psf component its offset from the psf center is zero,
	// weights normalize away and covariances add exactly.
	g := conv.Gauss(0)
	if g.P() != 2.0 {
		t.Fatalf("p = %v, want 2", g.P())
	}
	if g.Row() != 1.0 || g.Col() != 2.0 {
		t.Fatalf("center = (%v, %v), want (1, 2)", g.Row(), g.Col())
	}
	if g.Irr() != 4.0 || g.Irc() != 0.5 || g.Icc() != 5.5 {
		t.Fatalf("moments = (%v, %v, %v), want (4, 0.5, 5.5)", g.Irr(), g.Irc(), g.Icc())
	}
}

func TestConvolveMoments(t *testing.T) {
	obj, err := NewModel([]float64{10, 10, 0.1, -0.05, 8.0, 3.0}, ModelExp)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	psf, err := NewModel([]float64{0, 0, 0, 0, 4.0, 1.0}, ModelTurb)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	conv, err := obj.Convolve(psf)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	if conv.Len() != obj.Len()*psf.Len() {
		t.Fatalf("Len = %d, want %d", conv.Len(), obj.Len()*psf.Len())
	}

	// Total weight is the object's, the size moments add.
	testutil.RequireRelNear(t, conv.Psum(), obj.Psum(), 1e-12)
	testutil.RequireRelNear(t, conv.T(), obj.T()+psf.T(), 1e-10)

	row, col := conv.Cen()
	testutil.RequireRelNear(t, row, 10.0, 1e-10)
	testutil.RequireRelNear(t, col, 10.0, 1e-10)
}

func TestConvolveErrors(t *testing.T) {
	m, err := NewFromPars([]float64{1.0, 0, 0, 4.0, 0, 4.0})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}

	if _, err := m.Convolve(New(0)); !errors.Is(err, ErrEmptyMixture) {
		t.Fatalf("empty psf: err = %v, want ErrEmptyMixture", err)
	}
	if _, err := New(0).Convolve(m); !errors.Is(err, ErrEmptyMixture) {
		t.Fatalf("empty object: err = %v, want ErrEmptyMixture", err)
	}

	zpsf, err := NewFromPars([]float64{
		1.0, 0, 0, 4.0, 0, 4.0,
		-1.0, 0, 0, 4.0, 0, 4.0,
	})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}
	if _, err := m.Convolve(zpsf); !errors.Is(err, ErrZeroPsum) {
		t.Fatalf("zero-psum psf: err = %v, want ErrZeroPsum", err)
	}
}

// fft2 runs an in-place 2-D transform over an n x n row-major grid using
// a 1-D plan, rows first then columns.
func fft2(t *testing.T, plan *algofft.Plan[complex128], data []complex128, n int, inverse bool) {
	t.Helper()

	out := make([]complex128, n)
	col := make([]complex128, n)

	transform := plan.Forward
	if inverse {
		transform = plan.Inverse
	}

	for r := 0; r < n; r++ {
		row := data[r*n : (r+1)*n]
		if err := transform(out, row); err != nil {
			t.Fatalf("row transform: %v", err)
		}
		copy(row, out)
	}

	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = data[r*n+c]
		}
		if err := transform(out, col); err != nil {
			t.Fatalf("column transform: %v", err)
		}
		for r := 0; r < n; r++ {
			data[r*n+c] = out[r]
		}
	}
}

func renderComplex(t *testing.T, m *GMix, n int) []complex128 {
	t.Helper()

	im, err := m.MakeImage(n, n)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}

	out := make([]complex128, n*n)
	for i, v := range im.Data() {
		out[i] = complex(v, 0)
	}

	return out
}

func TestConvolveMatchesFFT(t *testing.T) {
	const n = 64
	cen := float64(n / 2)

	obj, err := NewModel([]float64{cen, cen, 0.1, -0.05, 8.0, 1.0}, ModelGauss)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	psf, err := NewFromPars([]float64{1.0, 0, 0, 2.0, 0, 2.0})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}

	conv, err := obj.Convolve(psf)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	want, err := conv.MakeImage(n, n)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}

	// The psf image for circular convolution is centered on the origin,
	// which wraps across all four grid corners.
	psfWrapped, err := NewFromPars([]float64{
		1.0, 0, 0, 2.0, 0, 2.0,
		1.0, 0, n, 2.0, 0, 2.0,
		1.0, n, 0, 2.0, 0, 2.0,
		1.0, n, n, 2.0, 0, 2.0,
	})
	if err != nil {
		t.Fatalf("NewFromPars: %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	objGrid := renderComplex(t, obj, n)
	psfGrid := renderComplex(t, psfWrapped, n)

	fft2(t, plan, objGrid, n, false)
	fft2(t, plan, psfGrid, n, false)
	for i := range objGrid {
		objGrid[i] *= psfGrid[i]
	}
	fft2(t, plan, objGrid, n, true)

	var maxDiff float64
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			diff := real(objGrid[r*n+c]) - want.At(r, c)
			if diff < 0 {
				diff = -diff
			}
			if diff > maxDiff {
				maxDiff = diff
			}
		}
	}

	// Residual error comes from the evaluation cutoff truncating the
	// gaussian tails below exp(-12.5).
	if maxDiff > 1e-5 {
		t.Fatalf("max pixel difference %v between analytic and FFT convolution", maxDiff)
	}
}
