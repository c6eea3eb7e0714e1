package gmix

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-gmix/internal/testutil"
)

func TestNewImageBadDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}, {4, -1}} {
		_, err := NewImage(dims[0], dims[1])
		if !errors.Is(err, ErrBadDims) {
			t.Fatalf("dims %v: err = %v, want ErrBadDims", dims, err)
		}
	}
}

func TestImageAtSet(t *testing.T) {
	im, err := NewImage(3, 4)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	im.Set(1, 2, 7.5)
	if got := im.At(1, 2); got != 7.5 {
		t.Fatalf("At(1,2) = %v, want 7.5", got)
	}
	if got := im.Data()[1*4+2]; got != 7.5 {
		t.Fatalf("Data()[6] = %v, want 7.5", got)
	}
}

func TestImageStats(t *testing.T) {
	im, err := NewImage(2, 2)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	copy(im.Data(), []float64{1, -2, 3, 0.5})

	if got := im.Sum(); got != 2.5 {
		t.Fatalf("Sum = %v, want 2.5", got)
	}
	if got := im.Min(); got != -2 {
		t.Fatalf("Min = %v, want -2", got)
	}
	if got := im.Max(); got != 3 {
		t.Fatalf("Max = %v, want 3", got)
	}

	im.AddScalar(2)
	testutil.RequireSliceNearlyEqual(t, im.Data(), []float64{3, 0, 5, 2.5}, 0)
}

func TestImageAddMulScale(t *testing.T) {
	a, err := NewImage(2, 3)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	b, err := NewImage(2, 3)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	copy(a.Data(), []float64{1, 2, 3, 4, 5, 6})
	copy(b.Data(), []float64{2, 2, 2, 0.5, 0.5, 0.5})

	if err := a.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a.Data(), []float64{3, 4, 5, 4.5, 5.5, 6.5}, 0)

	if err := a.MulElems(b); err != nil {
		t.Fatalf("MulElems: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a.Data(), []float64{6, 8, 10, 2.25, 2.75, 3.25}, 1e-15)

	a.Scale(2)
	testutil.RequireSliceNearlyEqual(t, a.Data(), []float64{12, 16, 20, 4.5, 5.5, 6.5}, 1e-15)

	sc := a.ScaledCopy(0.5)
	testutil.RequireSliceNearlyEqual(t, sc.Data(), []float64{6, 8, 10, 2.25, 2.75, 3.25}, 1e-15)
	if sc.Data()[0] == a.Data()[0] {
		t.Fatalf("ScaledCopy shares values it should not: %v", sc.Data()[0])
	}
}

func TestImageDimsMismatch(t *testing.T) {
	a, _ := NewImage(2, 3)
	b, _ := NewImage(3, 2)

	if err := a.Add(b); !errors.Is(err, ErrDimsMismatch) {
		t.Fatalf("Add: err = %v, want ErrDimsMismatch", err)
	}
	if err := a.MulElems(b); !errors.Is(err, ErrDimsMismatch) {
		t.Fatalf("MulElems: err = %v, want ErrDimsMismatch", err)
	}
}

func TestImageClone(t *testing.T) {
	a, err := NewImage(2, 2)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	copy(a.Data(), []float64{1, 2, 3, 4})

	c := a.Clone()
	c.Set(0, 0, 99)

	if a.At(0, 0) != 1 {
		t.Fatalf("original mutated through clone: %v", a.At(0, 0))
	}
	if c.Rows() != 2 || c.Cols() != 2 {
		t.Fatalf("clone dims = %dx%d, want 2x2", c.Rows(), c.Cols())
	}
}
