package gmix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Image is a dense row-major 2-D pixel grid. The backing slice is
// contiguous so bulk operations run over a single block.
type Image struct {
	rows int
	cols int
	data []float64
}

// NewImage returns a zeroed rows x cols image.
func NewImage(rows, cols int) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDims, rows, cols)
	}

	return &Image{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (im *Image) Rows() int { return im.rows }

// Cols returns the number of columns.
func (im *Image) Cols() int { return im.cols }

// At returns the pixel at (row, col).
func (im *Image) At(row, col int) float64 {
	return im.data[row*im.cols+col]
}

// Set stores v at (row, col).
func (im *Image) Set(row, col int, v float64) {
	im.data[row*im.cols+col] = v
}

// Data returns the backing row-major slice. Mutations write through to
// the image.
func (im *Image) Data() []float64 {
	return im.data
}

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	out := &Image{
		rows: im.rows,
		cols: im.cols,
		data: make([]float64, len(im.data)),
	}
	copy(out.data, im.data)

	return out
}

// Sum returns the sum over all pixels.
func (im *Image) Sum() float64 {
	var sum float64
	for _, v := range im.data {
		sum += v
	}

	return sum
}

// Min returns the smallest pixel value.
func (im *Image) Min() float64 {
	min := im.data[0]
	for _, v := range im.data[1:] {
		if v < min {
			min = v
		}
	}

	return min
}

// Max returns the largest pixel value.
func (im *Image) Max() float64 {
	max := im.data[0]
	for _, v := range im.data[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

// AddScalar adds v to every pixel.
func (im *Image) AddScalar(v float64) {
	for i := range im.data {
		im.data[i] += v
	}
}

// Add accumulates other into the image pixel-wise.
func (im *Image) Add(other *Image) error {
	if im.rows != other.rows || im.cols != other.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimsMismatch,
			im.rows, im.cols, other.rows, other.cols)
	}

	vecmath.AddBlockInPlace(im.data, other.data)

	return nil
}

// MulElems multiplies the image pixel-wise by other.
func (im *Image) MulElems(other *Image) error {
	if im.rows != other.rows || im.cols != other.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimsMismatch,
			im.rows, im.cols, other.rows, other.cols)
	}

	vecmath.MulBlockInPlace(im.data, other.data)

	return nil
}

// Scale multiplies every pixel by s.
func (im *Image) Scale(s float64) {
	vecmath.ScaleBlock(im.data, im.data, s)
}

// ScaledCopy returns a copy with every pixel multiplied by s.
func (im *Image) ScaledCopy(s float64) *Image {
	out := &Image{
		rows: im.rows,
		cols: im.cols,
		data: make([]float64, len(im.data)),
	}
	vecmath.ScaleBlock(out.data, im.data, s)

	return out
}
