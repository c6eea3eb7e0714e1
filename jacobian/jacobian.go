// Package jacobian describes the affine transform from image pixel
// coordinates (row, col) to the local (u, v) coordinate system in which
// gaussian mixtures are defined.
package jacobian

import (
	"fmt"
	"math"
)

// Jacobian is an affine map from a reference pixel (row0, col0) with
// partial derivatives (dudrow, dudcol, dvdrow, dvdcol) to local (u, v)
// coordinates. It is a read-only value object: construct it once per
// image, then share it freely.
type Jacobian struct {
	row0, col0 float64

	dudrow, dudcol float64
	dvdrow, dvdcol float64

	det, sdet float64
}

// New returns a Jacobian centered on (row0, col0) with the given partial
// derivatives. The determinant and its square root are derived here and
// never mutated afterwards.
func New(row0, col0, dudrow, dudcol, dvdrow, dvdcol float64) Jacobian {
	det := math.Abs(dudrow*dvdcol - dudcol*dvdrow)

	return Jacobian{
		row0: row0, col0: col0,
		dudrow: dudrow, dudcol: dudcol,
		dvdrow: dvdrow, dvdcol: dvdcol,
		det: det, sdet: math.Sqrt(det),
	}
}

// Unit returns the identity transform centered on (row0, col0): u and v
// are plain pixel offsets.
func Unit(row0, col0 float64) Jacobian {
	return New(row0, col0, 1, 0, 0, 1)
}

// Diagonal returns an isotropic transform with the given pixel scale.
func Diagonal(row0, col0, scale float64) Jacobian {
	return New(row0, col0, scale, 0, 0, scale)
}

// Cen returns the reference pixel of the transform.
func (j Jacobian) Cen() (row0, col0 float64) {
	return j.row0, j.col0
}

// Det returns the determinant of the transform matrix.
func (j Jacobian) Det() float64 {
	return j.det
}

// Scale returns the linear pixel scale, sqrt(det).
func (j Jacobian) Scale() float64 {
	return j.sdet
}

// Apply maps a pixel coordinate to local (u, v) coordinates.
func (j Jacobian) Apply(row, col float64) (u, v float64) {
	rd := row - j.row0
	cd := col - j.col0

	return j.dudrow*rd + j.dudcol*cd, j.dvdrow*rd + j.dvdcol*cd
}

// ColStep returns the change in (u, v) per unit column step, used by
// evaluation loops that walk a row of pixels.
func (j Jacobian) ColStep() (du, dv float64) {
	return j.dudcol, j.dvdcol
}

// RowStep returns the change in (u, v) per unit row step.
func (j Jacobian) RowStep() (du, dv float64) {
	return j.dudrow, j.dvdrow
}

// String formats the transform in a single line.
func (j Jacobian) String() string {
	return fmt.Sprintf("row0: %g col0: %g dudrow: %g dudcol: %g dvdrow: %g dvdcol: %g",
		j.row0, j.col0, j.dudrow, j.dudcol, j.dvdrow, j.dvdcol)
}
