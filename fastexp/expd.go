package fastexp

import "math"

// Fixed constants of the table-driven exponential. The cutoff-style
// constants (table width, bias, polynomial coefficients) are part of the
// numeric contract and must not be re-derived.
const (
	tableBits = 10
	tableSize = 1 << tableBits
	tableMask = tableSize - 1

	// bias is 3<<51: adding it to x*scale forces the rounded integer
	// value of x*scale into the low mantissa bits of the sum.
	bias = 6755399441055744.0

	// adj re-biases the extracted integer bits so that, after shifting
	// into the IEEE-754 exponent field, the exponent comes out offset
	// by the standard 1023.
	adj = (1 << (tableBits + 10)) - (1 << tableBits)

	scale    = tableSize / math.Ln2
	invScale = 1.0 / scale

	// Cubic correction for exp(-t) with |t| <= ln2/(2*tableSize).
	c1 = 1.0
	c2 = 0.16666666685227835064
	c3 = 3.0000000027955394
)

// dtbl holds the mantissa bit pattern of 2^(i/tableSize) for each
// fractional index i. Built once at package load, read-only afterwards.
var dtbl = makeTable()

func makeTable() [tableSize]uint64 {
	const mantMask = 1<<52 - 1

	var tbl [tableSize]uint64
	for i := range tbl {
		f := math.Pow(2, float64(i)/tableSize)
		tbl[i] = math.Float64bits(f) & mantMask
	}

	return tbl
}

// Expd returns an approximation of e^x.
//
// The decomposition is exp(x) = 2^k * 2^(i/N) * exp(-t): the integer part
// k lands directly in the exponent bit field, the table supplies the
// mantissa of the fractional power of two, and the cubic polynomial
// corrects the remaining residual t. There is no branching and no
// argument-dependent work.
//
// The caller must keep x inside roughly [-700, 700] to stay within the
// exponent field; the mixture evaluation code only produces arguments in
// [-12.5, 0], where the relative error is below 1e-11.
func Expd(x float64) float64 {
	d := x*scale + bias
	di := math.Float64bits(d)
	iax := dtbl[di&tableMask]

	t := (d-bias)*invScale - x
	u := ((di + adj) >> tableBits) << 52
	y := (c3-t)*(t*t)*c2 - t + c1

	return y * math.Float64frombits(u|iax)
}
