package fastexp

import "math"

// exp3MinArg is the most negative integer argument covered by the Exp3
// lookup table.
const exp3MinArg = -26

// exp3Lookup holds e^i for i in [exp3MinArg, 0].
var exp3Lookup = makeExp3Table()

func makeExp3Table() [1 - exp3MinArg]float64 {
	var tbl [1 - exp3MinArg]float64
	for i := range tbl {
		tbl[i] = math.Exp(float64(exp3MinArg + i))
	}

	return tbl
}

// Exp3 returns a third-order approximation of e^x for x in [-25.5, 0].
//
// The argument is split into the nearest integer and a fractional part f
// in [-0.5, 0.5]; e^f is approximated by the cubic Taylor polynomial
// (6 + f*(6 + f*(3 + f)))/6. The relative error is below 5e-3. Arguments
// outside the domain index past the table and panic.
func Exp3(x float64) float64 {
	ival := int(x - 0.5)
	f := x - float64(ival)
	expval := exp3Lookup[ival-exp3MinArg]

	return expval * ((6 + f*(6+f*(3+f))) * 0.16666666)
}
