package gmix

import (
	"fmt"
	"math"
)

// Model identifies a fixed gaussian-mixture approximation of a galaxy or
// PSF profile.
type Model int

const (
	// ModelGauss is a single gaussian.
	ModelGauss Model = iota
	// ModelExp approximates an exponential disc with 6 gaussians.
	ModelExp
	// ModelDev approximates a de Vaucouleurs profile with 10 gaussians.
	ModelDev
	// ModelTurb approximates a turbulent-atmosphere PSF with 3 gaussians.
	ModelTurb
)

// modelTable holds the fixed size and weight fractions of a model. The
// values are empirical fits; preserve them exactly.
type modelTable struct {
	name  string
	fvals []float64
	pvals []float64
}

var modelTables = map[Model]modelTable{
	ModelGauss: {
		name:  "gauss",
		fvals: []float64{1.0},
		pvals: []float64{1.0},
	},
	ModelExp: {
		name: "exp",
		fvals: []float64{
			0.002467115141477932,
			0.018147435573256168,
			0.07944063151366336,
			0.27137669897479122,
			0.79782256866993773,
			2.1623306025075739,
		},
		pvals: []float64{
			0.00061601229677880041,
			0.0079461395724623237,
			0.053280454055540001,
			0.21797364640726541,
			0.45496740582554868,
			0.26521634184240478,
		},
	},
	ModelDev: {
		name: "dev",
		fvals: []float64{
			2.9934935706271918e-07,
			3.4651596338231207e-06,
			2.4807910570562753e-05,
			0.00014307404300535354,
			0.000727531692982395,
			0.003458246439442726,
			0.0160866454407191,
			0.077006776775654429,
			0.41012562102501476,
			2.9812509778548648,
		},
		pvals: []float64{
			6.5288960012625658e-05,
			0.00044199216814302695,
			0.0020859587871659754,
			0.0075913681418996841,
			0.02260266219257237,
			0.056532254390212859,
			0.11939049233042602,
			0.20969545753234975,
			0.29254151133139222,
			0.28905301416582552,
		},
	},
	ModelTurb: {
		name: "turb",
		fvals: []float64{
			0.5793612389470884,
			1.621860687127999,
			7.019347162356363,
		},
		pvals: []float64{
			0.596510042804182,
			0.4034898268889178,
			1.303069003078001e-07,
		},
	},
}

// String returns the model name.
func (m Model) String() string {
	if tbl, ok := modelTables[m]; ok {
		return tbl.name
	}

	return fmt.Sprintf("model(%d)", int(m))
}

// NGauss returns the number of gaussians the model expands to.
func (m Model) NGauss() int {
	if tbl, ok := modelTables[m]; ok {
		return len(tbl.fvals)
	}

	return 0
}

// NPars returns the number of free parameters of the model.
func (m Model) NPars() int {
	return 6
}

// ModelFromName resolves a model by its string name.
func ModelFromName(name string) (Model, error) {
	for m, tbl := range modelTables {
		if tbl.name == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// NewModel builds a mixture from simple model parameters
// [cen1, cen2, g1, g2, T, flux]: center, reduced shear, size moment sum
// and total weight. Each component gets size T*fvals[i] and weight
// flux*pvals[i], sheared by (g1, g2).
func NewModel(pars []float64, model Model) (*GMix, error) {
	tbl, ok := modelTables[model]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(model))
	}
	if len(pars) != model.NPars() {
		return nil, fmt.Errorf("%w: model %q requires %d pars, got %d",
			ErrBadPars, tbl.name, model.NPars(), len(pars))
	}

	row := pars[0]
	col := pars[1]
	T := pars[4]
	counts := pars[5]

	e1, e2, err := G1G2ToE1E2(pars[2], pars[3])
	if err != nil {
		return nil, err
	}

	m := New(len(tbl.fvals))
	for i := range tbl.fvals {
		Ti := T * tbl.fvals[i]
		countsI := counts * tbl.pvals[i]

		err := m.SetGauss(i, countsI, row, col,
			(Ti/2)*(1-e1),
			(Ti/2)*e2,
			(Ti/2)*(1+e1))
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// G1G2ToE1E2 converts reduced shear to ellipticity using
// e = 2g/(1+|g|^2). Returns ErrBadShear for |g| >= 1.
func G1G2ToE1E2(g1, g2 float64) (e1, e2 float64, err error) {
	gsq := g1*g1 + g2*g2
	if gsq >= 1 {
		return 0, 0, fmt.Errorf("%w: |g|=%g", ErrBadShear, math.Sqrt(gsq))
	}
	if gsq == 0 {
		return 0, 0, nil
	}

	fac := 2 / (1 + gsq)

	return g1 * fac, g2 * fac, nil
}

// E1E2ToG1G2 is the inverse of [G1G2ToE1E2]: g = e/(1+sqrt(1-|e|^2)).
// Returns ErrBadShear for |e| >= 1.
func E1E2ToG1G2(e1, e2 float64) (g1, g2 float64, err error) {
	esq := e1*e1 + e2*e2
	if esq >= 1 {
		return 0, 0, fmt.Errorf("%w: |e|=%g", ErrBadShear, math.Sqrt(esq))
	}
	if esq == 0 {
		return 0, 0, nil
	}

	fac := 1 / (1 + math.Sqrt(1-esq))

	return e1 * fac, e2 * fac, nil
}
