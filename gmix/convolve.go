package gmix

// Convolve returns the analytic convolution of the mixture with psf: one
// component per (object, psf) pair, with covariances added, centers
// offset by the psf component's offset from the psf center, and weights
// multiplied (the psf weights normalized away, so the total weight of
// the result equals the object's).
func (m *GMix) Convolve(psf *GMix) (*GMix, error) {
	if m.Len() == 0 || psf.Len() == 0 {
		return nil, ErrEmptyMixture
	}

	psfPsum := psf.Psum()
	if psfPsum == 0 {
		return nil, ErrZeroPsum
	}
	psfRow, psfCol := psf.Cen()
	ipsum := 1.0 / psfPsum

	out := New(m.Len() * psf.Len())
	k := 0
	for i := range m.gauss {
		obj := &m.gauss[i]
		for j := range psf.gauss {
			pg := &psf.gauss[j]

			err := out.gauss[k].set(
				obj.p*pg.p*ipsum,
				obj.row+(pg.row-psfRow),
				obj.col+(pg.col-psfCol),
				obj.irr+pg.irr,
				obj.irc+pg.irc,
				obj.icc+pg.icc)
			if err != nil {
				return nil, err
			}
			k++
		}
	}

	return out, nil
}
