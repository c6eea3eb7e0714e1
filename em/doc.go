// Package em fits gaussian mixtures to images with the
// expectation-maximization algorithm.
//
// EM treats the image as a probability distribution over pixels, so the
// input must be strictly positive; [PrepImage] shifts an arbitrary image
// onto a small positive sky pedestal and returns the pedestal level to
// pass to [Fitter.Run]. Convergence is declared when the relative change
// of the weighted moment sum between iterations drops below the
// tolerance.
package em
