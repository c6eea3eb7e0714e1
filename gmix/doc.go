// Package gmix evaluates sums of 2-D elliptical gaussians ("gaussian
// mixtures") at image coordinates. It is the inner loop of an
// image-model-fitting pipeline: a mixture is built once per model
// evaluation and then evaluated once per pixel against millions of
// pixels, so the hot path is branch-light, allocation-free, and uses the
// fast table-driven exponential from the fastexp package with a hard
// chi-square tail cutoff.
//
// A [Gauss2D] carries its inverse-covariance coefficients and
// normalization precomputed; all derived fields are functions of
// (p, row, col, irr, irc, icc) and are recomputed together by the single
// construction path, never mutated independently. A [GMix] is an ordered
// sequence of components; evaluation sums contributions in stored order
// so results are reproducible.
//
// Beyond point evaluation the package provides model constructors
// ([NewModel]), analytic convolution, image rendering with sub-pixel
// integration and optional Jacobian coordinate transforms, and a
// weighted log-likelihood for fitting loops.
//
// Evaluation never returns errors: malformed inputs (a covariance with
// det <= 0 can only be produced by bypassing the constructors) propagate
// NaN rather than panic, so a fitting loop can detect and reject the
// sample. Errors are returned only from construction and from
// shape/parameter conversions.
package gmix
