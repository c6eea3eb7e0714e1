// Package fastexp provides fast approximate exponential functions for
// evaluation loops where a small, bounded relative error is acceptable.
//
// Two approximations are provided:
//
//   - [Expd] is a table-plus-polynomial exponential in the style of the
//     fmath library: the integer and fractional parts of x/ln2 are
//     extracted with a single bias-add bit trick, the fractional power of
//     two comes from a precomputed mantissa table, and a short cubic
//     polynomial removes the residual. It is branch-free, runs in constant
//     time, and its relative error stays below 1e-11 over the working
//     range of the mixture evaluation code (arguments in [-12.5, 0]).
//
//   - [Exp3] is a cruder third-order approximation built on a lookup table
//     of e^i for integer i, accurate to a few parts in 1e3. It matches the
//     rendering path of legacy mixture-fitting codes and is kept for
//     callers that need that exact error profile.
//
// Neither function is a general replacement for math.Exp: behavior outside
// the documented domains is unspecified. The approximations are part of
// the numeric contract of the evaluation kernel; downstream fits may be
// tuned against their specific error profiles, so swapping in a
// correctly-rounded exponential is not a faithful substitute.
package fastexp
