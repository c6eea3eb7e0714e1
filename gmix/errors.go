package gmix

import "errors"

// Errors returned by constructors and parameter conversions.
var (
	ErrBadDet       = errors.New("gmix: covariance determinant not positive")
	ErrBadPars      = errors.New("gmix: bad parameter length")
	ErrBadShear     = errors.New("gmix: shear magnitude out of range")
	ErrUnknownModel = errors.New("gmix: unknown model")
	ErrEmptyMixture = errors.New("gmix: empty mixture")
	ErrZeroPsum     = errors.New("gmix: zero weight sum")
	ErrNonPositiveT = errors.New("gmix: non-positive total T")
	ErrBadDims      = errors.New("gmix: bad image dimensions")
	ErrDimsMismatch = errors.New("gmix: image dimensions mismatch")
)
