package census

import "errors"

// ErrInvalidMaskRadius is returned when the requested window radius is
// non-positive or would overflow a bitword.BitWord signature.
var ErrInvalidMaskRadius = errors.New("census: invalid mask radius")

// ErrDimensionMismatch is returned when the base and matched images do not
// share the same dimensions.
var ErrDimensionMismatch = errors.New("census: base and matched image dimensions differ")
