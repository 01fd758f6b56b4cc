package rimage

import "errors"

// ErrInvalidDimensions is returned when an image is constructed with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("rimage: invalid dimensions")

// ErrMaskDimensionMismatch is returned when a validity mask's dimensions do
// not match the image it is paired with.
var ErrMaskDimensionMismatch = errors.New("rimage: mask dimensions do not match image")

// ErrUnsupportedImageType is returned by callers (e.g. sgm.Creator) that
// reject Color and MaskedColor inputs — the algorithm only ever matches on
// single-channel intensity.
var ErrUnsupportedImageType = errors.New("rimage: unsupported image type, expected grey or masked grey")
