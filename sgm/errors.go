package sgm

import "errors"

// ErrInvalidMaskRadius is returned when CensusMaskRadius is below 1. Values
// above 7 are silently clamped to 7 instead (see Creator), matching the
// original SgmCreator's asymmetric clamp.
var ErrInvalidMaskRadius = errors.New("sgm: census mask radius must be >= 1")

// ErrInvalidParameters is returned by Parameters.Validate for any other
// out-of-range field.
var ErrInvalidParameters = errors.New("sgm: invalid parameters")

// ErrDimensionMismatch is returned when the left or right image passed to
// Controller.Process/ProcessMasked doesn't match Parameters.Rows/
// Parameters.Cols.
var ErrDimensionMismatch = errors.New("sgm: image dimensions do not match parameters")

// ErrNotRun reports that a Controller has not completed a run. LeftToRight
// and RightToLeft do not return it: they return nil before the first
// Process call.
var ErrNotRun = errors.New("sgm: controller has not completed a run")
