package aggregator

import "errors"

// ErrTerminated is returned by ComputeMatchingCosts when Terminate or a
// cancelled context stopped the run before it reached the end.
var ErrTerminated = errors.New("aggregator: run terminated before completion")

// ErrInvalidConfig is returned when Config fields fail validation.
var ErrInvalidConfig = errors.New("aggregator: invalid configuration")
