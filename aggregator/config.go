package aggregator

import (
	"fmt"

	"github.com/sgmvision/camsgm/disparity"
)

// Config holds the tunables a cost aggregation run needs. It is a plain
// struct rather than functional options: every field is mandatory and the
// set is fixed by the matching algorithm, not something callers compose
// incrementally.
type Config struct {
	Rows, Cols   int
	MaxDisparity int

	// LowPenaltyCoeff and HighPenaltyCoeff scale the Census cost's maximum
	// value into the P1/P2 smoothness penalties.
	LowPenaltyCoeff  float64
	HighPenaltyCoeff float64

	// IntensityThreshold gates how strongly P2 is applied across a likely
	// depth discontinuity: a sharp intensity change beyond this threshold
	// gets the plain P2 penalty, a gentle one gets P2 doubled.
	IntensityThreshold float64

	CensusMaskRadius int

	DisparityMeanMethod        disparity.MeanMethod
	DisparityCostMethod        disparity.CostMethod
	DisparityPathLengthThresh  float64
	DisparityCostMethodPower   float64
}

// Validate checks Config fields are in range. CensusMaskRadius is clamped
// to [1,7] by the caller (sgm.Creator) before a Config ever reaches here;
// Validate still rejects an out-of-range value defensively.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: rows/cols must be positive", ErrInvalidConfig)
	}
	if c.MaxDisparity <= 0 {
		return fmt.Errorf("%w: maxDisparity must be positive", ErrInvalidConfig)
	}
	if c.CensusMaskRadius < 1 || c.CensusMaskRadius > 7 {
		return fmt.Errorf("%w: censusMaskRadius must be in [1,7]", ErrInvalidConfig)
	}
	return nil
}
