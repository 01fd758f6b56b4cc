package sgm

import (
	"fmt"

	"github.com/sgmvision/camsgm/aggregator"
	"github.com/sgmvision/camsgm/disparity"
	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/rimage"
	"github.com/rs/zerolog"
)

// clampMaskRadius mirrors SgmCreator's own clamp: radii above 7 are
// silently brought down to the largest supported window. Radii below 1 are
// never clamped up — they are rejected by Parameters.Validate before this
// is even reached.
func clampMaskRadius(r int) int {
	if r > 7 {
		return 7
	}
	return r
}

// checkImageType rejects Color and MaskedColor outright: they are declared
// enum values with no matching implementation, exactly as the original
// SgmCreator only ever instantiated the grey and masked-grey template
// specializations.
func checkImageType(want, got ImageType) error {
	if got != want {
		return fmt.Errorf("%w: parameters declare %s", rimage.ErrUnsupportedImageType, got)
	}
	return nil
}

func buildConfig(p Parameters) aggregator.Config {
	return aggregator.Config{
		Rows:                      p.Rows,
		Cols:                      p.Cols,
		MaxDisparity:              p.MaxDisparity,
		LowPenaltyCoeff:           p.LowPenaltyCoeff,
		HighPenaltyCoeff:          p.HighPenaltyCoeff,
		IntensityThreshold:        p.IntensityThreshold,
		CensusMaskRadius:          clampMaskRadius(p.CensusMaskRadius),
		DisparityMeanMethod:       p.DisparityMeanMethod,
		DisparityCostMethod:       p.DisparityCostMethod,
		DisparityPathLengthThresh: p.DisparityPathLengthThreshold,
		DisparityCostMethodPower:  p.CostMethodPower,
	}
}

func checkDimensions(p Parameters, left, right *rimage.Grey) error {
	if left.Width() != p.Cols || left.Height() != p.Rows {
		return fmt.Errorf("%w: left image", ErrDimensionMismatch)
	}
	if right.Width() != p.Cols || right.Height() != p.Rows {
		return fmt.Errorf("%w: right image", ErrDimensionMismatch)
	}
	return nil
}

// createAggregators validates params against the image pair and builds the
// fresh left-base and right-base aggregators (and the disparity maps they
// write into) one Process call needs. params.ImageType must already have
// been checked by the caller (Controller.Process vs Controller.ProcessMasked
// dispatch on Grey vs MaskedGrey).
func createAggregators(p Parameters, left, right *rimage.Grey, log zerolog.Logger) (*aggregator.Aggregator, *aggregator.Aggregator, *matrix.Array2D[disparity.Disparity], *matrix.Array2D[disparity.Disparity], error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := checkDimensions(p, left, right); err != nil {
		return nil, nil, nil, nil, err
	}

	cfg := buildConfig(p)

	leftToRight, err := matrix.NewArray2D[disparity.Disparity](p.Rows, p.Cols)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rightToLeft, err := matrix.NewArray2D[disparity.Disparity](p.Rows, p.Cols)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	leftAgg, err := aggregator.New(cfg, true, left, right, leftToRight, log)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	rightAgg, err := aggregator.New(cfg, false, right, left, rightToLeft, log)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return leftAgg, rightAgg, leftToRight, rightToLeft, nil
}
