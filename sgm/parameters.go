package sgm

import (
	"fmt"
	"io"

	"github.com/sgmvision/camsgm/disparity"
	"gopkg.in/yaml.v3"
)

// ImageType selects which rimage representation a matching run reads. Only
// Grey and MaskedGrey are actually wired; Color and MaskedColor are kept as
// declared-but-unsupported enum values, matching the original SgmCreator
// (which only ever instantiated GreyScaleImage and MaskedImage<GreyScaleImage>).
type ImageType int

const (
	Grey ImageType = iota
	Color
	MaskedGrey
	MaskedColor
)

func (t ImageType) String() string {
	switch t {
	case Grey:
		return "Grey"
	case Color:
		return "Color"
	case MaskedGrey:
		return "MaskedGrey"
	case MaskedColor:
		return "MaskedColor"
	default:
		return fmt.Sprintf("ImageType(%d)", int(t))
	}
}

// Parameters holds everything one matching run needs, mirroring the native
// SgmParameters field set. It is a plain struct: the field set is fixed by
// the algorithm, not composed incrementally by callers.
type Parameters struct {
	Rows, Cols int
	ImageType  ImageType

	MaxParallelTasks int
	MaxDisparity     int

	CensusMaskRadius int

	LowPenaltyCoeff    float64
	HighPenaltyCoeff   float64
	IntensityThreshold float64

	DisparityMeanMethod           disparity.MeanMethod
	DisparityCostMethod           disparity.CostMethod
	DisparityPathLengthThreshold  float64
	CostMethodPower               float64
}

// DefaultParameters returns a Parameters with sensible defaults for an
// image of the given size. Callers still need to set MaxDisparity and
// CensusMaskRadius for their scene; everything else is a reasonable
// starting point.
func DefaultParameters(rows, cols int) Parameters {
	return Parameters{
		Rows:                          rows,
		Cols:                          cols,
		ImageType:                     Grey,
		MaxParallelTasks:              4,
		MaxDisparity:                  64,
		CensusMaskRadius:              3,
		LowPenaltyCoeff:               0.1,
		HighPenaltyCoeff:              0.3,
		IntensityThreshold:            30,
		DisparityMeanMethod:           disparity.SimpleAverage,
		DisparityCostMethod:           disparity.DistanceToMean,
		DisparityPathLengthThreshold:  2,
		CostMethodPower:               2,
	}
}

// Validate checks structural sanity. It does not clamp CensusMaskRadius —
// that is Creator's job, since the clamp-vs-reject split (>7 clamps, <1
// rejects) is specific to how a Creator turns Parameters into a running
// Controller.
func (p Parameters) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: rows/cols must be positive", ErrInvalidParameters)
	}
	if p.MaxParallelTasks <= 0 {
		return fmt.Errorf("%w: maxParallelTasks must be positive", ErrInvalidParameters)
	}
	if p.MaxDisparity <= 0 {
		return fmt.Errorf("%w: maxDisparity must be positive", ErrInvalidParameters)
	}
	if p.CensusMaskRadius < 1 {
		return fmt.Errorf("%w", ErrInvalidMaskRadius)
	}
	return nil
}

// LoadParametersYAML reads a Parameters value from a YAML document, for
// host code that wants to store SGM tuning presets as config files.
func LoadParametersYAML(r io.Reader) (Parameters, error) {
	var p Parameters
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return Parameters{}, fmt.Errorf("sgm: decoding parameters: %w", err)
	}
	return p, nil
}
