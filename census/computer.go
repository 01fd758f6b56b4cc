package census

import (
	"fmt"

	"github.com/sgmvision/camsgm/bitword"
	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/rimage"
)

// Computer holds the Census signatures for one base/matched image pair and
// answers Hamming-distance cost queries against them.
type Computer struct {
	maskRadius int
	maskLength int
	maxCost    int

	censusBase    *matrix.Array2D[bitword.BitWord]
	censusMatched *matrix.Array2D[bitword.BitWord]
}

// NewComputer validates maskRadius and returns a Computer ready for Init.
// maskRadius must be in [1,7], matching the engine-wide mask radius clamp.
func NewComputer(maskRadius int) (*Computer, error) {
	if maskRadius < 1 || maskRadius > 7 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaskRadius, maskRadius)
	}
	side := 2*maskRadius + 1
	return &Computer{
		maskRadius: maskRadius,
		maskLength: side * side,
		maxCost:    side*side - 1,
	}, nil
}

// MaskRadius returns the configured window radius.
func (c *Computer) MaskRadius() int { return c.maskRadius }

// MaskLength returns (2*radius+1)^2, the number of bits in each signature.
func (c *Computer) MaskLength() int { return c.maskLength }

// MaxCost returns the largest possible Hamming distance between two
// signatures of this length.
func (c *Computer) MaxCost() int { return c.maxCost }

// Init computes the Census transform of both images. Both must share the
// same dimensions.
func (c *Computer) Init(base, matched *rimage.Grey) error {
	if base.Width() != matched.Width() || base.Height() != matched.Height() {
		return ErrDimensionMismatch
	}
	rows, cols := base.Height(), base.Width()

	censusBase, err := matrix.NewArray2D[bitword.BitWord](rows, cols)
	if err != nil {
		return err
	}
	censusMatched, err := matrix.NewArray2D[bitword.BitWord](rows, cols)
	if err != nil {
		return err
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bw, err := c.transformPixel(base, y, x)
			if err != nil {
				return err
			}
			censusBase.Put(y, x, bw)

			bw, err = c.transformPixel(matched, y, x)
			if err != nil {
				return err
			}
			censusMatched.Put(y, x, bw)
		}
	}

	c.censusBase = censusBase
	c.censusMatched = censusMatched
	return nil
}

// transformPixel builds the Census signature at (y,x). Out-of-range window
// offsets are reflected back across the nearest edge via Grey.GetMirrored,
// which is a no-op for interior pixels, so the same code path serves both
// interior and border pixels without a special case.
func (c *Computer) transformPixel(img *rimage.Grey, y, x int) (bitword.BitWord, error) {
	bw, err := bitword.New(c.maskLength)
	if err != nil {
		return bitword.BitWord{}, err
	}
	center := img.GetMirrored(y, x)
	pos := 0
	for dy := -c.maskRadius; dy <= c.maskRadius; dy++ {
		for dx := -c.maskRadius; dx <= c.maskRadius; dx++ {
			if img.GetMirrored(y+dy, x+dx) < center {
				if err := bw.SetBit(pos); err != nil {
					return bitword.BitWord{}, err
				}
			}
			pos++
		}
	}
	return bw, nil
}

// GetCost returns the Hamming distance between the base signature at
// pixelBase and the matched signature at pixelMatched.
func (c *Computer) GetCost(pixelBase, pixelMatched matrix.Point) (int, error) {
	b := c.censusBase.GetP(pixelBase)
	m := c.censusMatched.GetP(pixelMatched)
	return b.HammingDistance(m)
}

// GetCostOnBorder is an alias for GetCost: because transformPixel already
// mirrors out-of-range window offsets at build time, border pixels carry a
// full-length signature like any other and need no separate cost formula.
func (c *Computer) GetCostOnBorder(pixelBase, pixelMatched matrix.Point) (int, error) {
	return c.GetCost(pixelBase, pixelMatched)
}

// CensusBase returns the computed Census signature matrix for the base image.
func (c *Computer) CensusBase() *matrix.Array2D[bitword.BitWord] { return c.censusBase }

// CensusMatched returns the computed Census signature matrix for the matched image.
func (c *Computer) CensusMatched() *matrix.Array2D[bitword.BitWord] { return c.censusMatched }
