package rimage

import "github.com/sgmvision/camsgm/matrix"

// MaskedGrey pairs a Grey image with a per-pixel validity mask. Pixels
// marked invalid (e.g. from a sensor dropout or a hand-painted exclusion
// region) are honored only by disparity finalization, which writes them as
// disparity.Invalid instead of selecting a disparity for them. Census and
// the aggregation sweeps read their intensity like any other pixel.
type MaskedGrey struct {
	Grey
	valid *matrix.Array2D[bool]
}

// NewMaskedGrey allocates a width×height masked grey image, initially valid
// everywhere.
func NewMaskedGrey(width, height int) (*MaskedGrey, error) {
	g, err := NewGrey(width, height)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewArray2D[bool](height, width)
	if err != nil {
		return nil, err
	}
	v.Fill(true)
	return &MaskedGrey{Grey: *g, valid: v}, nil
}

// NewMaskedGreyFrom pairs an existing Grey image with a validity mask. The
// mask's dimensions must match the image's.
func NewMaskedGreyFrom(g Grey, valid *matrix.Array2D[bool]) (*MaskedGrey, error) {
	if valid.Rows() != g.Height() || valid.Cols() != g.Width() {
		return nil, ErrMaskDimensionMismatch
	}
	return &MaskedGrey{Grey: g, valid: valid}, nil
}

// IsValid reports whether (row, col) is usable, bounds notwithstanding.
// Coordinates outside the image are never valid.
func (m *MaskedGrey) IsValid(row, col int) bool {
	if !m.InBounds(row, col) {
		return false
	}
	return m.valid.Get(row, col)
}

// SetValid marks (row, col) valid or invalid.
func (m *MaskedGrey) SetValid(row, col int, v bool) error {
	return m.valid.Set(row, col, v)
}

// ValidityMask returns the underlying per-pixel validity mask, for callers
// (sgm.Controller) that need to thread it into aggregation directly rather
// than re-querying IsValid pixel by pixel.
func (m *MaskedGrey) ValidityMask() *matrix.Array2D[bool] {
	return m.valid
}
