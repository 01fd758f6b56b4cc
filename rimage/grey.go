package rimage

import "github.com/sgmvision/camsgm/matrix"

// Grey is a single-channel intensity image addressed in (row, col) order,
// matching the engine's pixel coordinate convention everywhere else.
type Grey struct {
	pix *matrix.Array2D[uint16]
}

// NewGrey allocates a black width×height grey image.
func NewGrey(width, height int) (*Grey, error) {
	a, err := matrix.NewArray2D[uint16](height, width)
	if err != nil {
		return nil, err
	}
	return &Grey{pix: a}, nil
}

// Width returns the image width in pixels.
func (g *Grey) Width() int { return g.pix.Cols() }

// Height returns the image height in pixels.
func (g *Grey) Height() int { return g.pix.Rows() }

// At returns the intensity at (row, col), bounds-checked.
func (g *Grey) At(row, col int) (uint16, error) {
	return g.pix.At(row, col)
}

// Set assigns the intensity at (row, col), bounds-checked.
func (g *Grey) Set(row, col int, v uint16) error {
	return g.pix.Set(row, col, v)
}

// Get returns the intensity at (row, col) without bounds checking, for use
// in hot per-pixel loops that have already validated the coordinate.
func (g *Grey) Get(row, col int) uint16 {
	return g.pix.Get(row, col)
}

// GetP is Get indexed by a matrix.Point.
func (g *Grey) GetP(p matrix.Point) uint16 {
	return g.pix.GetP(p)
}

// InBounds reports whether (row, col) lies within the image.
func (g *Grey) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height() && col >= 0 && col < g.Width()
}

// GetMirrored returns the intensity at (row, col), reflecting out-of-range
// coordinates back across the nearest edge instead of failing. This is the
// border policy the Census transform uses for pixels whose window would
// otherwise spill off the image.
func (g *Grey) GetMirrored(row, col int) uint16 {
	return g.pix.Get(mirror(row, g.Height()), mirror(col, g.Width()))
}

func mirror(i, n int) int {
	if i < 0 {
		return -i
	}
	if i >= n {
		return 2*n - i - 2
	}
	return i
}
