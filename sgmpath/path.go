package sgmpath

import "github.com/sgmvision/camsgm/matrix"

// Path walks one direction's pixel sequence starting from a border pixel,
// tracking the running position so the aggregator can read off the current,
// previous, and start pixel at each step.
type Path struct {
	Direction Direction

	StartPixel    matrix.Point
	CurrentPixel  matrix.Point
	PreviousPixel matrix.Point
	CurrentIndex  int
	Length        int

	// LastStepCosts holds the per-disparity aggregated cost from the
	// previous step along this path. It is sized and owned by the caller
	// (pathsmgr), not allocated here.
	LastStepCosts []float64
}

// New returns a Path for the given direction and start pixel, with its
// length already computed for an image of the given dimensions. Call Init
// before the first step.
func New(dir Direction, start matrix.Point, rows, cols int) *Path {
	return &Path{
		Direction: dir,
		StartPixel: start,
		Length:    dir.length(start, rows, cols),
	}
}

// Init (re)positions the path at its start pixel, ready for the first Next.
func (p *Path) Init() {
	p.CurrentIndex = 0
	p.CurrentPixel = p.StartPixel
	p.PreviousPixel = p.CurrentPixel
}

// HaveNextPixel reports whether Next can still advance the path.
func (p *Path) HaveNextPixel() bool {
	return p.CurrentIndex < p.Length-1
}

// Next advances the path one pixel along its direction.
func (p *Path) Next() {
	p.PreviousPixel = p.CurrentPixel
	p.CurrentPixel = p.CurrentPixel.Add(p.Direction.step())
	p.CurrentIndex++
}

// length returns the number of pixels this direction's path covers starting
// from start, before running off the image in either axis it moves along.
// A pure horizontal or vertical direction is bounded by that one axis; a
// diagonal is bounded by whichever axis runs out first.
func (d Direction) length(start matrix.Point, rows, cols int) int {
	lim := 1 << 30
	if d.DCol > 0 {
		lim = min(lim, cols-start.Col)
	} else if d.DCol < 0 {
		lim = min(lim, start.Col+1)
	}
	if d.DRow > 0 {
		lim = min(lim, rows-start.Row)
	} else if d.DRow < 0 {
		lim = min(lim, start.Row+1)
	}
	return lim
}

// BorderPixel returns the border pixel a path in this direction, passing
// through pixel, originates from: pixel is walked backwards (against the
// direction) as far as the image bounds allow along each axis the direction
// moves in, and the binding axis (whichever runs out first) determines the
// result.
func (d Direction) BorderPixel(pixel matrix.Point, rows, cols int) matrix.Point {
	limY := 1 << 30
	switch d.DRow {
	case 1:
		limY = pixel.Row
	case -1:
		limY = rows - pixel.Row - 1
	}
	limX := 1 << 30
	switch d.DCol {
	case 1:
		limX = pixel.Col
	case -1:
		limX = cols - pixel.Col - 1
	}
	step := min(limY, limX)
	return matrix.Point{
		Row: pixel.Row + step*(-d.DRow),
		Col: pixel.Col + step*(-d.DCol),
	}
}
