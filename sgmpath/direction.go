package sgmpath

import "github.com/sgmvision/camsgm/matrix"

// Direction is a unit step in row/col space. Every SGM path direction has
// DRow and DCol in {-1, 0, 1}, never both zero.
type Direction struct {
	DRow, DCol int
}

// The eight directions aggregation runs over. All below fixes the order the
// engine schedules them in for its top-down and bottom-up passes.
var (
	East      = Direction{DRow: 0, DCol: 1}
	West      = Direction{DRow: 0, DCol: -1}
	South     = Direction{DRow: 1, DCol: 0}
	North     = Direction{DRow: -1, DCol: 0}
	SouthEast = Direction{DRow: 1, DCol: 1}
	NorthEast = Direction{DRow: -1, DCol: 1}
	SouthWest = Direction{DRow: 1, DCol: -1}
	NorthWest = Direction{DRow: -1, DCol: -1}
)

// All lists the eight directions in a fixed, stable order; path arenas index
// their third dimension by position in this slice. TopDown and BottomUp
// (in pathsmgr) each take the first four or last four respectively, since
// top-down's scan order can only resolve predecessors along East, South,
// SouthEast and SouthWest, and bottom-up only along their opposites.
var All = []Direction{East, South, SouthEast, SouthWest, West, North, NorthEast, NorthWest}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// step returns a one-pixel move along d.
func (d Direction) step() matrix.Point {
	return matrix.Point{Row: d.DRow, Col: d.DCol}
}
