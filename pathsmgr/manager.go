package pathsmgr

import (
	"math"

	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/sgmpath"
)

// pathsPerRun is half of the eight directions: one sweep resolves the four
// directions reachable in increasing row-major order, the other resolves
// their opposites.
const pathsPerRun = 4

var pathIdxsTopDown = [pathsPerRun]int{0, 1, 2, 3}  // East, South, SouthEast, SouthWest
var pathIdxsBottomUp = [pathsPerRun]int{4, 5, 6, 7} // West, North, NorthEast, NorthWest

// CostFunc returns the matching cost between a base and a matched pixel.
type CostFunc func(base, matched matrix.Point) (float64, error)

// DispRangeFunc returns the number of valid disparities to search at pixel
// p — smaller near the image edge the disparity shift would run off.
type DispRangeFunc func(p matrix.Point) int

// Manager holds the path arena and best-path-cost cache for one image side
// (left-base or right-base).
type Manager struct {
	rows, cols int
	isLeftBase bool

	getCost      CostFunc
	getDispRange DispRangeFunc
	maxDisparity int

	paths          *matrix.Array3D[*sgmpath.Path]
	bestPathsCosts *matrix.Array3D[PathCost]
}

// NewManager allocates a path arena and cost cache for a rows×cols image.
// maxDisparity sizes each border path's per-step cost buffer; it must be at
// least the largest value DispRangeFunc will ever return.
func NewManager(rows, cols, maxDisparity int, isLeftBase bool, getCost CostFunc, getDispRange DispRangeFunc) (*Manager, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	paths, err := matrix.NewArray3D[*sgmpath.Path](rows, cols, len(sgmpath.All))
	if err != nil {
		return nil, err
	}
	costs, err := matrix.NewArray3D[PathCost](rows, cols, len(sgmpath.All))
	if err != nil {
		return nil, err
	}
	return &Manager{
		rows: rows, cols: cols, isLeftBase: isLeftBase,
		getCost: getCost, getDispRange: getDispRange, maxDisparity: maxDisparity,
		paths: paths, bestPathsCosts: costs,
	}, nil
}

// Init creates and seeds every border pixel's path handles. Call once
// before aggregation begins.
func (m *Manager) Init() error {
	return m.createBorderPaths()
}

// GetPath returns the path handle for pathIdx at pixel, or nil if none was
// created there (only border pixels along that direction have one).
func (m *Manager) GetPath(pixel matrix.Point, pathIdx int) *sgmpath.Path {
	return m.paths.Get(pixel, pathIdx)
}

// SetPath installs a path handle for pathIdx at pixel.
func (m *Manager) SetPath(pixel matrix.Point, pathIdx int, p *sgmpath.Path) {
	m.paths.Put(pixel, pathIdx, p)
}

// GetBestPathCost returns the cached best disparity found so far along
// pathIdx's direction at pixel.
func (m *Manager) GetBestPathCost(pixel matrix.Point, pathIdx int) PathCost {
	return m.bestPathsCosts.Get(pixel, pathIdx)
}

// SetBestPathCost caches the best disparity found along pathIdx's direction
// at pixel.
func (m *Manager) SetBestPathCost(pixel matrix.Point, pathIdx int, cost PathCost) {
	m.bestPathsCosts.Put(pixel, pathIdx, cost)
}

// GetBorderPixel returns the border pixel that pathIdx's direction
// originates from when walking backwards from pixel.
func (m *Manager) GetBorderPixel(pixel matrix.Point, pathIdx int) matrix.Point {
	return sgmpath.All[pathIdx].BorderPixel(pixel, m.rows, m.cols)
}

// GetPathIdxsForRun returns the four path indices a TopDown or BottomUp
// sweep resolves. The set is the same regardless of which image side is
// base: only the matched-pixel offset direction (see findInitialCost)
// differs between left-base and right-base.
func (m *Manager) GetPathIdxsForRun(dir RunDirection) [pathsPerRun]int {
	if dir == TopDown {
		return pathIdxsTopDown
	}
	return pathIdxsBottomUp
}

// borderCond reports, for pathIdx (indexed as sgmpath.All), whether pixel is
// a valid start for that direction's border path.
func borderCond(pathIdx int, pixel matrix.Point, rows, cols int) bool {
	switch pathIdx {
	case 0: // East
		return pixel.Col == 0
	case 1: // South
		return pixel.Row == 0
	case 2: // SouthEast
		return pixel.Col == 0 || pixel.Row == 0
	case 3: // SouthWest
		return pixel.Col == cols-1 || pixel.Row == 0
	case 4: // West
		return pixel.Col == cols-1
	case 5: // North
		return pixel.Row == rows-1
	case 6: // NorthEast
		return pixel.Col == 0 || pixel.Row == rows-1
	case 7: // NorthWest
		return pixel.Col == cols-1 || pixel.Row == rows-1
	}
	return false
}

func (m *Manager) createBorderPaths() error {
	for x := 0; x < m.cols; x++ {
		if err := m.createPathsForBorderPixel(matrix.Point{Row: 0, Col: x}); err != nil {
			return err
		}
		if err := m.createPathsForBorderPixel(matrix.Point{Row: m.rows - 1, Col: x}); err != nil {
			return err
		}
	}
	for y := 1; y < m.rows; y++ {
		if err := m.createPathsForBorderPixel(matrix.Point{Row: y, Col: 0}); err != nil {
			return err
		}
		if err := m.createPathsForBorderPixel(matrix.Point{Row: y, Col: m.cols - 1}); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) createPathsForBorderPixel(pixel matrix.Point) error {
	for idx, dir := range sgmpath.All {
		if !borderCond(idx, pixel, m.rows, m.cols) {
			continue
		}
		p := sgmpath.New(dir, pixel, m.rows, m.cols)
		p.LastStepCosts = make([]float64, m.maxDisparity+1)
		p.Init()
		m.paths.Put(pixel, idx, p)
		if err := m.findInitialCost(p, idx); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) findInitialCost(p *sgmpath.Path, pathIdx int) error {
	bestDisp := 0
	bestCost := math.Inf(1)
	maxDisp := m.getDispRange(p.CurrentPixel)
	for d := 0; d < maxDisp; d++ {
		shift := d
		if m.isLeftBase {
			shift = -d
		}
		matched := matrix.Point{Row: p.CurrentPixel.Row, Col: p.CurrentPixel.Col + shift}
		cost, err := m.getCost(p.CurrentPixel, matched)
		if err != nil {
			return err
		}
		p.LastStepCosts[d] = cost
		if cost < bestCost {
			bestCost = cost
			bestDisp = d
		}
	}
	m.bestPathsCosts.Put(p.CurrentPixel, pathIdx, PathCost{Cost: bestCost, Disparity: bestDisp})
	return nil
}
