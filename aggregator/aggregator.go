package aggregator

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/sgmvision/camsgm/census"
	"github.com/sgmvision/camsgm/disparity"
	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/pathsmgr"
	"github.com/sgmvision/camsgm/rimage"
	"github.com/sgmvision/camsgm/sgmpath"
)

// Aggregator runs the full SGM cost-aggregation pipeline for one base image
// against its matched counterpart, writing the resulting disparity map in
// place.
type Aggregator struct {
	cfg        Config
	isLeftBase bool

	imageBase, imageMatched *rimage.Grey
	disparityMap            *matrix.Array2D[disparity.Disparity]
	baseValid               *matrix.Array2D[bool]

	census  *census.Computer
	pathMgr *pathsmgr.Manager
	dispComp *disparity.Computer

	p1, p2 float64

	statusMu sync.RWMutex
	status   string

	terminate atomic.Bool

	log zerolog.Logger
}

// New builds an Aggregator. disparityMap must already be sized Rows×Cols;
// Aggregator writes into it but does not own its lifetime.
func New(cfg Config, isLeftBase bool, imageBase, imageMatched *rimage.Grey, disparityMap *matrix.Array2D[disparity.Disparity], log zerolog.Logger) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	censusComp, err := census.NewComputer(cfg.CensusMaskRadius)
	if err != nil {
		return nil, err
	}
	a := &Aggregator{
		cfg:          cfg,
		isLeftBase:   isLeftBase,
		imageBase:    imageBase,
		imageMatched: imageMatched,
		disparityMap: disparityMap,
		census:       censusComp,
		dispComp:     disparity.NewComputer(cfg.DisparityPathLengthThresh, cfg.DisparityCostMethodPower),
		status:       "not run",
		log:          log,
	}
	a.dispComp.SetMeanMethod(cfg.DisparityMeanMethod)
	a.dispComp.SetCostMethod(cfg.DisparityCostMethod)

	mgr, err := pathsmgr.NewManager(cfg.Rows, cfg.Cols, cfg.MaxDisparity, isLeftBase, a.getCost, a.getDispRangeAt)
	if err != nil {
		return nil, err
	}
	a.pathMgr = mgr
	return a, nil
}

// SetValidityMask installs a per-base-pixel validity mask. Pixels marked
// invalid skip trimmed-mean selection entirely and are written with
// disparity.Invalid, matching a masked base image's dropout regions. valid
// must be sized Rows×Cols.
func (a *Aggregator) SetValidityMask(valid *matrix.Array2D[bool]) error {
	if valid.Rows() != a.cfg.Rows || valid.Cols() != a.cfg.Cols {
		return fmt.Errorf("%w: validity mask dimensions", ErrInvalidConfig)
	}
	a.baseValid = valid
	return nil
}

// Terminate requests the current or next ComputeMatchingCosts call stop as
// soon as it next checks in, leaving the disparity map partially filled.
func (a *Aggregator) Terminate() { a.terminate.Store(true) }

// Status returns a short human-readable description of the current phase.
func (a *Aggregator) Status() string {
	a.statusMu.RLock()
	defer a.statusMu.RUnlock()
	return a.status
}

func (a *Aggregator) setStatus(s string) {
	a.statusMu.Lock()
	a.status = s
	a.statusMu.Unlock()
	a.log.Debug().Str("status", s).Bool("isLeftBase", a.isLeftBase).Msg("aggregator status")
}

// ComputeMatchingCosts runs Census transform, path initialization, the two
// aggregation sweeps, and final disparity selection, in that order. It
// checks ctx and Terminate before every pixel of the two sweeps and of the
// disparity stage and returns ErrTerminated if either fired before
// completion. The Census and path-initialization stages do not check them
// and always run to completion.
func (a *Aggregator) ComputeMatchingCosts(ctx context.Context) error {
	if err := a.initLocalCosts(); err != nil {
		return err
	}
	if err := a.initPaths(); err != nil {
		return err
	}
	if err := a.findCostsTopDown(ctx); err != nil {
		return err
	}
	if err := a.findCostsBottomUp(ctx); err != nil {
		return err
	}
	if err := a.findDisparities(ctx); err != nil {
		return err
	}
	a.setStatus("done")
	return nil
}

// InitLocalCosts runs the Census transform over both images and derives the
// P1/P2 penalty magnitudes from its cost range. It is the first stage and
// has no dependencies.
func (a *Aggregator) InitLocalCosts() error { return a.initLocalCosts() }

// InitPaths builds the border-seeded path arena. It depends on
// InitLocalCosts: seeding each border path's initial costs reads the Census
// signatures, matching the original dependency edge census→paths.
func (a *Aggregator) InitPaths() error { return a.initPaths() }

// FindCostsTopDown runs the top-down aggregation sweep. Depends on InitPaths.
func (a *Aggregator) FindCostsTopDown(ctx context.Context) error { return a.findCostsTopDown(ctx) }

// FindCostsBottomUp runs the bottom-up aggregation sweep. Depends on InitPaths.
// Independent of FindCostsTopDown: the two sweeps read disjoint path state.
func (a *Aggregator) FindCostsBottomUp(ctx context.Context) error { return a.findCostsBottomUp(ctx) }

// FindDisparities performs the final per-pixel trimmed-mean disparity
// selection. Depends on both FindCostsTopDown and FindCostsBottomUp.
func (a *Aggregator) FindDisparities(ctx context.Context) error {
	err := a.findDisparities(ctx)
	if err == nil {
		a.setStatus("done")
	}
	return err
}

func (a *Aggregator) stopRequested(ctx context.Context) bool {
	if a.terminate.Load() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (a *Aggregator) initLocalCosts() error {
	a.setStatus("computing census")
	if err := a.census.Init(a.imageBase, a.imageMatched); err != nil {
		return err
	}
	maxCost := float64(a.census.MaxCost())
	a.p1 = a.cfg.LowPenaltyCoeff * maxCost
	a.p2 = a.cfg.HighPenaltyCoeff * maxCost
	return nil
}

func (a *Aggregator) initPaths() error {
	a.setStatus("preparing paths")
	return a.pathMgr.Init()
}

// getDispRangeAt returns the number of valid disparities to search starting
// at column x: bounded by both the configured max disparity and however far
// the shift can go before running off the matched image.
func (a *Aggregator) getDispRangeAt(p matrix.Point) int {
	if a.isLeftBase {
		return min(p.Col, a.cfg.MaxDisparity)
	}
	return min(a.cfg.Cols-1-p.Col, a.cfg.MaxDisparity)
}

func minF(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// getCost returns the Census Hamming-distance cost between basePixel and
// matchedPixel as a float64.
func (a *Aggregator) getCost(basePixel, matchedPixel matrix.Point) (float64, error) {
	c, err := a.census.GetCost(basePixel, matchedPixel)
	if err != nil {
		return 0, err
	}
	return float64(c), nil
}

func (a *Aggregator) findCostsTopDown(ctx context.Context) error {
	a.setStatus("run: top-down")
	for y := 0; y < a.cfg.Rows; y++ {
		for x := 0; x < a.cfg.Cols; x++ {
			if a.stopRequested(ctx) {
				return ErrTerminated
			}
			if err := a.findCostsForPixel(y, x, pathsmgr.TopDown); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Aggregator) findCostsBottomUp(ctx context.Context) error {
	a.setStatus("run: bottom-up")
	for y := a.cfg.Rows - 1; y >= 0; y-- {
		for x := a.cfg.Cols - 1; x >= 0; x-- {
			if a.stopRequested(ctx) {
				return ErrTerminated
			}
			if err := a.findCostsForPixel(y, x, pathsmgr.BottomUp); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Aggregator) findCostsForPixel(y, x int, dir pathsmgr.RunDirection) error {
	pixel := matrix.Point{Row: y, Col: x}
	maxDisp := a.getDispRangeAt(pixel)
	for _, pathIdx := range a.pathMgr.GetPathIdxsForRun(dir) {
		if err := a.findCostsForPath(pixel, pathIdx, maxDisp, dir == pathsmgr.BottomUp); err != nil {
			return err
		}
	}
	return nil
}

func (a *Aggregator) findCostsForPath(currentPixel matrix.Point, pathIdx, maxDisp int, isBottomUp bool) error {
	borderPixel := a.pathMgr.GetBorderPixel(currentPixel, pathIdx)
	path := a.pathMgr.GetPath(borderPixel, pathIdx)
	if path == nil {
		return nil
	}

	if err := a.findCostForEachDisparityInStep(path, pathIdx, maxDisp); err != nil {
		return err
	}
	if isBottomUp && maxDisp > 0 {
		if err := a.alignForBottomUp(path, maxDisp, currentPixel); err != nil {
			return err
		}
	}
	path.Next()
	return nil
}

func (a *Aggregator) findCostForEachDisparityInStep(path *sgmpath.Path, pathIdx, maxDisp int) error {
	bestDisp := 0
	bestLength := 0
	bestCost := math.Inf(1)
	bestPrev := a.pathMgr.GetBestPathCost(path.PreviousPixel, pathIdx)

	// A dispRange of zero or less (e.g. a left-base pixel at column 0) means
	// there is nothing to search this step, matching the original's
	// for(d=0;d<maxDisp) loop simply not executing.
	if maxDisp <= 0 {
		a.pathMgr.SetBestPathCost(path.CurrentPixel, pathIdx, pathsmgr.PathCost{Cost: bestCost, Disparity: bestDisp, PathLength: bestLength})
		return nil
	}

	stepCosts := make([]float64, maxDisp)
	for d := 0; d < maxDisp; d++ {
		col := path.CurrentPixel.Col + d
		if a.isLeftBase {
			col = path.CurrentPixel.Col - d
		}
		matched := matrix.Point{Row: path.CurrentPixel.Row, Col: col}

		cost, err := a.findCostForDisparity(path.CurrentPixel, matched, path, d, maxDisp, bestPrev.Disparity, bestPrev.Cost)
		if err != nil {
			return err
		}
		stepCosts[d] = cost
		if cost < bestCost {
			bestCost = cost
			bestDisp = d
			bestLength = path.CurrentIndex + 1
		}
	}
	a.pathMgr.SetBestPathCost(path.CurrentPixel, pathIdx, pathsmgr.PathCost{Cost: bestCost, Disparity: bestDisp, PathLength: bestLength})
	copy(path.LastStepCosts, stepCosts)
	return nil
}

func (a *Aggregator) alignForBottomUp(path *sgmpath.Path, maxDisp int, currentPixel matrix.Point) error {
	matchedX := a.cfg.Cols - 1
	if a.isLeftBase {
		matchedX = 0
	}
	extra, err := a.getCost(currentPixel, matrix.Point{Row: currentPixel.Row, Col: matchedX})
	if err != nil {
		return err
	}
	path.LastStepCosts[maxDisp] = extra + path.LastStepCosts[maxDisp-1]
	return nil
}

func (a *Aggregator) findCostForDisparity(currentPixel, matched matrix.Point, path *sgmpath.Path, d, dmax int, bestPrevDisp int, bestPrevCost float64) (float64, error) {
	pen0 := path.LastStepCosts[d]
	pen1 := findPenaltyClose(path, d, dmax)
	pen2 := findPenaltyFar(bestPrevCost)

	c, err := a.getCost(currentPixel, matched)
	if err != nil {
		return 0, err
	}

	baseVal := int(a.imageBase.GetP(currentPixel))
	matchedVal := int(a.imageMatched.GetP(matched))
	imgDiff := math.Abs(float64(baseVal - matchedVal))

	p2Scale := 2.0
	if imgDiff > a.cfg.IntensityThreshold {
		p2Scale = 1.0
	}

	return c + minF(pen0, pen1+a.p1, pen2+a.p2*p2Scale), nil
}

// findPenaltyClose picks the smaller of the two disparity-adjacent step
// costs as the "no discontinuity" penalty term, falling back to whichever
// neighbor exists at the disparity range's edges.
func findPenaltyClose(path *sgmpath.Path, d, dmax int) float64 {
	switch {
	case d == 0:
		return path.LastStepCosts[d+1]
	case d > dmax-1:
		return path.LastStepCosts[d-1]
	default:
		return math.Min(path.LastStepCosts[d+1], path.LastStepCosts[d-1])
	}
}

// findPenaltyFar is the "large discontinuity" penalty term: the best cost
// found at the same position one step back along the path, taken as-is.
func findPenaltyFar(bestPrevCost float64) float64 {
	return bestPrevCost
}

func (a *Aggregator) findDisparities(ctx context.Context) error {
	a.setStatus("run: disparities")
	for r := 0; r < a.cfg.Rows; r++ {
		for c := 0; c < a.cfg.Cols; c++ {
			if a.stopRequested(ctx) {
				return ErrTerminated
			}
			pixel := matrix.Point{Row: r, Col: c}
			if a.baseValid != nil && !a.baseValid.Get(r, c) {
				if err := a.disparityMap.Set(r, c, disparity.Disparity{Cost: math.Inf(1)}); err != nil {
					return err
				}
				continue
			}
			for i := 0; i < len(sgmpath.All); i++ {
				best := a.pathMgr.GetBestPathCost(pixel, i)
				dx := best.Disparity
				if a.isLeftBase {
					dx = -dx
				}
				matched := matrix.Point{Row: pixel.Row, Col: pixel.Col + dx}
				matchCost, err := a.getCost(pixel, matched)
				if err != nil {
					return err
				}
				if err := a.dispComp.Store(disparity.DisparityForPixel{
					Disparity:  dx,
					PathLength: best.PathLength,
					PathCost:   best.Cost,
					MatchCost:  matchCost,
				}); err != nil {
					return err
				}
			}
			d, err := a.dispComp.FinalizeForPixel(pixel, a.getCost)
			if err != nil {
				return err
			}
			if err := a.disparityMap.Set(r, c, d); err != nil {
				return err
			}
		}
	}
	return nil
}
