package sgm

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sgmvision/camsgm/aggregator"
	"github.com/sgmvision/camsgm/disparity"
	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/rimage"
	"github.com/sgmvision/camsgm/taskqueue"
)

// The ten-task dependency graph every Process call builds: Census feeds
// path initialization, which unlocks the two independent aggregation
// sweeps, which both feed final disparity selection. The left and right
// halves share no dependency edges and run fully in parallel, bounded only
// by Parameters.MaxParallelTasks.
const (
	leftCensus taskqueue.TaskID = iota
	leftPaths
	leftTopDown
	leftBottomUp
	leftDisp
	rightCensus
	rightPaths
	rightTopDown
	rightBottomUp
	rightDisp
)

// Controller is the engine's external control surface: one long-lived
// instance can run Process repeatedly against different image pairs, each
// call replacing its internal aggregators and disparity maps.
type Controller struct {
	mu sync.Mutex

	leftAgg, rightAgg        *aggregator.Aggregator
	leftToRight, rightToLeft *matrix.Array2D[disparity.Disparity]

	log zerolog.Logger
}

// NewController returns a Controller with no completed run yet. log may be
// zerolog.Nop() if the host doesn't want status logging.
func NewController(log zerolog.Logger) *Controller {
	return &Controller{log: log}
}

// Process validates params against the grey image pair, builds fresh
// left-base and right-base aggregators, and runs both to completion through
// the ten-task dependency graph. It blocks until the graph finishes, ctx is
// cancelled, or Terminate is called. Once validation passes, this run's
// freshly allocated disparity maps replace the previous run's, so a stopped
// run leaves partially filled maps behind.
func (c *Controller) Process(ctx context.Context, params Parameters, left, right *rimage.Grey) error {
	if err := checkImageType(Grey, params.ImageType); err != nil {
		return err
	}
	return c.run(ctx, params, left, right, nil, nil)
}

// ProcessMasked is Process for a masked grey image pair: pixels the mask
// marks invalid are written with disparity.Invalid and never enter
// trimmed-mean selection.
func (c *Controller) ProcessMasked(ctx context.Context, params Parameters, left, right *rimage.MaskedGrey) error {
	if err := checkImageType(MaskedGrey, params.ImageType); err != nil {
		return err
	}
	return c.run(ctx, params, &left.Grey, &right.Grey, left.ValidityMask(), right.ValidityMask())
}

func (c *Controller) run(ctx context.Context, params Parameters, left, right *rimage.Grey, leftValid, rightValid *matrix.Array2D[bool]) error {
	leftAgg, rightAgg, leftToRight, rightToLeft, err := createAggregators(params, left, right, c.log)
	if err != nil {
		return err
	}
	if leftValid != nil {
		if err := leftAgg.SetValidityMask(leftValid); err != nil {
			return err
		}
	}
	if rightValid != nil {
		if err := rightAgg.SetValidityMask(rightValid); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.leftAgg, c.rightAgg = leftAgg, rightAgg
	c.leftToRight, c.rightToLeft = leftToRight, rightToLeft
	c.mu.Unlock()

	q := taskqueue.New(params.MaxParallelTasks)
	if err := q.AddTask(leftCensus, func(ctx context.Context) error { return leftAgg.InitLocalCosts() }); err != nil {
		return err
	}
	if err := q.AddTask(leftPaths, func(ctx context.Context) error { return leftAgg.InitPaths() }, leftCensus); err != nil {
		return err
	}
	if err := q.AddTask(leftTopDown, leftAgg.FindCostsTopDown, leftPaths); err != nil {
		return err
	}
	if err := q.AddTask(leftBottomUp, leftAgg.FindCostsBottomUp, leftPaths); err != nil {
		return err
	}
	if err := q.AddTask(leftDisp, leftAgg.FindDisparities, leftTopDown, leftBottomUp); err != nil {
		return err
	}
	if err := q.AddTask(rightCensus, func(ctx context.Context) error { return rightAgg.InitLocalCosts() }); err != nil {
		return err
	}
	if err := q.AddTask(rightPaths, func(ctx context.Context) error { return rightAgg.InitPaths() }, rightCensus); err != nil {
		return err
	}
	if err := q.AddTask(rightTopDown, rightAgg.FindCostsTopDown, rightPaths); err != nil {
		return err
	}
	if err := q.AddTask(rightBottomUp, rightAgg.FindCostsBottomUp, rightPaths); err != nil {
		return err
	}
	if err := q.AddTask(rightDisp, rightAgg.FindDisparities, rightTopDown, rightBottomUp); err != nil {
		return err
	}

	return q.Run(ctx)
}

// Terminate requests the current or next Process call stop as soon as it
// next checks in. A no-op if no run has started yet.
func (c *Controller) Terminate() {
	c.mu.Lock()
	left, right := c.leftAgg, c.rightAgg
	c.mu.Unlock()
	if left != nil {
		left.Terminate()
	}
	if right != nil {
		right.Terminate()
	}
}

// Status reports both sides' current phase, combined the way the native
// control surface does: "LEFT: <phase>, RIGHT: <phase>".
func (c *Controller) Status() string {
	c.mu.Lock()
	left, right := c.leftAgg, c.rightAgg
	c.mu.Unlock()
	if left == nil || right == nil {
		return "not run"
	}
	return fmt.Sprintf("LEFT: %s, RIGHT: %s", left.Status(), right.Status())
}

// LeftToRight returns the left-base disparity map from the most recent
// Process call, or nil if none has started yet.
func (c *Controller) LeftToRight() *matrix.Array2D[disparity.Disparity] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leftToRight
}

// RightToLeft returns the right-base disparity map from the most recent
// Process call, or nil if none has started yet.
func (c *Controller) RightToLeft() *matrix.Array2D[disparity.Disparity] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rightToLeft
}
