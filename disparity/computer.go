package disparity

import (
	"fmt"
	"math"
	"sort"

	"github.com/sgmvision/camsgm/matrix"
)

const pathsCount = 8

// CostFunc returns the matching cost between a base pixel and a candidate
// matched pixel, used to score the final selected disparity.
type CostFunc func(base, matched matrix.Point) (float64, error)

// Computer accumulates one pixel's eight per-direction disparity votes and
// reduces them to a single estimate via trimmed-mean selection.
type Computer struct {
	meanMethod MeanMethod
	costMethod CostMethod

	pathLengthThreshold float64
	costMethodPower     float64

	votes [pathsCount]DisparityForPixel
	count int
}

// NewComputer returns a Computer with SimpleAverage/DistanceToMean defaults,
// matching the engine's built-in defaults.
func NewComputer(pathLengthThreshold, costMethodPower float64) *Computer {
	return &Computer{
		meanMethod:          SimpleAverage,
		costMethod:          DistanceToMean,
		pathLengthThreshold: pathLengthThreshold,
		costMethodPower:     costMethodPower,
	}
}

// SetMeanMethod selects the averaging strategy.
func (c *Computer) SetMeanMethod(m MeanMethod) { c.meanMethod = m }

// SetCostMethod selects the spread-scoring strategy.
func (c *Computer) SetCostMethod(m CostMethod) { c.costMethod = m }

// Store records one direction's vote. Pixels accumulate up to pathsCount
// votes (one per direction) before FinalizeForPixel is called.
func (c *Computer) Store(d DisparityForPixel) error {
	if c.count >= pathsCount {
		return fmt.Errorf("%w", ErrTooManyVotes)
	}
	c.votes[c.count] = d
	c.count++
	return nil
}

// FinalizeForPixel reduces the stored votes to one Disparity and resets the
// accumulator for the next pixel. costFn is used once, to score the final
// selected (rounded) disparity against the matched image.
func (c *Computer) FinalizeForPixel(pixelBase matrix.Point, costFn CostFunc) (Disparity, error) {
	if c.count == 0 {
		return Disparity{Cost: math.Inf(1)}, nil
	}
	totalVotes := c.count

	votes := c.votes[:c.count]
	sort.Slice(votes, func(i, j int) bool { return votes[i].Disparity < votes[j].Disparity })

	start, count := 0, c.count
	mean := c.computeMean(votes, start, count)
	cost := c.computeCost(votes, mean, start, count)

	for count > 2 {
		mean1 := c.computeMean(votes, start+1, count-1)
		cost1 := c.computeCost(votes, mean1, start+1, count-1)
		mean2 := c.computeMean(votes, start, count-1)
		cost2 := c.computeCost(votes, mean2, start, count-1)

		if cost > cost1 || cost > cost2 {
			if cost1 < cost2 {
				start++
				cost = cost1
				mean = mean1
			} else {
				cost = cost2
				mean = mean2
			}
			count--
		} else {
			break
		}
	}

	matched := matrix.Point{Row: pixelBase.Row, Col: pixelBase.Col + int(math.Round(mean))}
	matchCost, err := costFn(pixelBase, matched)
	if err != nil {
		return Disparity{}, err
	}

	c.count = 0
	return Disparity{
		Dx:         int(math.Round(mean)),
		Flags:      Valid,
		SubDx:      mean,
		Cost:       matchCost,
		Confidence: float64(count) / float64(totalVotes),
	}, nil
}

func (c *Computer) computeMean(votes []DisparityForPixel, start, count int) float64 {
	if c.meanMethod == WeightedAverageWithPathLength {
		return findMeanWeightedPath(votes, start, count, c.pathLengthThreshold)
	}
	return findMeanSimple(votes, start, count)
}

func (c *Computer) computeCost(votes []DisparityForPixel, mean float64, start, count int) float64 {
	if c.costMethod == DistanceSquaredToMean {
		return findCostSquared(votes, mean, start, count, c.costMethodPower)
	}
	return findCostSimple(votes, mean, start, count, c.costMethodPower)
}

func findMeanSimple(votes []DisparityForPixel, start, count int) float64 {
	mean := 0.0
	for i := 0; i < count; i++ {
		mean += float64(votes[start+i].Disparity)
	}
	return mean / float64(count)
}

func findMeanWeightedPath(votes []DisparityForPixel, start, count int, threshold float64) float64 {
	mean, wsum := 0.0, 0.0
	for i := 0; i < count; i++ {
		w := (float64(votes[start+i].PathLength) - threshold) / threshold
		w = math.Max(0.0, math.Min(1.0, w))
		wsum += w
		mean += w * float64(votes[start+i].Disparity)
	}
	return mean / wsum
}

func findCostSimple(votes []DisparityForPixel, mean float64, start, count int, power float64) float64 {
	cost := 0.0
	for i := 0; i < count; i++ {
		cost += math.Abs(mean - float64(votes[start+i].Disparity))
	}
	return cost / math.Pow(float64(count), power*0.5)
}

func findCostSquared(votes []DisparityForPixel, mean float64, start, count int, power float64) float64 {
	cost := 0.0
	for i := 0; i < count; i++ {
		d := mean - float64(votes[start+i].Disparity)
		cost += d * d
	}
	return cost / math.Pow(float64(count), power)
}
