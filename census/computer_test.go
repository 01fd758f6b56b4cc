package census_test

import (
	"testing"

	"github.com/sgmvision/camsgm/census"
	"github.com/sgmvision/camsgm/matrix"
	"github.com/sgmvision/camsgm/rimage"
	"github.com/stretchr/testify/require"
)

func TestNewComputer_RadiusValidation(t *testing.T) {
	_, err := census.NewComputer(0)
	require.ErrorIs(t, err, census.ErrInvalidMaskRadius)

	_, err = census.NewComputer(8)
	require.ErrorIs(t, err, census.ErrInvalidMaskRadius)

	c, err := census.NewComputer(1)
	require.NoError(t, err)
	require.Equal(t, 9, c.MaskLength())
	require.Equal(t, 8, c.MaxCost())
}

func TestInit_DimensionMismatch(t *testing.T) {
	c, err := census.NewComputer(1)
	require.NoError(t, err)
	base, err := rimage.NewGrey(4, 4)
	require.NoError(t, err)
	matched, err := rimage.NewGrey(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, c.Init(base, matched), census.ErrDimensionMismatch)
}

func TestInit_ConstantImage_ZeroCostEverywhere(t *testing.T) {
	c, err := census.NewComputer(2)
	require.NoError(t, err)
	base, err := rimage.NewGrey(8, 8)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.NoError(t, base.Set(y, x, 100))
		}
	}
	require.NoError(t, c.Init(base, base))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := matrix.Point{Row: y, Col: x}
			cost, err := c.GetCost(p, p)
			require.NoError(t, err)
			require.Zero(t, cost)
		}
	}
}

func TestGetCostOnBorder_MatchesGetCost(t *testing.T) {
	c, err := census.NewComputer(1)
	require.NoError(t, err)
	base, err := rimage.NewGrey(5, 5)
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			require.NoError(t, base.Set(y, x, uint16((y*5+x)%7)))
		}
	}
	require.NoError(t, c.Init(base, base))

	corner := matrix.Point{Row: 0, Col: 0}
	want, err := c.GetCost(corner, corner)
	require.NoError(t, err)
	got, err := c.GetCostOnBorder(corner, corner)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestInit_MaxCostForExtremeContrast(t *testing.T) {
	c, err := census.NewComputer(1)
	require.NoError(t, err)
	base, err := rimage.NewGrey(3, 3)
	require.NoError(t, err)
	matched, err := rimage.NewGrey(3, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, base.Set(y, x, 0))
			require.NoError(t, matched.Set(y, x, 0))
		}
	}
	require.NoError(t, base.Set(1, 1, 65535))
	require.NoError(t, matched.Set(1, 1, 0))
	require.NoError(t, c.Init(base, matched))

	center := matrix.Point{Row: 1, Col: 1}
	cost, err := c.GetCost(center, center)
	require.NoError(t, err)
	require.Equal(t, c.MaxCost(), cost)
}
