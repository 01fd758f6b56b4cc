package rimage_test

import (
	"testing"

	"github.com/sgmvision/camsgm/rimage"
	"github.com/stretchr/testify/require"
)

func TestNewGrey_InvalidDimensions(t *testing.T) {
	_, err := rimage.NewGrey(0, 4)
	require.Error(t, err)
}

func TestGrey_SetAtRoundTrip(t *testing.T) {
	g, err := rimage.NewGrey(4, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, 500))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 500, v)
}

func TestGrey_InBounds(t *testing.T) {
	g, err := rimage.NewGrey(4, 3)
	require.NoError(t, err)
	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(2, 3))
	require.False(t, g.InBounds(3, 0))
	require.False(t, g.InBounds(0, -1))
}

func TestGrey_GetMirrored(t *testing.T) {
	g, err := rimage.NewGrey(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, 7))
	require.NoError(t, g.Set(2, 2, 9))

	// One step past the left/top edge mirrors back to row/col 1, not 0.
	require.EqualValues(t, g.Get(1, 0), g.GetMirrored(-1, 0))
	require.EqualValues(t, g.Get(1, 1), g.GetMirrored(1, -1))
	// One step past the right/bottom edge mirrors back to index n-2.
	require.EqualValues(t, g.Get(1, 2), g.GetMirrored(3, 2))
}
