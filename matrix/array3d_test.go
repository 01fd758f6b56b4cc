package matrix_test

import (
	"testing"

	"github.com/sgmvision/camsgm/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewArray3D_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewArray3D[int](0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewArray3D[int](1, 1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestArray3D_SetAtRoundTrip(t *testing.T) {
	a, err := matrix.NewArray3D[int](2, 2, 8)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 1, 7, 99))
	v, err := a.At(1, 1, 7)
	require.NoError(t, err)
	require.Equal(t, 99, v)
}

func TestArray3D_OutOfBounds(t *testing.T) {
	a, err := matrix.NewArray3D[int](2, 2, 2)
	require.NoError(t, err)
	_, err = a.At(0, 0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, a.Set(-1, 0, 0, 1), matrix.ErrIndexOutOfBounds)
}

func TestArray3D_GetPutUnchecked(t *testing.T) {
	a, err := matrix.NewArray3D[float64](3, 3, 8)
	require.NoError(t, err)
	p := matrix.Point{Row: 2, Col: 1}
	a.Put(p, 3, 1.5)
	require.Equal(t, 1.5, a.Get(p, 3))
}

func TestArray3D_FillClear(t *testing.T) {
	a, err := matrix.NewArray3D[int](2, 2, 2)
	require.NoError(t, err)
	a.Fill(3)
	require.Equal(t, 3, a.Get(matrix.Point{Row: 1, Col: 1}, 1))
	a.Clear()
	require.Equal(t, 0, a.Get(matrix.Point{Row: 1, Col: 1}, 1))
}
