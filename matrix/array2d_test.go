package matrix_test

import (
	"testing"

	"github.com/sgmvision/camsgm/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewArray2D_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative rows", -1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewArray2D[int](tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestArray2D_SetAtRoundTrip(t *testing.T) {
	a, err := matrix.NewArray2D[float64](3, 4)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 2, 9.5))
	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.5, v)

	zero, err := a.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, zero)
}

func TestArray2D_OutOfBounds(t *testing.T) {
	a, err := matrix.NewArray2D[int](2, 2)
	require.NoError(t, err)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = a.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.ErrorIs(t, a.Set(5, 5, 1), matrix.ErrIndexOutOfBounds)
}

func TestArray2D_GetPutUnchecked(t *testing.T) {
	a, err := matrix.NewArray2D[int](2, 2)
	require.NoError(t, err)
	a.Put(1, 1, 42)
	require.Equal(t, 42, a.Get(1, 1))

	p := matrix.Point{Row: 0, Col: 1}
	a.PutP(p, 7)
	require.Equal(t, 7, a.GetP(p))
}

func TestArray2D_FillClear(t *testing.T) {
	a, err := matrix.NewArray2D[int](2, 3)
	require.NoError(t, err)
	a.Fill(5)
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			require.Equal(t, 5, a.Get(r, c))
		}
	}
	a.Clear()
	require.Zero(t, a.Get(0, 0))
}

func TestPointArithmetic(t *testing.T) {
	p := matrix.Point{Row: 2, Col: 3}
	q := matrix.Point{Row: 1, Col: -1}
	require.Equal(t, matrix.Point{Row: 3, Col: 2}, p.Add(q))
	require.Equal(t, matrix.Point{Row: 1, Col: 4}, p.Sub(q))
}
