package distance_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourevo/distance"
)

func TestDense_AtSetBounds(t *testing.T) {
	d, err := distance.NewDense(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Size())

	require.NoError(t, d.SetSymmetric(0, 2, 4.5))
	w, err := d.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, w)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, distance.ErrOutOfRange)
	require.ErrorIs(t, d.Set(-1, 0, 1), distance.ErrOutOfRange)

	_, err = distance.NewDense(0)
	require.ErrorIs(t, err, distance.ErrEmpty)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, err := distance.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	cp := d.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	w, _ := d.At(0, 1)
	require.Equal(t, 1.0, w, "original must not see writes to the clone")
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := distance.FromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, distance.ErrNotSquare)

	_, err = distance.FromRows(nil)
	require.ErrorIs(t, err, distance.ErrEmpty)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ok symmetric", [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, nil},
		{"ok asymmetric", [][]float64{{0, 1}, {5, 0}}, nil},
		{"single city", [][]float64{{0}}, nil},
		{"diagonal", [][]float64{{0, 1}, {1, 0.5}}, distance.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {1, 0}}, distance.ErrNegativeDistance},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, distance.ErrNonFinite},
		{"inf", [][]float64{{0, 1}, {math.Inf(1), 0}}, distance.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := distance.FromRows(tc.rows)
			require.NoError(t, err)

			n, err := distance.Validate(d)
			if tc.want == nil {
				require.NoError(t, err)
				require.Equal(t, len(tc.rows), n)
				return
			}
			require.True(t, errors.Is(err, tc.want), "want %v, got %v", tc.want, err)
		})
	}

	_, err := distance.Validate(nil)
	require.ErrorIs(t, err, distance.ErrNilProvider)
}

func TestEuclidean(t *testing.T) {
	e, err := distance.NewEuclidean([]distance.Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	w, err := e.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, w, 1e-12)

	w, err = e.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, w)

	_, err = e.At(0, 2)
	require.ErrorIs(t, err, distance.ErrOutOfRange)

	_, err = distance.NewEuclidean([]distance.Point{{X: math.NaN()}})
	require.ErrorIs(t, err, distance.ErrNonFinite)

	_, err = distance.NewEuclidean(nil)
	require.ErrorIs(t, err, distance.ErrEmpty)
}

func TestMaterialize_MatchesProvider(t *testing.T) {
	pts := distance.RandomPoints(12, rand.New(rand.NewSource(7)))
	e, err := distance.NewEuclidean(pts)
	require.NoError(t, err)

	d, err := distance.Materialize(e)
	require.NoError(t, err)
	require.Equal(t, e.Size(), d.Size())

	for i := 0; i < d.Size(); i++ {
		for j := 0; j < d.Size(); j++ {
			want, _ := e.At(i, j)
			got, _ := d.At(i, j)
			require.Equal(t, want, got)
		}
		require.Len(t, d.Row(i), d.Size())
	}
}

func TestMaterialize_DenseIsCloned(t *testing.T) {
	src, err := distance.FromRows([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)

	d, err := distance.Materialize(src)
	require.NoError(t, err)
	require.NoError(t, src.Set(0, 1, 7))

	w, _ := d.At(0, 1)
	require.Equal(t, 2.0, w)
}

func TestCirclePoints(t *testing.T) {
	pts := distance.CirclePoints(4, 2)
	require.Len(t, pts, 4)
	require.InDelta(t, 2.0, pts[0].X, 1e-12)
	require.InDelta(t, 2.0, pts[1].Y, 1e-12)

	require.Nil(t, distance.CirclePoints(0, 1))
	require.Nil(t, distance.RandomPoints(-1, rand.New(rand.NewSource(1))))
}

func TestRandomPoints_Deterministic(t *testing.T) {
	a := distance.RandomPoints(8, rand.New(rand.NewSource(42)))
	b := distance.RandomPoints(8, rand.New(rand.NewSource(42)))
	require.Equal(t, a, b)
	for _, p := range a {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.Less(t, p.X, 1.0)
	}
}
