package fit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/survlab/survfit/errs"
)

func TestPrepare(t *testing.T) {
	distances := []float64{1, 2, 3, 4, 5}

	ds, err := Prepare(distances)
	require.NoError(t, err)

	// l samples plus two anchors.
	require.Equal(t, len(distances)+2, ds.Len())
	require.Len(t, ds.Y, ds.Len())
	require.Len(t, ds.W, ds.Len())

	// Anchor at the origin with full survival probability.
	require.Equal(t, 0.0, ds.X[0])
	require.Equal(t, 1.0, ds.Y[0])

	// Far sentinel beyond the observed range with zero probability.
	require.Equal(t, 10.0, ds.X[ds.Len()-1])
	require.Equal(t, 0.0, ds.Y[ds.Len()-1])

	// ECDF complement with plotting-position correction: y_i = 1 - i/(l+1).
	for i := 1; i <= len(distances); i++ {
		require.InDelta(t, 1.0-float64(i)/6.0, ds.Y[i], 1e-15, "sample %d", i)
	}

	// Monotonically non-increasing probabilities.
	for i := 1; i < ds.Len(); i++ {
		require.LessOrEqual(t, ds.Y[i], ds.Y[i-1])
	}

	// Weight = distance² for every point, anchors included.
	for i, x := range ds.X {
		require.Equal(t, x*x, ds.W[i], "point %d", i)
	}
}

func TestPrepare_SingleSample(t *testing.T) {
	ds, err := Prepare([]float64{2.0})
	require.NoError(t, err)

	require.Equal(t, 3, ds.Len())
	require.Equal(t, []float64{0, 2, 4}, ds.X)
	require.InDelta(t, 0.5, ds.Y[1], 1e-15)
}

func TestPrepare_AllZeroDistances(t *testing.T) {
	// Degenerate but ordered input: the sentinel falls back to 1.0 so it
	// still lands beyond the observed range.
	ds, err := Prepare([]float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, ds.X[ds.Len()-1])
}

func TestPrepare_Preconditions(t *testing.T) {
	tests := []struct {
		name      string
		distances []float64
		wantErr   error
	}{
		{"empty input", nil, errs.ErrNoSamples},
		{"negative distance", []float64{-0.5, 1}, errs.ErrNegativeDistance},
		{"unsorted input", []float64{2, 1, 3}, errs.ErrUnsortedSamples},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prepare(tt.distances)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrepare_DoesNotAliasInput(t *testing.T) {
	distances := []float64{1, 2, 3}
	ds, err := Prepare(distances)
	require.NoError(t, err)

	distances[0] = 99
	require.Equal(t, 1.0, ds.X[1])
}
