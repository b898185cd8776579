package spatial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spikelab/spatial"
)

// TestInformation1D_HandComputed checks a two-bin example against the
// closed form: all spiking in one of two equally occupied bins → 1 bit.
func TestInformation1D_HandComputed(t *testing.T) {
	info, err := spatial.Information1D([]float64{2, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, info, 1e-12, "perfectly selective over two equal bins = 1 bit/spike")
}

// TestInformation1D_UniformRate: a flat rate map carries no information.
func TestInformation1D_UniformRate(t *testing.T) {
	info, err := spatial.Information1D([]float64{3, 3, 3, 3}, []float64{0.5, 1, 2, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, info, 1e-12)
}

// TestInformation1D_ZeroRateBinsContributeZero: silent visited bins only
// reshape the mean, never produce NaN terms.
func TestInformation1D_ZeroRateBinsContributeZero(t *testing.T) {
	info, err := spatial.Information1D([]float64{4, 0, 0, 0}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	// p=1/4, r̄=1, single active bin: 0.25·4·log2(4) = 2 bits.
	assert.InDelta(t, 2.0, info, 1e-12)
	assert.False(t, math.IsNaN(info))
}

// TestInformation_Degenerate covers the failure modes.
func TestInformation_Degenerate(t *testing.T) {
	// No spikes anywhere.
	_, err := spatial.Information1D([]float64{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, spatial.ErrDegenerateRateMap)

	// Fewer than two occupied bins.
	_, err = spatial.Information1D([]float64{2, math.NaN()}, []float64{1, 0})
	assert.ErrorIs(t, err, spatial.ErrDegenerateRateMap)

	// Shape mismatch.
	_, err = spatial.Information1D([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, spatial.ErrDimensionMismatch)
}

// TestInformation_2DPipeline runs the full occupancy → rate map →
// information pipeline over a place-field-like session.
func TestInformation_2DPipeline(t *testing.T) {
	// Dwell equally in all four quadrants; spike only in the first.
	tr, err := spatial.NewTrace(
		[]float64{0.25, 0.75, 0.25, 0.75, 0.75},
		[]float64{0.25, 0.25, 0.75, 0.75, 0.75},
		[]float64{0, 1, 2, 3, 4},
	)
	require.NoError(t, err)
	g := square(t)

	occ, err := spatial.Occupancy(tr, g, spatial.DefaultOccupancyOptions())
	require.NoError(t, err)
	rate, err := spatial.RateMap([]float64{0.2, 0.4, 0.8}, tr, g, spatial.DefaultOccupancyOptions())
	require.NoError(t, err)

	info, err := spatial.Information(rate, occ)
	require.NoError(t, err)
	// Four equally occupied bins, all spikes in one: log2(4) = 2 bits.
	assert.InDelta(t, 2.0, info, 1e-12)

	_, err = spatial.Information(rate, mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, spatial.ErrDimensionMismatch)
}

// TestInformation_StridedView: a sliced Dense view, whose stride exceeds
// its column count, reads the same as a compact copy.
func TestInformation_StridedView(t *testing.T) {
	// Embed a 2x2 map in the top-left of a 3x3 matrix; the third row and
	// column hold junk the view must never see.
	bigRate := mat.NewDense(3, 3, []float64{
		4, 0, 99,
		0, 0, 99,
		99, 99, 99,
	})
	bigOcc := mat.NewDense(3, 3, []float64{
		1, 1, 99,
		1, 1, 99,
		99, 99, 99,
	})
	rateView := bigRate.Slice(0, 2, 0, 2).(*mat.Dense)
	occView := bigOcc.Slice(0, 2, 0, 2).(*mat.Dense)

	got, err := spatial.Information(rateView, occView)
	require.NoError(t, err)

	want, err := spatial.Information(
		mat.NewDense(2, 2, []float64{4, 0, 0, 0}),
		mat.NewDense(2, 2, []float64{1, 1, 1, 1}),
	)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 2.0, got, 1e-12)
}
