package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikelab/spatial"
)

// TestSpeed_HandComputed checks per-step Euclidean speeds, including the
// zero-valued final sample.
func TestSpeed_HandComputed(t *testing.T) {
	tr, err := spatial.NewTrace(
		[]float64{0, 0, 0, 1, 1},
		[]float64{0, 1, 2, 2, 2},
		[]float64{0, 1, 2, 2.5, 3.5},
	)
	require.NoError(t, err)

	// Steps: 1 unit over 1s, 1 over 1s, 1 over 0.5s, 0 over 1s; the final
	// sample has no step.
	assert.InDeltaSlice(t, []float64{1, 1, 2, 0, 0}, spatial.Speed(tr), 1e-12)
}

// TestSpeed_RepeatedTimestamp: a zero-interval step reports speed 0
// instead of dividing by zero.
func TestSpeed_RepeatedTimestamp(t *testing.T) {
	tr, err := spatial.NewTrace(
		[]float64{0, 1, 2},
		[]float64{0, 0, 0},
		[]float64{0, 1, 1},
	)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 0, 0}, spatial.Speed(tr), 1e-12)
}

// TestSpeed_FeedsOccupancyFilter wires Speed into the occupancy speed
// threshold: stationary dwell time drops out of the map.
func TestSpeed_FeedsOccupancyFilter(t *testing.T) {
	// Move through (0,0) for 1s, then sit still in (1,0) for 2s, then one
	// more moving second in (1,0).
	tr, err := spatial.NewTrace(
		[]float64{0.25, 0.75, 0.75, 0.75, 0.25},
		[]float64{0.25, 0.25, 0.25, 0.25, 0.25},
		[]float64{0, 1, 2, 3, 4},
	)
	require.NoError(t, err)

	opts := spatial.DefaultOccupancyOptions()
	opts.Speed = spatial.Speed(tr)
	opts.SpeedThresh = 0.01

	occ, err := spatial.Occupancy(tr, square(t), opts)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, occ.At(0, 0), 1e-12, "moving second in (0,0) kept")
	assert.InDelta(t, 1.0, occ.At(1, 0), 1e-12, "stationary seconds in (1,0) filtered out")
}
