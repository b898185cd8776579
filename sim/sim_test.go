package sim_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikelab/sim"
)

// TestPoissonTimes_RateAndOrder: the realized count tracks rate*duration
// and the output is strictly increasing within the simulated window.
func TestPoissonTimes_RateAndOrder(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Refractory = 0

	times, err := sim.PoissonTimes(20, 100, rand.NewPCG(8, 3), opts)
	require.NoError(t, err)

	// Expected count 2000, std ~45; a wide band keeps this deterministic
	// in practice for any reasonable draw.
	assert.InDelta(t, 2000, float64(len(times)), 300)
	assert.True(t, sort.Float64sAreSorted(times))
	for _, v := range times {
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

// TestPoissonTimes_StartTime offsets the whole simulation window.
func TestPoissonTimes_StartTime(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.StartTime = 50

	times, err := sim.PoissonTimes(10, 20, rand.NewPCG(1, 2), opts)
	require.NoError(t, err)
	require.NotEmpty(t, times)

	assert.Greater(t, times[0], 50.0)
	assert.LessOrEqual(t, times[len(times)-1], 70.0)
}

// TestPoissonTimes_Refractory: no surviving interval may undercut the
// refractory period.
func TestPoissonTimes_Refractory(t *testing.T) {
	opts := sim.DefaultOptions()
	opts.Refractory = 0.01

	// At 200 Hz the raw process produces many sub-10ms intervals, so the
	// refractory filter is genuinely exercised.
	times, err := sim.PoissonTimes(200, 50, rand.NewPCG(4, 4), opts)
	require.NoError(t, err)
	require.Greater(t, len(times), 100)

	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i]-times[i-1], 0.01)
	}
}

// TestPoissonTimes_Deterministic: a fixed seed reproduces the simulation.
func TestPoissonTimes_Deterministic(t *testing.T) {
	a, err := sim.PoissonTimes(15, 30, rand.NewPCG(42, 1), sim.DefaultOptions())
	require.NoError(t, err)
	b, err := sim.PoissonTimes(15, 30, rand.NewPCG(42, 1), sim.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestPoissonTimes_InvalidParams covers the parameter checks.
func TestPoissonTimes_InvalidParams(t *testing.T) {
	src := rand.NewPCG(0, 0)

	_, err := sim.PoissonTimes(0, 10, src, sim.DefaultOptions())
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams)

	_, err = sim.PoissonTimes(10, 0, src, sim.DefaultOptions())
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams)

	_, err = sim.PoissonTimes(10, 10, src, sim.Options{Refractory: -1})
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams)
}

// TestPoissonTrain_SpikeProbability: sample values are binary and their
// mean tracks rate/fs.
func TestPoissonTrain_SpikeProbability(t *testing.T) {
	train, err := sim.PoissonTrain(100, 20000, 1000, rand.NewPCG(9, 9))
	require.NoError(t, err)
	require.Len(t, train, 20000)

	var total int
	for _, v := range train {
		require.True(t, v == 0 || v == 1, "samples are binary")
		total += v
	}
	// Expected 2000 spiking samples, std ~42.
	assert.InDelta(t, 2000, float64(total), 300)
}

// TestPoissonTrain_InvalidParams rejects rates the train cannot hold.
func TestPoissonTrain_InvalidParams(t *testing.T) {
	src := rand.NewPCG(0, 0)

	_, err := sim.PoissonTrain(2000, 100, 1000, src)
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams, "rate above fs is unrepresentable")

	_, err = sim.PoissonTrain(-5, 100, 1000, src)
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams)

	_, err = sim.PoissonTrain(10, 0, 1000, src)
	assert.ErrorIs(t, err, sim.ErrInvalidSimParams)
}
