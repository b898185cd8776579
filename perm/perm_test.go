package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikelab/perm"
)

// TestPValue_BoundaryMostExtreme: an observation beyond every surrogate
// yields the floor p-value 1/(N+1), never 0.
func TestPValue_BoundaryMostExtreme(t *testing.T) {
	surrogates := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	p, err := perm.PValue(100, surrogates, perm.Greater)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/10.0, p, 1e-12, "k=0 → p=1/(N+1)")

	p, err = perm.PValue(-100, surrogates, perm.Less)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/10.0, p, 1e-12)

	p, err = perm.PValue(100, surrogates, perm.TwoSided)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/10.0, p, 1e-12)
}

// TestPValue_Tails checks the counting rule per tail on a fixed set.
func TestPValue_Tails(t *testing.T) {
	surrogates := []float64{-2, -1, 0, 1, 2} // mean 0

	// Greater: surrogates >= 1 are {1, 2} → (2+1)/6.
	p, err := perm.PValue(1, surrogates, perm.Greater)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	// Less: surrogates <= 1 are {-2,-1,0,1} → (4+1)/6.
	p, err = perm.PValue(1, surrogates, perm.Less)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/6.0, p, 1e-12)

	// TwoSided: |s| >= 1 are {-2,-1,1,2} → (4+1)/6.
	p, err = perm.PValue(1, surrogates, perm.TwoSided)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/6.0, p, 1e-12)

	_, err = perm.PValue(1, nil, perm.TwoSided)
	assert.ErrorIs(t, err, perm.ErrEmptySurrogates)
}

// TestZScore standardizes against the sample std of the surrogates.
func TestZScore(t *testing.T) {
	z, err := perm.ZScore(4, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, z, 1e-12, "(4-2)/1")
}

// TestZScore_DegenerateNull: a flat surrogate distribution has no scale.
func TestZScore_DegenerateNull(t *testing.T) {
	_, err := perm.ZScore(1.5, []float64{1.5, 1.5, 1.5, 1.5})
	assert.ErrorIs(t, err, perm.ErrDegenerateNullDistribution)

	// A single surrogate cannot define a spread either.
	_, err = perm.ZScore(1.5, []float64{2})
	assert.ErrorIs(t, err, perm.ErrDegenerateNullDistribution)
}

// TestStats_SharedSurrogates: both measures come from the same cached
// slice and a degenerate null poisons both.
func TestStats_SharedSurrogates(t *testing.T) {
	p, z, err := perm.Stats(4, []float64{1, 2, 3}, perm.Greater)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p, 1e-12)
	assert.InDelta(t, 2.0, z, 1e-12)

	_, _, err = perm.Stats(1, []float64{1, 1, 1}, perm.Greater)
	assert.ErrorIs(t, err, perm.ErrDegenerateNullDistribution)
}
