package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spikelab/bins"
)

// CountMap accumulates spike counts per spatial bin. Each spike is
// assigned to the position of the most recent sample at or before the
// spike time (the sample whose interval the spike falls in); spikes
// before the first or after the last sample are dropped.
func CountMap(spikes []float64, tr *Trace, g bins.Grid2D) (*mat.Dense, error) {
	if tr == nil || tr.Len() == 0 {
		return nil, ErrEmptyInput
	}
	for i := 1; i < len(spikes); i++ {
		if spikes[i] < spikes[i-1] {
			return nil, ErrUnorderedTimestamps
		}
	}

	counts := mat.NewDense(g.NX(), g.NY(), nil)
	for _, t := range spikes {
		si := mostRecentSample(tr.times, t)
		if si < 0 {
			continue
		}
		ix, iy := g.Assign(tr.x[si], tr.y[si])
		if ix == bins.OutOfRange {
			continue
		}
		counts.Set(ix, iy, counts.At(ix, iy)+1)
	}

	return counts, nil
}

// RateMap computes a firing-rate map: per-bin spike count divided by
// per-bin occupancy time over the same trace and grid.
//
// Cells with zero occupancy divide to NaN, marking "unvisited"; visited
// cells with no spikes are exactly 0. The occupancy denominator is always
// in absolute time units — opts.Normalize is ignored here so the result
// is spikes/second regardless of caller flags.
func RateMap(spikes []float64, tr *Trace, g bins.Grid2D, opts OccupancyOptions) (*mat.Dense, error) {
	counts, err := CountMap(spikes, tr, g)
	if err != nil {
		return nil, err
	}
	opts.Normalize = false
	occ, err := Occupancy(tr, g, opts)
	if err != nil {
		return nil, err
	}

	rate := mat.NewDense(g.NX(), g.NY(), nil)
	for i := 0; i < g.NX(); i++ {
		for j := 0; j < g.NY(); j++ {
			if o := occ.At(i, j); o > 0 {
				rate.Set(i, j, counts.At(i, j)/o)
			} else {
				rate.Set(i, j, math.NaN())
			}
		}
	}

	return rate, nil
}

// RateMap1D is the single-axis variant of RateMap. As in RateMap, the
// occupancy denominator stays in absolute time units regardless of
// opts.Normalize.
func RateMap1D(spikes, x, times, edges []float64, opts OccupancyOptions) ([]float64, error) {
	opts.Normalize = false
	occ, err := Occupancy1D(x, times, edges, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(spikes); i++ {
		if spikes[i] < spikes[i-1] {
			return nil, ErrUnorderedTimestamps
		}
	}

	counts := make([]float64, len(edges)-1)
	for _, t := range spikes {
		si := mostRecentSample(times, t)
		if si < 0 {
			continue
		}
		if b := bins.Assign(x[si], edges); b != bins.OutOfRange {
			counts[b]++
		}
	}

	rate := make([]float64, len(counts))
	for i := range counts {
		if occ[i] > 0 {
			rate[i] = counts[i] / occ[i]
		} else {
			rate[i] = math.NaN()
		}
	}

	return rate, nil
}

// mostRecentSample returns the index of the last timestamp at or before
// t, or -1 when t lies outside [times[0], times[last]].
func mostRecentSample(times []float64, t float64) int {
	n := len(times)
	if n == 0 || t < times[0] || t > times[n-1] {
		return -1
	}
	// First index with times[i] > t; the sample before it is most recent.
	i := sort.Search(n, func(i int) bool { return times[i] > t })

	return i - 1
}
