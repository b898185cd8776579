package spatial

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spikelab/bins"
)

// Occupancy accumulates the time spent in each spatial bin of g from a
// position trace.
//
// Each sample contributes the interval to the next sample; the final
// sample contributes zero. Samples outside the grid (or excluded by the
// speed filter) are dropped. Unvisited bins hold exactly 0. With
// opts.Normalize the map is divided by its total so it sums to 1.
//
// The returned map has NX rows (x bins) and NY columns (y bins).
// Complexity: O(n·log k) for n samples over k bins per axis.
func Occupancy(tr *Trace, g bins.Grid2D, opts OccupancyOptions) (*mat.Dense, error) {
	if tr == nil || tr.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if opts.Speed != nil && len(opts.Speed) != tr.Len() {
		return nil, ErrDimensionMismatch
	}

	occ := mat.NewDense(g.NX(), g.NY(), nil)
	for i := 0; i < tr.Len(); i++ {
		dur := sampleDuration(tr.times, i)
		if dur == 0 {
			continue
		}
		if opts.Speed != nil && opts.Speed[i] <= opts.SpeedThresh {
			continue
		}
		ix, iy := g.Assign(tr.x[i], tr.y[i])
		if ix == bins.OutOfRange {
			continue
		}
		occ.Set(ix, iy, occ.At(ix, iy)+dur)
	}

	if opts.Normalize {
		normalizeMap(occ)
	}

	return occ, nil
}

// Occupancy1D is the single-axis variant of Occupancy: time spent per
// bin of a 1D position vector.
func Occupancy1D(x, times, edges []float64, opts OccupancyOptions) ([]float64, error) {
	if len(times) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(times) || (opts.Speed != nil && len(opts.Speed) != len(times)) {
		return nil, ErrDimensionMismatch
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, ErrUnorderedTimestamps
		}
	}
	if err := bins.ValidateEdges(edges); err != nil {
		return nil, err
	}

	occ := make([]float64, len(edges)-1)
	for i := range times {
		dur := sampleDuration(times, i)
		if dur == 0 {
			continue
		}
		if opts.Speed != nil && opts.Speed[i] <= opts.SpeedThresh {
			continue
		}
		if b := bins.Assign(x[i], edges); b != bins.OutOfRange {
			occ[b] += dur
		}
	}

	if opts.Normalize {
		var total float64
		for _, v := range occ {
			total += v
		}
		if total > 0 {
			for i := range occ {
				occ[i] /= total
			}
		}
	}

	return occ, nil
}

// TrialOccupancy computes an independent occupancy map per trial range.
// A sample belongs to trial [start, stop) by its timestamp; the final
// sample within each trial contributes zero duration, exactly as the
// last sample of a full trace does.
func TrialOccupancy(tr *Trace, g bins.Grid2D, trials [][2]float64, opts OccupancyOptions) ([]*mat.Dense, error) {
	if tr == nil || tr.Len() == 0 || len(trials) == 0 {
		return nil, ErrEmptyInput
	}
	maps := make([]*mat.Dense, len(trials))
	for ti, trial := range trials {
		if trial[1] <= trial[0] {
			return nil, ErrInvalidTrials
		}
		var x, y, times []float64
		var speed []float64
		for i := 0; i < tr.Len(); i++ {
			if tr.times[i] < trial[0] || tr.times[i] >= trial[1] {
				continue
			}
			x = append(x, tr.x[i])
			y = append(y, tr.y[i])
			times = append(times, tr.times[i])
			if opts.Speed != nil {
				speed = append(speed, opts.Speed[i])
			}
		}
		if len(times) == 0 {
			maps[ti] = mat.NewDense(g.NX(), g.NY(), nil)

			continue
		}
		sub := &Trace{x: x, y: y, times: times}
		subOpts := opts
		subOpts.Speed = speed

		m, err := Occupancy(sub, g, subOpts)
		if err != nil {
			return nil, err
		}
		maps[ti] = m
	}

	return maps, nil
}

// SumMaps sums same-shaped maps elementwise into a fresh map. NaN cells
// propagate, preserving the unvisited signal.
func SumMaps(maps []*mat.Dense) (*mat.Dense, error) {
	if len(maps) == 0 {
		return nil, ErrEmptyInput
	}
	r, c := maps[0].Dims()
	out := mat.NewDense(r, c, nil)
	for _, m := range maps {
		mr, mc := m.Dims()
		if mr != r || mc != c {
			return nil, ErrDimensionMismatch
		}
		out.Add(out, m)
	}

	return out, nil
}

// sampleDuration returns the time attributable to sample i: the interval
// to the next sample, or zero for the final sample.
func sampleDuration(times []float64, i int) float64 {
	if i == len(times)-1 {
		return 0
	}

	return times[i+1] - times[i]
}

// normalizeMap divides every cell by the map total, in place, when the
// total is positive.
func normalizeMap(m *mat.Dense) {
	var total float64
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			total += m.At(i, j)
		}
	}
	if total > 0 {
		m.Scale(1/total, m)
	}
}
