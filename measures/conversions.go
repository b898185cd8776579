package measures

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spikelab/bins"
)

// TimesToTrain converts spike times into a spike train of per-sample
// counts at sampling rate fs. The train spans [floor(first), ceil(last)]
// so every spike is encoded; use TimesToTrainRange for an explicit span.
// Total spike count is always conserved.
func TimesToTrain(times []float64, fs float64) ([]int, error) {
	if err := checkTimes(times); err != nil {
		return nil, err
	}

	return TimesToTrainRange(times, fs, math.Floor(times[0]), math.Ceil(times[len(times)-1]))
}

// TimesToTrainRange converts spike times into a spike train covering the
// explicit range [start, stop]. Train length is (stop-start)*fs + 1
// samples; sample i counts spikes in [start + i/fs, start + (i+1)/fs).
// Spikes outside the range are dropped.
func TimesToTrainRange(times []float64, fs, start, stop float64) ([]int, error) {
	if err := checkTimes(times); err != nil {
		return nil, err
	}
	if fs <= 0 || math.IsNaN(fs) {
		return nil, ErrInvalidSampling
	}
	if stop <= start {
		return nil, ErrInvalidRange
	}
	train := make([]int, int((stop-start)*fs)+1)
	for _, t := range times {
		if t < start || t > stop {
			continue
		}
		idx := int((t - start) * fs)
		if idx >= len(train) {
			idx = len(train) - 1
		}
		train[idx]++
	}

	return train, nil
}

// TrainToTimes converts a spike train back into spike times, in seconds.
// A sample at index i with count c emits c spikes at start + (i+1)/fs,
// the closing edge of the sample, so reconstructed times sit within one
// sample width of the originals.
func TrainToTimes(train []int, fs, start float64) ([]float64, error) {
	if len(train) == 0 {
		return nil, ErrEmptyInput
	}
	if fs <= 0 || math.IsNaN(fs) {
		return nil, ErrInvalidSampling
	}
	var total int
	for _, c := range train {
		if c < 0 {
			return nil, ErrEmptyInput
		}
		total += c
	}
	times := make([]float64, 0, total)
	for i, c := range train {
		for k := 0; k < c; k++ {
			times = append(times, start+float64(i+1)/fs)
		}
	}

	return times, nil
}

// ISIsToTimes reconstructs spike times from inter-spike intervals by
// cumulative sum from start. When addInitial is true the start time
// itself is prepended as the first spike, matching the usual convention
// that the first ISI follows an initial spike.
func ISIsToTimes(isis []float64, start float64, addInitial bool) ([]float64, error) {
	if len(isis) == 0 {
		return nil, ErrEmptyInput
	}
	for _, isi := range isis {
		if isi < 0 || math.IsNaN(isi) {
			return nil, ErrNegativeISI
		}
	}
	cum := make([]float64, len(isis))
	floats.CumSum(cum, isis)

	var times []float64
	if addInitial {
		times = make([]float64, 0, len(isis)+1)
		times = append(times, start)
	} else {
		times = make([]float64, 0, len(isis))
	}
	for _, c := range cum {
		times = append(times, start+c)
	}

	return times, nil
}

// TimesToCounts counts spikes per time bin given explicit bin edges.
// Spikes outside the edge span are dropped.
func TimesToCounts(times, edges []float64) ([]int, error) {
	if err := checkTimes(times); err != nil {
		return nil, err
	}
	if err := bins.ValidateEdges(edges); err != nil {
		return nil, err
	}
	counts := make([]int, len(edges)-1)
	for _, t := range times {
		if i := bins.Assign(t, edges); i != bins.OutOfRange {
			counts[i]++
		}
	}

	return counts, nil
}

// TimesToRates converts spike times into a continuous firing rate across
// time bins: per-bin count divided by per-bin width.
func TimesToRates(times, edges []float64) ([]float64, error) {
	counts, err := TimesToCounts(times, edges)
	if err != nil {
		return nil, err
	}
	widths, err := bins.Widths(edges)
	if err != nil {
		return nil, err
	}
	rates := make([]float64, len(counts))
	for i, c := range counts {
		rates[i] = float64(c) / widths[i]
	}

	return rates, nil
}
