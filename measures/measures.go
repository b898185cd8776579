package measures

import (
	"github.com/montanaflynn/stats"
)

// FiringRate estimates the average firing rate (spikes/second) over the
// observed span of the spike times, len(times)/(last-first).
// Requires at least two spikes with a positive span.
func FiringRate(times []float64) (float64, error) {
	if err := checkTimes(times); err != nil {
		return 0, err
	}
	if len(times) < 2 || times[len(times)-1] == times[0] {
		return 0, ErrEmptyInput
	}

	return float64(len(times)) / (times[len(times)-1] - times[0]), nil
}

// FiringRateIn estimates the firing rate over an explicit [start, stop]
// range: spikes inside the range divided by its duration. Spikes outside
// the range do not count.
func FiringRateIn(times []float64, start, stop float64) (float64, error) {
	if err := checkTimes(times); err != nil {
		return 0, err
	}
	if stop <= start {
		return 0, ErrInvalidRange
	}
	var n int
	for _, t := range times {
		if t >= start && t <= stop {
			n++
		}
	}

	return float64(n) / (stop - start), nil
}

// ISIs computes the inter-spike intervals (successive differences) of a
// spike-time vector.
func ISIs(times []float64) ([]float64, error) {
	if err := checkTimes(times); err != nil {
		return nil, err
	}
	isis := make([]float64, len(times)-1)
	for i := range isis {
		isis[i] = times[i+1] - times[i]
	}

	return isis, nil
}

// CV computes the coefficient of variation of a set of inter-spike
// intervals: population std / mean. A zero mean is degenerate.
func CV(isis []float64) (float64, error) {
	if len(isis) == 0 {
		return 0, ErrEmptyInput
	}
	mean, err := stats.Mean(isis)
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, ErrDegenerateInput
	}
	sd, err := stats.StandardDeviation(isis)
	if err != nil {
		return 0, err
	}

	return sd / mean, nil
}

// FanoFactor computes the Fano factor of a spike train: population
// variance of the per-sample counts divided by their mean. A train with
// no spikes is degenerate.
func FanoFactor(train []int) (float64, error) {
	if len(train) == 0 {
		return 0, ErrEmptyInput
	}
	counts := make([]float64, len(train))
	for i, c := range train {
		counts[i] = float64(c)
	}
	mean, err := stats.Mean(counts)
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, ErrDegenerateInput
	}
	variance, err := stats.PopulationVariance(counts)
	if err != nil {
		return 0, err
	}

	return variance / mean, nil
}
