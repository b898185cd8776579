package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidSimParams indicates simulation parameters outside their
// valid range.
var ErrInvalidSimParams = errors.New("sim: invalid simulation parameters")

// DefaultRefractory is the default absolute refractory period, in
// seconds: spikes closer than this to their predecessor are dropped.
const DefaultRefractory = 0.001

// Options tunes spike-time simulation.
type Options struct {
	// StartTime is the time of simulation onset, in seconds. Spikes fall
	// in (StartTime, StartTime+duration].
	StartTime float64
	// Refractory is the absolute refractory period in seconds; 0 disables
	// it. Negative values are invalid.
	Refractory float64
}

// DefaultOptions returns simulation defaults: onset at time zero and a
// 1 ms refractory period.
func DefaultOptions() Options {
	return Options{Refractory: DefaultRefractory}
}

// PoissonTimes simulates spike times from a homogeneous Poisson process
// with the given rate (Hz) over the given duration (seconds). Intervals
// are drawn from an exponential distribution with mean 1/rate; spikes
// violating the refractory period are dropped, so the realized rate runs
// slightly below the nominal one when rate*refractory is not small.
//
// The returned times are strictly increasing. An empty slice is a valid
// outcome for short durations or low rates.
func PoissonTimes(rate, duration float64, src rand.Source, opts Options) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: rate %v must be positive", ErrInvalidSimParams, rate)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v must be positive", ErrInvalidSimParams, duration)
	}
	if opts.Refractory < 0 {
		return nil, fmt.Errorf("%w: refractory %v must be non-negative", ErrInvalidSimParams, opts.Refractory)
	}

	exp := distuv.Exponential{Rate: rate, Src: src}
	end := opts.StartTime + duration

	times := make([]float64, 0, int(rate*duration))
	prev := opts.StartTime
	for t := opts.StartTime + exp.Rand(); t <= end; t += exp.Rand() {
		if len(times) > 0 && t-prev < opts.Refractory {
			continue
		}
		times = append(times, t)
		prev = t
	}

	return times, nil
}

// PoissonTrain simulates a binary spike train of nSamples samples at
// sampling rate fs (Hz): each sample spikes independently with
// probability rate/fs. The rate must not exceed fs, since a sample holds
// at most one spike.
func PoissonTrain(rate float64, nSamples int, fs float64, src rand.Source) ([]int, error) {
	if rate <= 0 || fs <= 0 {
		return nil, fmt.Errorf("%w: rate %v and sampling rate %v must be positive",
			ErrInvalidSimParams, rate, fs)
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("%w: sample count %d must be positive", ErrInvalidSimParams, nSamples)
	}
	p := rate / fs
	if p > 1 {
		return nil, fmt.Errorf("%w: rate %v exceeds sampling rate %v", ErrInvalidSimParams, rate, fs)
	}

	bern := distuv.Bernoulli{P: p, Src: src}
	train := make([]int, nSamples)
	for i := range train {
		train[i] = int(bern.Rand())
	}

	return train, nil
}
