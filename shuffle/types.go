// Package shuffle defines methods, options, and sentinel errors for
// surrogate generation.
package shuffle

import "errors"

// ErrInvalidShuffleParams indicates empty or unordered spike input, a
// non-positive surrogate count, or shift/width parameters that are
// incompatible with the input's time span.
var ErrInvalidShuffleParams = errors.New("shuffle: invalid shuffle parameters")

// Method selects a null-generating procedure for Spikes.
type Method int

const (
	// MethodISI permutes inter-spike intervals.
	MethodISI Method = iota
	// MethodCircular applies one random circular time shift.
	MethodCircular
	// MethodBins circularly rolls random-width bins of the spike train.
	MethodBins
	// MethodPoisson redraws spikes from a rate-matched Poisson process.
	MethodPoisson
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodISI:
		return "isi"
	case MethodCircular:
		return "circular"
	case MethodBins:
		return "bins"
	case MethodPoisson:
		return "poisson"
	default:
		return "unknown"
	}
}

// Defaults for Options.
const (
	// DefaultFs is the sampling rate (Hz) of the intermediate spike train
	// used by the bin shuffle.
	DefaultFs = 1000.0
	// DefaultMinShift is the minimum circular rotation, in seconds.
	DefaultMinShift = 20.0
)

// DefaultWidthRange is the [low, high) range, in seconds, that bin widths
// are drawn from in the bin shuffle.
var DefaultWidthRange = [2]float64{0.5, 7}

// Options carries the per-method tuning parameters used by Spikes.
// Methods ignore fields that do not apply to them.
type Options struct {
	// Fs is the spike-train sampling rate for the bin shuffle.
	Fs float64
	// MinShift is the minimum circular rotation, in seconds; the maximum
	// is the observed span minus MinShift.
	MinShift float64
	// WidthRange bounds the random bin widths of the bin shuffle, seconds.
	WidthRange [2]float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Fs:         DefaultFs,
		MinShift:   DefaultMinShift,
		WidthRange: DefaultWidthRange,
	}
}

// checkSpikes validates surrogate-generation input: at least two ordered
// spikes (one ISI) and a positive surrogate count.
func checkSpikes(times []float64, n int) error {
	if n <= 0 || len(times) < 2 {
		return ErrInvalidShuffleParams
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return ErrInvalidShuffleParams
		}
	}

	return nil
}
