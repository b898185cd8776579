package measures

import "errors"

// Sentinel errors for measures operations.
var (
	// ErrEmptyInput indicates a spike-time or interval input with no values
	// (or too few values for the measure at hand).
	ErrEmptyInput = errors.New("measures: input must be non-empty")
	// ErrUnorderedTimes indicates spike times that are not non-decreasing.
	ErrUnorderedTimes = errors.New("measures: spike times must be non-decreasing")
	// ErrInvalidSampling indicates a non-positive sampling rate.
	ErrInvalidSampling = errors.New("measures: sampling rate must be positive")
	// ErrInvalidRange indicates a time range with stop <= start.
	ErrInvalidRange = errors.New("measures: time range stop must exceed start")
	// ErrNegativeISI indicates a negative inter-spike interval.
	ErrNegativeISI = errors.New("measures: inter-spike intervals must be non-negative")
	// ErrDegenerateInput indicates a measure whose denominator (mean) is zero.
	ErrDegenerateInput = errors.New("measures: degenerate input with zero mean")
	// ErrInvalidCost indicates a negative spike-distance cost parameter.
	ErrInvalidCost = errors.New("measures: distance cost must be non-negative")
)

// checkTimes validates a spike-time vector: non-empty and non-decreasing.
func checkTimes(times []float64) error {
	if len(times) == 0 {
		return ErrEmptyInput
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return ErrUnorderedTimes
		}
	}

	return nil
}
