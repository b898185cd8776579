// Package spatial defines core types, options, and sentinel errors for
// the spatial subpackage of github.com/katalvlaran/spikelab.
package spatial

import "errors"

// Sentinel errors for spatial operations.
var (
	// ErrEmptyInput indicates an empty trace, spike vector, or map.
	ErrEmptyInput = errors.New("spatial: input must be non-empty")
	// ErrDimensionMismatch indicates parallel inputs of differing lengths
	// or maps of differing shapes.
	ErrDimensionMismatch = errors.New("spatial: input dimensions must match")
	// ErrUnorderedTimestamps indicates timestamps that are not non-decreasing.
	ErrUnorderedTimestamps = errors.New("spatial: timestamps must be non-decreasing")
	// ErrDegenerateRateMap indicates a rate map with no spikes anywhere or
	// fewer than two occupied bins, for which spatial information is undefined.
	ErrDegenerateRateMap = errors.New("spatial: degenerate rate map")
	// ErrInvalidTrials indicates a trial range with stop <= start.
	ErrInvalidTrials = errors.New("spatial: trial ranges must have stop > start")
)

// Trace is an immutable 2D position trace: parallel x, y coordinate
// vectors paired with non-decreasing timestamps.
type Trace struct {
	x, y, times []float64
}

// NewTrace builds a Trace, deep-copying all three vectors.
// Returns ErrEmptyInput, ErrDimensionMismatch, or ErrUnorderedTimestamps.
func NewTrace(x, y, times []float64) (*Trace, error) {
	if len(times) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(times) || len(y) != len(times) {
		return nil, ErrDimensionMismatch
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, ErrUnorderedTimestamps
		}
	}
	tr := &Trace{
		x:     make([]float64, len(x)),
		y:     make([]float64, len(y)),
		times: make([]float64, len(times)),
	}
	copy(tr.x, x)
	copy(tr.y, y)
	copy(tr.times, times)

	return tr, nil
}

// Len returns the number of position samples.
func (tr *Trace) Len() int { return len(tr.times) }

// Start returns the first timestamp.
func (tr *Trace) Start() float64 { return tr.times[0] }

// End returns the last timestamp.
func (tr *Trace) End() float64 { return tr.times[len(tr.times)-1] }

// OccupancyOptions tunes occupancy accumulation.
type OccupancyOptions struct {
	// Normalize divides the map by total occupancy so it sums to 1,
	// turning durations into visitation probabilities.
	Normalize bool
	// Speed optionally holds a per-sample speed (same length as the
	// trace); samples at or below SpeedThresh are excluded, which removes
	// stationary periods from the map.
	Speed []float64
	// SpeedThresh is the exclusive lower speed bound applied when Speed
	// is set.
	SpeedThresh float64
}

// DefaultOccupancyOptions returns the defaults: absolute time units, no
// speed filtering.
func DefaultOccupancyOptions() OccupancyOptions {
	return OccupancyOptions{}
}
