// Package perm defines the permutation-statistics core: tails, sentinel
// errors, p-value and z-score computation.
package perm

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for permutation statistics.
var (
	// ErrEmptySurrogates indicates an empty surrogate statistic slice.
	ErrEmptySurrogates = errors.New("perm: surrogate distribution must be non-empty")
	// ErrDegenerateNullDistribution indicates surrogate statistics with
	// zero standard deviation, for which a z-score is undefined.
	ErrDegenerateNullDistribution = errors.New("perm: degenerate null distribution")
	// ErrNilStatistic indicates a nil statistic function.
	ErrNilStatistic = errors.New("perm: statistic function must be non-nil")
)

// Tail selects the direction in which surrogate values count as "at
// least as extreme" as the observation.
type Tail int

const (
	// TwoSided compares absolute deviations from the surrogate mean.
	TwoSided Tail = iota
	// Greater counts surrogates >= the observed value.
	Greater
	// Less counts surrogates <= the observed value.
	Less
)

// String returns the tail name.
func (tl Tail) String() string {
	switch tl {
	case TwoSided:
		return "two-sided"
	case Greater:
		return "greater"
	case Less:
		return "less"
	default:
		return "unknown"
	}
}

// PValue computes the add-one empirical p-value (k+1)/(N+1) of observed
// against the surrogate distribution, with extremeness direction tail.
// The surrogate slice is read, never mutated.
func PValue(observed float64, surrogates []float64, tail Tail) (float64, error) {
	n := len(surrogates)
	if n == 0 {
		return 0, ErrEmptySurrogates
	}

	var k int
	switch tail {
	case Greater:
		for _, s := range surrogates {
			if s >= observed {
				k++
			}
		}
	case Less:
		for _, s := range surrogates {
			if s <= observed {
				k++
			}
		}
	default: // TwoSided
		mean := stat.Mean(surrogates, nil)
		dev := math.Abs(observed - mean)
		for _, s := range surrogates {
			if math.Abs(s-mean) >= dev {
				k++
			}
		}
	}

	return float64(k+1) / float64(n+1), nil
}

// ZScore standardizes observed against the surrogate distribution:
// (observed - mean) / std, with the sample standard deviation. Fails
// with ErrDegenerateNullDistribution when the surrogates do not vary.
func ZScore(observed float64, surrogates []float64) (float64, error) {
	if len(surrogates) == 0 {
		return 0, ErrEmptySurrogates
	}
	mean, std := stat.MeanStdDev(surrogates, nil)
	if std == 0 || math.IsNaN(std) {
		return 0, ErrDegenerateNullDistribution
	}

	return (observed - mean) / std, nil
}

// Stats computes the p-value and z-score from one cached surrogate
// slice, without re-running any shuffle.
func Stats(observed float64, surrogates []float64, tail Tail) (pValue, zScore float64, err error) {
	if pValue, err = PValue(observed, surrogates, tail); err != nil {
		return 0, 0, err
	}
	if zScore, err = ZScore(observed, surrogates); err != nil {
		return 0, 0, err
	}

	return pValue, zScore, nil
}
