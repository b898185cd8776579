package spatial

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Information computes spatial information (Skaggs, bits/spike) from a
// rate map and the occupancy map it was built over.
//
// With occupancy probability p_i and rate r_i per bin, and mean rate
// r̄ = Σ p_i·r_i over occupied bins:
//
//	information = Σ p_i · (r_i/r̄) · log2(r_i/r̄)
//
// summed over bins with p_i > 0 and r_i > 0; bins with r_i = 0 contribute
// 0 (the mathematical limit), and unvisited NaN cells are skipped.
//
// Errors: ErrDimensionMismatch for shape mismatch; ErrDegenerateRateMap
// when r̄ is 0 (no spikes anywhere) or fewer than two bins are occupied.
func Information(rate, occupancy *mat.Dense) (float64, error) {
	if rate == nil || occupancy == nil {
		return 0, ErrEmptyInput
	}
	rr, rc := rate.Dims()
	or, oc := occupancy.Dims()
	if rr != or || rc != oc {
		return 0, ErrDimensionMismatch
	}

	// Flatten via At so views with a wider stride read correctly.
	rateFlat := make([]float64, 0, rr*rc)
	occFlat := make([]float64, 0, rr*rc)
	for i := 0; i < rr; i++ {
		for j := 0; j < rc; j++ {
			rateFlat = append(rateFlat, rate.At(i, j))
			occFlat = append(occFlat, occupancy.At(i, j))
		}
	}

	return information(rateFlat, occFlat)
}

// Information1D computes spatial information over 1D rate and occupancy
// vectors.
func Information1D(rate, occupancy []float64) (float64, error) {
	if len(rate) == 0 || len(occupancy) == 0 {
		return 0, ErrEmptyInput
	}
	if len(rate) != len(occupancy) {
		return 0, ErrDimensionMismatch
	}

	return information(rate, occupancy)
}

// information is the shared flat-slice kernel for the 1D and 2D fronts.
func information(rate, occ []float64) (float64, error) {
	// Total occupancy over visited bins; NaN cells are skipped.
	var totOcc float64
	var occupied int
	for _, o := range occ {
		if !math.IsNaN(o) && o > 0 {
			totOcc += o
			occupied++
		}
	}
	if occupied < 2 {
		return 0, ErrDegenerateRateMap
	}

	// Mean rate weighted by occupancy probability.
	var meanRate float64
	for i, o := range occ {
		if math.IsNaN(o) || o <= 0 || math.IsNaN(rate[i]) {
			continue
		}
		meanRate += (o / totOcc) * rate[i]
	}
	if meanRate == 0 {
		return 0, ErrDegenerateRateMap
	}

	var info float64
	for i, o := range occ {
		if math.IsNaN(o) || o <= 0 {
			continue
		}
		r := rate[i]
		if math.IsNaN(r) || r <= 0 {
			continue // r=0 terms contribute 0 by the limit x·log(x) → 0
		}
		p := o / totOcc
		ratio := r / meanRate
		info += p * ratio * math.Log2(ratio)
	}

	return info, nil
}
