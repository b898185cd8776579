package shuffle

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/spikelab/measures"
)

// Spikes generates n surrogates of times using the given method.
// Method-specific parameters come from opts; see the per-method
// functions for their contracts.
func Spikes(times []float64, method Method, n int, src rand.Source, opts Options) ([][]float64, error) {
	switch method {
	case MethodISI:
		return ISI(times, n, src)
	case MethodCircular:
		return Circular(times, n, opts.MinShift, src)
	case MethodBins:
		return Bins(times, n, opts.WidthRange, opts.Fs, src)
	case MethodPoisson:
		return Poisson(times, n, src)
	default:
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidShuffleParams, method)
	}
}

// ISI creates surrogates by permuting the inter-spike intervals and
// rebuilding spike times by cumulative sum from the original first spike.
// Each surrogate preserves the ISI multiset (and so the spike count)
// exactly.
func ISI(times []float64, n int, src rand.Source) ([][]float64, error) {
	if err := checkSpikes(times, n); err != nil {
		return nil, err
	}
	isis := make([]float64, len(times)-1)
	for i := range isis {
		isis[i] = times[i+1] - times[i]
	}

	rng := rand.New(src)
	out := make([][]float64, n)
	for s := range out {
		perm := rng.Perm(len(isis))
		surr := make([]float64, len(times))
		surr[0] = times[0]
		for i, p := range perm {
			surr[i+1] = surr[i] + isis[p]
		}
		out[s] = surr
	}

	return out, nil
}

// Circular creates surrogates by rotating all spike times by one random
// offset, with wraparound over the observed span [first, last). The
// offset is drawn uniformly from [minShift, span-minShift), so the span
// must exceed twice minShift. Spike count and inter-spike spacing
// (modulo the wrap point) are preserved exactly.
func Circular(times []float64, n int, minShift float64, src rand.Source) ([][]float64, error) {
	if err := checkSpikes(times, n); err != nil {
		return nil, err
	}
	first := times[0]
	span := times[len(times)-1] - first
	if minShift < 0 || span <= 2*minShift {
		return nil, fmt.Errorf("%w: span %v incompatible with min shift %v",
			ErrInvalidShuffleParams, span, minShift)
	}

	rng := rand.New(src)
	out := make([][]float64, n)
	for s := range out {
		shift := minShift + rng.Float64()*(span-2*minShift)
		surr := make([]float64, len(times))
		for i, t := range times {
			v := t - first + shift
			if v >= span {
				v -= span
			}
			surr[i] = first + v
		}
		sort.Float64s(surr)
		out[s] = surr
	}

	return out, nil
}

// Bins creates surrogates by partitioning the spike train (sampled at fs)
// into bins of random width drawn from widthRange (seconds), then
// circularly rolling each bin's contents by a random amount. Per-bin
// spike statistics survive; bin-to-bin ordering does not. Spike count is
// preserved exactly.
//
// The width range must satisfy 0 < low < high, with high shorter than
// the observed span.
func Bins(times []float64, n int, widthRange [2]float64, fs float64, src rand.Source) ([][]float64, error) {
	if err := checkSpikes(times, n); err != nil {
		return nil, err
	}
	if fs <= 0 {
		return nil, fmt.Errorf("%w: sampling rate must be positive", ErrInvalidShuffleParams)
	}
	train, err := measures.TimesToTrain(times, fs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShuffleParams, err)
	}
	wLo, wHi := int(widthRange[0]*fs), int(widthRange[1]*fs)
	if wLo < 1 || wHi <= wLo || wHi >= len(train) {
		return nil, fmt.Errorf("%w: width range %v incompatible with span %v",
			ErrInvalidShuffleParams, widthRange, times[len(times)-1]-times[0])
	}
	start := math.Floor(times[0])

	rng := rand.New(src)
	out := make([][]float64, n)
	shuffled := make([]int, len(train))
	for s := range out {
		copy(shuffled, train)

		// Tile the train with random-width bins; the last bin is clipped
		// so the edges always cover the full length.
		left := 0
		for left < len(train) {
			right := left + wLo + rng.IntN(wHi-wLo)
			if right > len(train) {
				right = len(train)
			}
			roll := wLo/2 + rng.IntN(wHi-wLo/2)
			rollCounts(shuffled[left:right], roll)
			left = right
		}

		surr, err := measures.TrainToTimes(shuffled, fs, start)
		if err != nil {
			return nil, err
		}
		out[s] = surr
	}

	return out, nil
}

// Poisson creates surrogates by redrawing spike times from a homogeneous
// Poisson process whose rate matches the observed mean rate over the
// observed span. Count is not preserved, only its expectation; this is a
// simulation-based null rather than a literal shuffle.
func Poisson(times []float64, n int, src rand.Source) ([][]float64, error) {
	if err := checkSpikes(times, n); err != nil {
		return nil, err
	}
	first, last := times[0], times[len(times)-1]
	if last == first {
		return nil, fmt.Errorf("%w: zero time span", ErrInvalidShuffleParams)
	}
	rate := float64(len(times)) / (last - first)
	exp := distuv.Exponential{Rate: rate, Src: src}

	out := make([][]float64, n)
	for s := range out {
		surr := make([]float64, 0, len(times))
		for t := first + exp.Rand(); t <= last; t += exp.Rand() {
			surr = append(surr, t)
		}
		out[s] = surr
	}

	return out, nil
}

// rollCounts rotates seg right by k positions, in place.
func rollCounts(seg []int, k int) {
	n := len(seg)
	if n == 0 {
		return
	}
	k %= n
	if k == 0 {
		return
	}
	tmp := make([]int, n)
	for i, v := range seg {
		tmp[(i+k)%n] = v
	}
	copy(seg, tmp)
}
