package bins

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Edges computes strictly increasing, uniformly spaced bin edges over
// [min, max] according to spec.
//
// Rules:
//   - Count given: width = (max-min)/Count; edges span [min, max] exactly.
//   - Width given: count = ceil((max-min)/Width); the top edge is extended
//     to min + count*Width so every value in the range is bin-qualified.
//   - Both given: they must tile the range — |Count*Width - (max-min)|
//     must be within DefaultEpsilon relative tolerance.
//
// Errors: ErrInvalidBinSpec for a degenerate range (max <= min),
// non-positive count/width, an unset spec, or an inconsistent pair.
// Complexity: O(k) for k bins.
func Edges(min, max float64, spec Spec) ([]float64, error) {
	if !(max > min) || math.IsNaN(min) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: degenerate range [%v, %v]", ErrInvalidBinSpec, min, max)
	}
	if spec.Count < 0 || spec.Width < 0 || math.IsNaN(spec.Width) {
		return nil, fmt.Errorf("%w: count and width must be positive", ErrInvalidBinSpec)
	}
	span := max - min

	switch {
	case spec.Count > 0 && spec.Width > 0:
		if math.Abs(float64(spec.Count)*spec.Width-span) > DefaultEpsilon*span {
			return nil, fmt.Errorf("%w: count %d and width %v do not tile range %v",
				ErrInvalidBinSpec, spec.Count, spec.Width, span)
		}

		return spanEdges(min, max, spec.Count), nil

	case spec.Count > 0:
		return spanEdges(min, max, spec.Count), nil

	case spec.Width > 0:
		count := int(math.Ceil(span / spec.Width))
		edges := make([]float64, count+1)
		for i := range edges {
			edges[i] = min + float64(i)*spec.Width
		}

		return edges, nil

	default:
		return nil, fmt.Errorf("%w: neither count nor width set", ErrInvalidBinSpec)
	}
}

// Width returns the spacing of a uniform edge set (edge[1]-edge[0]).
// Returns ErrInvalidEdges for a malformed edge set.
func Width(edges []float64) (float64, error) {
	if err := ValidateEdges(edges); err != nil {
		return 0, err
	}

	return edges[1] - edges[0], nil
}

// Widths returns the per-bin widths of an edge set (successive
// differences), which is what rate normalization divides by.
func Widths(edges []float64) ([]float64, error) {
	if err := ValidateEdges(edges); err != nil {
		return nil, err
	}
	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = edges[i+1] - edges[i]
	}

	return out, nil
}

// spanEdges fills count+1 linearly spaced edges from min to max, with the
// endpoints exact.
func spanEdges(min, max float64, count int) []float64 {
	edges := make([]float64, count+1)
	floats.Span(edges, min, max)
	// Guard against rounding drift at the endpoints.
	edges[0], edges[count] = min, max

	return edges
}
