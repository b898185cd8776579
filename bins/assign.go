package bins

import (
	"math"
	"sort"
)

// Assign returns the index of the half-open bin [edge[i], edge[i+1])
// containing value. The final bin is closed on both ends, so the maximum
// edge value maps to the last bin. Values outside [edge[0], edge[k]] and
// NaN map to OutOfRange. A value exactly on an interior edge belongs to
// the bin whose lower edge it is.
//
// Assumes edges are valid (see ValidateEdges); assignment itself never
// errors so hot loops stay branch-light.
// Complexity: O(log k) per value.
func Assign(value float64, edges []float64) int {
	n := len(edges)
	if n < 2 || math.IsNaN(value) {
		return OutOfRange
	}
	if value < edges[0] || value > edges[n-1] {
		return OutOfRange
	}
	if value == edges[n-1] {
		return n - 2 // final bin is closed on both ends
	}
	i := sort.SearchFloat64s(edges, value)
	if edges[i] == value {
		return i // exactly on an interior edge: it is that bin's lower edge
	}

	return i - 1
}

// AssignAll assigns every value to its bin; out-of-range values keep the
// OutOfRange sentinel so callers can drop or clamp.
func AssignAll(values, edges []float64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = Assign(v, edges)
	}

	return out
}
