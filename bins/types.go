// Package bins defines core types and sentinel errors for bin
// construction and assignment.
package bins

import "errors"

// Sentinel errors for bins operations.
var (
	// ErrInvalidBinSpec indicates a degenerate range, a non-positive bin
	// count or width, or a count/width pair that does not tile the range.
	ErrInvalidBinSpec = errors.New("bins: invalid bin specification")
	// ErrInvalidEdges indicates an edge set with fewer than two values or
	// values that are not strictly increasing.
	ErrInvalidEdges = errors.New("bins: edges must be at least two strictly increasing values")
)

// OutOfRange is the sentinel bin index returned for values outside the
// covered range (and for NaN inputs).
const OutOfRange = -1

// DefaultEpsilon is the relative tolerance used when checking that an
// explicit count/width pair tiles the value range.
const DefaultEpsilon = 1e-9

// Spec selects binning by an explicit bin count, an explicit bin width,
// or both. Exactly one of Count/Width may be left at its zero value; a
// pair that is supplied together must tile the range consistently.
type Spec struct {
	// Count is the number of bins; 0 means "derive from Width".
	Count int
	// Width is the bin width; 0 means "derive from Count".
	Width float64
}

// ByCount returns a Spec requesting exactly n uniform bins.
func ByCount(n int) Spec { return Spec{Count: n} }

// ByWidth returns a Spec requesting uniform bins of width w; the upper
// edge is extended so the whole range is covered.
func ByWidth(w float64) Spec { return Spec{Width: w} }

// Grid2D is an immutable pair of per-axis edge sets describing a 2D
// spatial binning. The x axis is the first input dimension and maps to
// the row of any row-major map built over the grid.
type Grid2D struct {
	xEdges []float64
	yEdges []float64
}

// NewGrid2D builds a Grid2D from per-axis edges, deep-copying both sets.
// Returns ErrInvalidEdges if either set is shorter than two values or not
// strictly increasing.
func NewGrid2D(xEdges, yEdges []float64) (Grid2D, error) {
	if err := ValidateEdges(xEdges); err != nil {
		return Grid2D{}, err
	}
	if err := ValidateEdges(yEdges); err != nil {
		return Grid2D{}, err
	}
	g := Grid2D{
		xEdges: make([]float64, len(xEdges)),
		yEdges: make([]float64, len(yEdges)),
	}
	copy(g.xEdges, xEdges)
	copy(g.yEdges, yEdges)

	return g, nil
}

// BuildGrid2D derives a Grid2D from per-axis ranges and bin specs.
// Returns ErrInvalidBinSpec on any invalid range/spec combination.
func BuildGrid2D(xMin, xMax, yMin, yMax float64, xs, ys Spec) (Grid2D, error) {
	xe, err := Edges(xMin, xMax, xs)
	if err != nil {
		return Grid2D{}, err
	}
	ye, err := Edges(yMin, yMax, ys)
	if err != nil {
		return Grid2D{}, err
	}

	return Grid2D{xEdges: xe, yEdges: ye}, nil
}

// NX returns the number of bins along the x axis.
func (g Grid2D) NX() int { return len(g.xEdges) - 1 }

// NY returns the number of bins along the y axis.
func (g Grid2D) NY() int { return len(g.yEdges) - 1 }

// XEdges returns a copy of the x-axis edges.
func (g Grid2D) XEdges() []float64 {
	out := make([]float64, len(g.xEdges))
	copy(out, g.xEdges)

	return out
}

// YEdges returns a copy of the y-axis edges.
func (g Grid2D) YEdges() []float64 {
	out := make([]float64, len(g.yEdges))
	copy(out, g.yEdges)

	return out
}

// Assign maps a point to its (ix, iy) bin pair. If either coordinate is
// out of range, both indices are OutOfRange, so a dropped sample never
// contributes to either axis.
func (g Grid2D) Assign(x, y float64) (ix, iy int) {
	ix = Assign(x, g.xEdges)
	iy = Assign(y, g.yEdges)
	if ix == OutOfRange || iy == OutOfRange {
		return OutOfRange, OutOfRange
	}

	return ix, iy
}

// Flatten maps an (ix, iy) bin pair to a row-major flat index: ix*NY+iy.
// Either index being OutOfRange yields OutOfRange.
func (g Grid2D) Flatten(ix, iy int) int {
	if ix == OutOfRange || iy == OutOfRange {
		return OutOfRange
	}

	return ix*g.NY() + iy
}

// ValidateEdges reports ErrInvalidEdges unless edges holds at least two
// strictly increasing values.
func ValidateEdges(edges []float64) error {
	if len(edges) < 2 {
		return ErrInvalidEdges
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return ErrInvalidEdges
		}
	}

	return nil
}
