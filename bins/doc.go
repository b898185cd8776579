// Package bins constructs uniform bin edges and assigns continuous values
// to discrete bins, in one or two dimensions.
//
// Conventions:
//
//   - Edges are strictly increasing; k bins are described by k+1 edges.
//   - Bins are half-open [edge[i], edge[i+1]), except the final bin which
//     is closed on both ends so the maximum value is bin-qualified.
//   - Values outside [edge[0], edge[k]] map to the OutOfRange sentinel
//     (-1) rather than erroring, so callers can drop or clamp.
//   - 2D assignment is performed independently per axis; Grid2D combines
//     the pair into a row-major flat index with the x axis first.
//
// Errors:
//   - ErrInvalidBinSpec — degenerate range, non-positive count/width, or a
//     count/width pair that does not tile the range.
//   - ErrInvalidEdges   — fewer than two edges, or edges not strictly
//     increasing.
package bins
