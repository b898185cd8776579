// Package spatial computes occupancy maps, firing-rate maps, and spatial
// information from position traces and spike times.
//
// 🚀 Pipeline:
//
//	position trace + grid ──► Occupancy ──┐
//	                                      ├──► RateMap ──► Information
//	spike times ───────────► CountMap ────┘
//
// Maps are gonum *mat.Dense values in row-major order: the row axis is
// the x (first input) dimension, the column axis is y.
//
// Numerical contracts:
//
//   - Per-sample duration is the interval to the next sample; the final
//     sample contributes zero duration.
//   - Out-of-range samples are dropped, never clamped.
//   - Bins never visited have zero occupancy (not NaN); the NaN signal
//     appears only in rate maps, where occupancy 0 divides to NaN and
//     means "unvisited" — distinct from a visited bin with rate 0.
//   - Spikes are assigned to the bin of the most recent position sample
//     at or before the spike time; spikes outside the trace's time span
//     are dropped. This policy is fixed, not per-call.
//   - Rate maps always divide by occupancy in absolute time units, so the
//     result is spikes/second; OccupancyOptions.Normalize only affects
//     standalone occupancy maps.
//
// Speed derives a per-sample movement speed from a trace, ready to plug
// into OccupancyOptions.Speed for stationary-period filtering.
//
// Errors:
//   - ErrDegenerateRateMap — no spikes anywhere, or fewer than two bins
//     with non-zero occupancy, when computing spatial information.
//   - ErrDimensionMismatch, ErrUnorderedTimestamps, ErrEmptyInput — input
//     validation at each public boundary.
package spatial
