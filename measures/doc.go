// Package measures computes basic measures of spiking activity and
// converts between spike-data representations.
//
// ✨ Key features:
//   - firing rate over the observed span or an explicit time range
//   - inter-spike intervals (ISIs), coefficient of variation, Fano factor
//   - conversions: times ⇄ train, ISIs → times, times → counts/rates
//   - Victor–Purpura spike-train distance (cost-parameterized edit metric)
//
// Representations:
//
//   - Spike times: non-decreasing float64 timestamps, seconds.
//   - Spike train: []int of per-sample spike counts at a fixed sampling
//     rate fs; index i covers [start + i/fs, start + (i+1)/fs).
//
// Round-trip guarantee: TrainToTimes(TimesToTrain(times, fs), fs, start)
// conserves the total spike count and recovers every time to within one
// train sample (1/fs).
//
// All functions validate at the boundary and return sentinel errors; no
// input slice is ever mutated.
package measures
