// Package sim generates synthetic spiking data for testing analyses
// against a known ground truth.
//
// Two generators cover the common cases:
//
//   - PoissonTimes — continuous spike times from a homogeneous Poisson
//     process, drawn as exponential inter-spike intervals, with an
//     optional absolute refractory period that drops spikes arriving too
//     soon after their predecessor.
//   - PoissonTrain — a sampled binary train where each sample spikes
//     independently with probability rate/fs.
//
// All randomness flows through an explicit rand.Source, so a fixed PCG
// seed reproduces a simulation bit for bit.
//
// Errors:
//   - ErrInvalidSimParams — non-positive rate or duration, or a rate the
//     sampling frequency cannot represent.
package sim
