// Package spikelab is an analysis toolbox for single-unit neural spiking
// data — from basic firing measures to place fields and shuffle statistics.
//
// 🚀 What is spikelab?
//
//	A library of stateless numeric transformations for spike-time data:
//		• Binning: uniform bin edges & half-open bin assignment (1D / 2D)
//		• Measures: firing rate, inter-spike intervals, CV, Fano factor,
//		  spike-train distance, times ⇄ train ⇄ counts ⇄ rates conversions
//		• Spatial: occupancy maps, firing-rate maps, spatial information
//		• Shuffle: ISI / circular / bin / Poisson surrogate generation
//		• Perm: empirical p-values & z-scores from surrogate distributions
//		• Sim: synthetic Poisson spike times & trains
//
// ✨ Why choose spikelab?
//
//   - Explicit randomness – every stochastic call takes a rand.Source;
//     nothing ever touches global random state
//   - Honest numerics – NaN marks unvisited bins, never silent zeros
//   - Pure functions – inputs are never mutated, outputs are fresh slices
//   - Clear failure modes – sentinel errors per package, errors.Is friendly
//
// The toolbox is organized under six subpackages:
//
//	bins/     — bin edge construction & bin assignment
//	measures/ — spike-train measures & representation conversions
//	spatial/  — occupancy, rate maps, spatial information
//	shuffle/  — surrogate generation under several null models
//	perm/     — permutation / surrogate statistics
//	sim/      — synthetic spike simulation
//
// Quick sketch of the core pipeline:
//
//	position trace ──► occupancy map ──┐
//	                                   ├──► rate map ──► spatial information
//	spike times ─────► count map ──────┘
//	      │
//	      └──► shuffles ──► surrogate statistics ──► p-value / z-score
//
// Dive into the per-package doc.go files for contracts, edge cases and
// worked examples.
//
//	go get github.com/katalvlaran/spikelab
package spikelab
