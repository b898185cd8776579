// Package perm computes permutation statistics: empirical p-values and
// z-scores comparing an observed statistic against a null distribution
// of surrogate statistics.
//
// The p-value is the add-one empirical estimate (k+1)/(N+1), where k is
// the number of surrogates at least as extreme as the observation; this
// never reports an impossible p of 0 from a finite surrogate set. The
// direction of "extreme" is an explicit Tail parameter (two-sided by
// default), and both one- and two-sided p-values plus the z-score come
// from the same cached surrogate slice — no re-shuffling.
//
// Evaluate applies a statistic to many surrogates, optionally in
// parallel (each surrogate is independent), and Test bundles the whole
// comparison into one call.
//
// Errors:
//   - ErrEmptySurrogates            — no surrogate values to compare against.
//   - ErrDegenerateNullDistribution — the surrogate distribution has zero
//     standard deviation, so a z-score is undefined.
package perm
