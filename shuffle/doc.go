// Package shuffle generates randomized surrogates of spike times under
// several null models, for building null distributions.
//
// ✨ Null models:
//   - ISI      — permute inter-spike intervals and rebuild by cumulative
//     sum; preserves the ISI multiset, destroys temporal structure.
//   - Circular — rotate all spike times by one random offset with
//     wraparound over the observed span; preserves count and spacing,
//     destroys absolute alignment.
//   - Bins     — partition the spike train into random-width bins and
//     circularly roll each bin's contents; preserves per-bin statistics,
//     destroys bin-to-bin ordering.
//   - Poisson  — redraw spike times from a Poisson process matched to
//     the observed mean rate; preserves expected rate, not count.
//
// ⚙️ Randomness is always explicit: every generator takes a rand.Source
// (math/rand/v2) and never touches global random state, so the same seed
// reproduces the same surrogates bit for bit, and concurrent callers with
// separate sources cannot interfere:
//
//	src := rand.NewPCG(42, 0)
//	surr, err := shuffle.ISI(spikes, 1000, src)
//
// One surrogate set always comes from one generation procedure; mixing
// null models within a set is the caller's responsibility to avoid.
//
// Errors: ErrInvalidShuffleParams for empty/unordered input, a
// non-positive shuffle count, or shift/width parameters incompatible
// with the input's time span.
package shuffle
