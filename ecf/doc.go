// Package ecf computes pairwise and triple-wise energy correlation
// functions over a Jet's constituents, normalized by the scalar pT sum.
//
// Definitions:
//
//	e2 = Σ_{i<j}   pT_i pT_j      ΔR_ij                  / (Σ pT)^2
//	e3 = Σ_{i<j<k} pT_i pT_j pT_k ΔR_ij ΔR_ik ΔR_jk      / (Σ pT)^3
//	c2 = e3 / e2^2
//	d2 = e3 / e2^3
//
// Contracts:
//
//   - e2 needs at least 2 constituents, e3 at least 3; below that the value
//     is 0 — a degenerate-but-valid state, not an error.
//   - A zero scalar pT sum yields 0 for everything.
//   - c2 and d2 guard the ratio: e2 <= 0 yields the 0.0 sentinel, never
//     NaN or Inf.
//   - Pure functions over an immutable Jet: identical input, identical
//     output, safe to call concurrently.
//
// Complexity: e2 is O(N^2); e3 (and therefore c2, d2) is O(N^3) over all
// unordered constituent triples. The cubic sum is the dominant cost for
// large jets and the first place to spend any future optimization effort
// (partial sums, symmetry exploitation) — the exhaustive loop here is the
// reference the optimized form would be validated against.
package ecf
