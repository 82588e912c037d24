// Package subjet computes N-subjettiness PROXIES over a Jet's constituents.
//
// These are not the reference N-subjettiness observables. The reference
// algorithm minimizes over candidate subjet axes with an iterative,
// multi-pass optimization; this package deliberately replaces that search
// with a fixed, documented axis choice so results stay cheap, closed-form
// and bit-for-bit reproducible:
//
//	axes(N) = the N highest-pT constituents
//	tau_N   = Σ_i pT_i · min over axes ΔR(i, axis)
//
// Treat tau values from this package as lightweight baselines, comparable
// only against themselves — never against a full axis-optimized
// implementation.
//
// Contracts:
//
//   - Axis selection is deterministic: constituents are ranked by pT with a
//     stable tie-break, so equal-pT ties resolve to the earlier input index
//     and identical input always yields identical axes.
//   - N >= multiplicity puts every constituent on an axis: tau_N is 0.
//   - Empty jets and zero-pT-sum jets yield 0.
//   - Tau21 and Tau32 guard their denominators: a non-positive tau1 or tau2
//     yields the 0.0 sentinel, never NaN.
//
// Errors:
//
//   - ErrBadAxisCount: TauN called with n < 1 (input-contract violation;
//     the fixed-N helpers Tau1..Tau3 cannot trigger it).
//
// Complexity: O(N·n) per tau_N evaluation plus the O(N log N) axis ranking.
package subjet
