// Package shape computes O(N) pT-weighted jet shape observables from the
// constituent caches of a Jet.
//
// What:
//
//   - Multiplicity, PtSum, LeadingPt, LeadingPtFraction — counting and
//     pT bookkeeping under the canonical mask.
//   - Width (girth): the pT-weighted mean angular distance to the jet axis,
//     Σ pT_i ΔR_i / Σ pT_i.
//   - RadialMoment: the generalized form Σ pT_i ΔR_i^beta / Σ pT_i, with
//     named points RadialMoment2 and RadialMoment3.
//   - Angularity: lambda^kappa_beta = Σ z_i^kappa (ΔR_i/r0)^beta with
//     z_i = pT_i / Σ pT_j, and the named working points LHA (1, 0.5),
//     Thrust (1, 2) and PtD (2, 0).
//   - PtDispersion: sqrt(Σ pT_i^2) / Σ pT_i.
//
// Contracts:
//
//   - Every function is pure: same Jet in, same value out, bit for bit.
//   - Any denominator that is a sum of non-negative pT weights returns the
//     0.0 sentinel when that sum is exactly zero — empty and degenerate
//     jets never divide by zero and never produce NaN.
//   - Angularity additionally returns 0 when r0 <= 0.
//
// Complexity: every observable here is a single O(N) pass over the cached
// constituent arrays.
package shape
