// Package groom computes soft-drop style grooming observables on the two
// hardest constituents of a Jet.
//
// These are PROXIES, not a full grooming pass. Reference soft drop
// reclusters the jet with Cambridge/Aachen and walks the cluster tree,
// dropping soft branches until the momentum-sharing condition holds; this
// package deliberately replaces the tree walk with a fixed, documented
// prong choice so results stay cheap, closed-form and bit-for-bit
// reproducible:
//
//	prongs = the 2 highest-pT constituents
//	zg     = min(pT1, pT2) / (pT1 + pT2)
//	rg     = ΔR between the prongs
//	pass   = 1.0 when zg > ZCut·(rg/R0)^Beta, else 0.0
//
// Treat values from this package as lightweight baselines, comparable only
// against themselves — never against a declustering implementation.
//
// Contracts:
//
//   - Prong selection is deterministic: constituents are ranked by pT with
//     a stable tie-break, so equal-pT ties resolve to the earlier input
//     index and identical input always yields identical prongs.
//   - Jets with fewer than two constituents yield 0 for every observable —
//     a degenerate-but-valid state, not an error.
//   - A prong pair with zero combined pT yields zg = 0.
//   - Pass returns the decision as 1.0 / 0.0 so it can enter numeric
//     pipelines alongside the other observables; a non-positive R0 yields
//     0.0.
//
// Complexity: the O(N log N) prong ranking dominates; everything after it
// is O(1).
package groom
