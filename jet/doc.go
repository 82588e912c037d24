// Package jet defines the Jet aggregate: a masked constituent collection
// plus every cached quantity the observable engine reads.
//
// What:
//
//   - New builds a Jet from pre-converted four-vectors; FromRows masks and
//     converts raw padded rows first (canonical rule, see constituent).
//   - Construction computes exactly once: the aggregate four-vector, the
//     per-constituent pT/eta/phi arrays, and the scalar pT sum. Nothing is
//     recomputed afterwards and nothing mutates after construction.
//   - Jet-level kinematics (Pt, Mass, Eta, Phi, Energy, Rapidity) delegate
//     to FourVector semantics on the aggregate; DeltaR compares two jets in
//     the (eta, phi) plane.
//   - ConstituentPts/Etas/Phis and Constituents expose the caches to
//     observable functions. They return internal buffers — treat them as
//     read-only and never append to them.
//
// Why:
//
//   - Every observable call on the same Jet is referentially transparent:
//     safe to memoize, safe to run from many goroutines with no locks,
//     because nothing mutates post-construction.
//   - A jet with zero constituents is legal: its aggregate is (0,0,0,0),
//     Pt and Mass are 0, and Eta/Phi return the 0.0 sentinel so downstream
//     tabular export never sees NaN from this path.
//
// Errors:
//
//   - ErrNonFinite: a constituent carries NaN or Inf (input-contract
//     violation, reported at construction).
//   - FromRows also propagates the constituent package's sentinel errors.
//
// Complexity: construction is O(N); every accessor afterwards is O(1)
// except DeltaR (O(1)) and the boost helpers (O(N)).
package jet
