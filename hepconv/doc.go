// Package hepconv bridges this library's four-vector type and the go-hep
// fmom four-momentum types, so go-hep pipelines can feed jets directly.
//
// Conversions are strictly component-wise: (E, px, py, pz) in, the same
// four numbers out. No derived quantity crosses the boundary, so this
// library's edge-case guarantees (clamped mass, clamped pseudorapidity,
// 0.0 sentinels) always apply after conversion — fmom's own accessors keep
// different conventions (signed mass for spacelike vectors, unclamped
// pseudorapidity) and are never consulted.
//
// Contracts:
//
//   - P4 and Vec are exact inverses on the four components.
//   - Jet validates through the same path as jet.New: non-finite
//     components are rejected with jet.ErrNonFinite.
//
// Complexity: O(1) per vector, O(N) per collection.
package hepconv
