// Package jetobsmc is a reproducible catalog of per-jet physics observables
// computed from particle four-momentum data — built for validating Monte Carlo
// generator output against reference data.
//
// 🚀 What is JetObsMC?
//
//	A pure-Go library that brings together:
//		• Four-vector algebra: Minkowski products, invariant mass, eta/phi/rapidity
//		• Canonical masking: one deterministic padding rule shared by every consumer
//		• Jet aggregates: masked constituents + cached kinematics, immutable by design
//		• Observables: kinematic, shape, substructure-proxy, correlator, groomed families
//		• Stability guards: mass clamps, eta clamps, rest-frame boost residual checks
//
// ✨ Why choose JetObsMC?
//
//   - Deterministic – identical input gives bit-identical output, every run
//   - Total – degenerate jets yield fixed sentinels, never NaN or panics
//   - Honest – substructure and grooming quantities are labeled proxies, not
//     full recombination algorithms
//   - Concurrent-friendly – jets are immutable after construction; every
//     observable is a pure function, safe to call from any goroutine
//
// Everything is organized under flat, per-family packages:
//
//	fourvec/     — FourVector value type, angular utilities, rest-frame boost
//	constituent/ — padding mask, layout handling, massless conversion
//	jet/         — the Jet aggregate with construction-time caches
//	shape/       — O(N) pT-weighted shapes (width, angularities, dispersion)
//	subjet/      — N-subjettiness proxies tau1..tau3 and ratios
//	ecf/         — energy correlators e2/e3 and ratios c2/d2
//	groom/       — Soft Drop proxies on the hardest constituent pair
//	catalog/     — the closed, name-keyed observable registry
//	batch/       — padded multi-event evaluation with per-event isolation
//	hepconv/     — go-hep fmom four-momentum interop
//
// Quick sketch of the data flow:
//
//	padded rows ──mask──▶ constituents ──sum──▶ Jet ──▶ catalog.EvaluateAll
//
// Dive into the per-package docs for contracts, complexity notes, and the
// exact degenerate-case semantics of every observable.
//
//	go get github.com/Atharva12081/JetObsMC
package jetobsmc
