// Package fourvec implements relativistic four-momentum algebra under the
// (+, -, -, -) Minkowski metric, together with the angular utilities and
// numerical-stability guards every observable in this library is built on.
//
// What:
//
//   - Vec is an immutable (E, px, py, pz) value type with derived kinematics:
//     Pt, P, M2, M, Eta, Rapidity, Phi.
//   - Dot, Add and Sum provide Minkowski products and component-wise sums.
//   - WrapDeltaPhi, DeltaR and DeltaRAt measure angular distance in the
//     (eta, phi) plane with the azimuthal difference wrapped into (-pi, pi].
//   - BoostToRestFrame and RestFrameResidual boost constituent sets into the
//     rest frame of their aggregate and expose the post-boost closure check.
//
// Why:
//
//   - Every derived quantity is total: any finite input produces a defined,
//     finite output — no NaN, no panic, no domain error.
//   - Mass is sqrt(max(E^2-p^2, 0)); floating-point noise near the light cone
//     never turns into a spurious negative or a domain error.
//   - Eta clamps the ratio pz/|p| into [-1+EtaClamp, 1-EtaClamp] before the
//     inverse hyperbolic tangent, so beam-parallel vectors stay finite.
//   - The rest-frame boost clamps beta^2 at 1-BoostClamp, keeping
//     near-lightlike aggregates finite at the cost of a documented,
//     checkable residual.
//
// Complexity:
//
//   - All Vec accessors, Dot, Add, WrapDeltaPhi, DeltaR: O(1).
//   - Sum, BoostToRestFrame, RestFrameResidual: O(N) over the input slice.
//
// Errors: none. Every operation in this package is total by contract;
// validating that inputs are finite is the caller's job (see Vec.IsFinite),
// and violations surface upstream at jet construction.
package fourvec
