// Package constituent canonicalizes padded particle rows into valid
// constituent collections, including the massless conversion from
// HEPSIM-style (pT, rapidity, phi, pdgid) rows to (E, px, py, pz).
//
// What:
//
//   - Mask is THE canonical padding decision: one function, reused by every
//     consumer, so "number of constituents" always agrees with "sum over
//     constituents".
//   - Strip, Multiplicity and LeadingPt apply the mask without converting.
//   - ToVecs masks and converts rows into fourvec.Vec constituents.
//   - RowsFromSlice adapts dynamically shaped [][]float64 input into the
//     fixed [4]float64 row type, rejecting malformed rows.
//
// Mask rule (exact-zero semantics, never a numeric tolerance):
//
//   - PtYPhiID rows are real constituents iff pT > 0 and pdgid != 0.
//   - EPxPyPz rows are real constituents iff pT > 0, i.e. px or py nonzero.
//
// The conversion from (pT, y, phi, pdgid) uses the EXPLICIT MASSLESS
// approximation
//
//	px = pT*cos(phi),  py = pT*sin(phi),  pz = pT*sinh(y),  E = pT*cosh(y)
//
// which treats the dataset rapidity y as massless rapidity. This is a
// physics approximation, stated here once and never generalized silently; a
// mass-aware conversion would be a distinct, explicitly named function
// taking per-particle masses, not a hidden branch of this one.
//
// Errors:
//
//   - ErrRowShape: a dynamic row does not have exactly four fields.
//   - ErrNonFinite: a surviving (non-padding) row carries NaN or Inf.
//   - ErrBadLayout: unrecognized Layout value.
//
// Degenerate inputs are legal: an all-padding row set converts to an empty
// collection, not an error.
package constituent
