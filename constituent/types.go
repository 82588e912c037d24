// Package constituent defines layouts and sentinel errors for row handling.
package constituent

import "errors"

// Sentinel errors for masking and conversion.
var (
	// ErrRowShape indicates a row with a length other than four.
	ErrRowShape = errors.New("constituent: every row must have exactly four fields")
	// ErrNonFinite indicates a surviving constituent row with a NaN or Inf field.
	ErrNonFinite = errors.New("constituent: non-finite value in constituent row")
	// ErrBadLayout indicates an unrecognized row layout.
	ErrBadLayout = errors.New("constituent: unknown row layout")
)

// Layout identifies the field ordering of constituent rows.
//
//   - EPxPyPz  — four-momentum components (E, px, py, pz).
//   - PtYPhiID — HEPSIM-style (pT, rapidity, phi, pdgid); requires the
//     massless conversion before any four-vector arithmetic.
type Layout int

const (
	// EPxPyPz rows carry (E, px, py, pz) four-momentum components.
	EPxPyPz Layout = iota
	// PtYPhiID rows carry HEPSIM-style (pT, rapidity, phi, pdgid) fields.
	PtYPhiID
)
