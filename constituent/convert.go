// Package constituent: row adaptation and the massless four-vector conversion.
package constituent

import (
	"fmt"
	"math"

	"github.com/Atharva12081/JetObsMC/fourvec"
)

// RowsFromSlice adapts dynamically shaped rows into the fixed row type.
// Returns ErrRowShape (with the offending index) for any row whose length
// is not exactly four. The input is copied, never aliased.
// Complexity: O(N).
func RowsFromSlice(rows [][]float64) ([][4]float64, error) {
	out := make([][4]float64, len(rows))
	for i, r := range rows {
		if len(r) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrRowShape, i, len(r))
		}
		copy(out[i][:], r)
	}

	return out, nil
}

// FromPtYPhi converts a single (pT, rapidity, phi) triple into a
// four-vector under the explicit massless approximation:
// px = pT*cos(phi), py = pT*sin(phi), pz = pT*sinh(y), E = pT*cosh(y).
// Complexity: O(1).
func FromPtYPhi(pt, y, phi float64) fourvec.Vec {
	return fourvec.Vec{
		E:  pt * math.Cosh(y),
		Px: pt * math.Cos(phi),
		Py: pt * math.Sin(phi),
		Pz: pt * math.Sinh(y),
	}
}

// ToVecs masks rows with the canonical rule, then converts the survivors
// into four-vectors, preserving input order.
//
// Contracts:
//   - EPxPyPz rows map component-wise; PtYPhiID rows go through FromPtYPhi.
//   - A surviving row with a non-finite field is an input-contract
//     violation: ErrNonFinite with the offending row index, never a
//     silent coercion.
//   - An all-padding input converts to an empty slice and a nil error.
//
// Complexity: O(N).
func ToVecs(rows [][4]float64, layout Layout) ([]fourvec.Vec, error) {
	mask, err := Mask(rows, layout)
	if err != nil {
		return nil, err
	}
	out := make([]fourvec.Vec, 0, len(rows))
	for i, r := range rows {
		if !mask[i] {
			continue
		}
		var v fourvec.Vec
		if layout == EPxPyPz {
			v = fourvec.Vec{E: r[0], Px: r[1], Py: r[2], Pz: r[3]}
		} else {
			v = FromPtYPhi(r[0], r[1], r[2])
		}
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: row %d", ErrNonFinite, i)
		}
		out = append(out, v)
	}

	return out, nil
}
