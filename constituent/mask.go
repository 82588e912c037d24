// Package constituent: the canonical padding mask and its direct consumers.
package constituent

import "math"

// Mask reports, per row, whether the row is a real constituent under the
// canonical padding rule. Exact-zero comparisons only; no tolerance.
// Returns ErrBadLayout for an unrecognized layout.
// Complexity: O(N).
func Mask(rows [][4]float64, layout Layout) ([]bool, error) {
	mask := make([]bool, len(rows))
	switch layout {
	case EPxPyPz:
		// pT > 0 exactly: at least one transverse component nonzero.
		for i, r := range rows {
			mask[i] = r[1] != 0 || r[2] != 0
		}
	case PtYPhiID:
		// Positive pT and a non-sentinel particle ID.
		for i, r := range rows {
			mask[i] = r[0] > 0 && r[3] != 0
		}
	default:
		return nil, ErrBadLayout
	}

	return mask, nil
}

// Strip returns a copy of rows with padding removed, preserving input order.
// Complexity: O(N).
func Strip(rows [][4]float64, layout Layout) ([][4]float64, error) {
	mask, err := Mask(rows, layout)
	if err != nil {
		return nil, err
	}
	out := make([][4]float64, 0, len(rows))
	for i, r := range rows {
		if mask[i] {
			out = append(out, r)
		}
	}

	return out, nil
}

// Multiplicity returns the number of real constituents in rows.
// Complexity: O(N).
func Multiplicity(rows [][4]float64, layout Layout) (int, error) {
	mask, err := Mask(rows, layout)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, ok := range mask {
		if ok {
			count++
		}
	}

	return count, nil
}

// LeadingPt returns the largest constituent transverse momentum in rows,
// or 0 when no real constituents remain after masking.
// Complexity: O(N).
func LeadingPt(rows [][4]float64, layout Layout) (float64, error) {
	mask, err := Mask(rows, layout)
	if err != nil {
		return 0, err
	}
	leading := 0.0
	for i, r := range rows {
		if !mask[i] {
			continue
		}
		pt := r[0]
		if layout == EPxPyPz {
			pt = math.Hypot(r[1], r[2])
		}
		if pt > leading {
			leading = pt
		}
	}

	return leading, nil
}
