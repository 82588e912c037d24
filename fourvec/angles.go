// Package fourvec: angular-distance utilities shared by every observable.
package fourvec

import "math"

// WrapDeltaPhi wraps an azimuthal-angle difference into (-pi, pi].
// The exact boundary -pi maps to +pi so the interval is half-open on the
// negative side.
// Complexity: O(1).
func WrapDeltaPhi(dphi float64) float64 {
	// Floored modulo into [0, 2pi); math.Mod truncates, so fix the sign.
	w := math.Mod(dphi+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	w -= math.Pi
	if w <= -math.Pi {
		w += 2 * math.Pi
	}

	return w
}

// DeltaR returns the angular distance sqrt(deta^2 + dphi^2) between a and b
// in the (eta, phi) plane, with dphi wrapped into (-pi, pi].
// DeltaR(v, v) == 0 exactly.
// Complexity: O(1).
func DeltaR(a, b Vec) float64 {
	return DeltaRAt(a.Eta(), a.Phi(), b.Eta(), b.Phi())
}

// DeltaRAt returns the angular distance between two (eta, phi) points.
// The workhorse for observables reading cached constituent arrays.
// Complexity: O(1).
func DeltaRAt(eta1, phi1, eta2, phi2 float64) float64 {
	return math.Hypot(eta1-eta2, WrapDeltaPhi(phi1-phi2))
}
