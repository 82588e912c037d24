// Package fourvec provides the FourVector value type and its kinematics.
package fourvec

import "math"

// Numerical stability constants shared by every consumer of this package.
const (
	// EtaClamp bounds the ratio pz/|p| away from ±1 before the inverse
	// hyperbolic tangent in Eta and Rapidity.
	EtaClamp = 1e-12

	// BoostClamp bounds beta^2 away from 1 before the Lorentz factor in
	// BoostToRestFrame.
	BoostClamp = 1e-12
)

// Vec is a relativistic four-momentum (E, px, py, pz). It is a plain value
// type: copy freely, never mutate in place. All derived quantities are
// computed on demand and are total for finite inputs.
type Vec struct {
	E  float64
	Px float64
	Py float64
	Pz float64
}

// Pt returns the transverse momentum sqrt(px^2 + py^2).
// Complexity: O(1).
func (v Vec) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P returns the magnitude of the spatial momentum.
// Complexity: O(1).
func (v Vec) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// M2 returns the Minkowski self-product E^2 - |p|^2. The result may be
// slightly negative for nearly lightlike vectors; M applies the clamp.
// Complexity: O(1).
func (v Vec) M2() float64 {
	return Dot(v, v)
}

// M returns the invariant mass sqrt(max(M2, 0)). The clamp guarantees a
// defined, non-negative result even when floating-point noise pushes the
// mass-squared below zero.
// Complexity: O(1).
func (v Vec) M() float64 {
	return math.Sqrt(math.Max(v.M2(), 0))
}

// Eta returns the pseudorapidity atanh(pz/|p|), with the ratio clamped into
// [-1+EtaClamp, 1-EtaClamp] so vectors aligned with the beam axis stay
// finite. A zero-momentum vector returns the 0.0 sentinel.
// Complexity: O(1).
func (v Vec) Eta() float64 {
	p := v.P()
	if p == 0 {
		return 0
	}

	return math.Atanh(clampUnit(v.Pz / p))
}

// Rapidity returns 0.5*ln((E+pz)/(E-pz)) via atanh(pz/E), with the same
// clamping scheme as Eta. A zero-energy vector returns the 0.0 sentinel.
// Complexity: O(1).
func (v Vec) Rapidity() float64 {
	if v.E == 0 {
		return 0
	}

	return math.Atanh(clampUnit(v.Pz / v.E))
}

// Phi returns the azimuthal angle atan2(py, px) in [-pi, pi]. The zero
// vector yields 0.
// Complexity: O(1).
func (v Vec) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// IsFinite reports whether all four components are finite (no NaN, no Inf).
// Upstream validation helper; Vec itself never rejects inputs.
// Complexity: O(1).
func (v Vec) IsFinite() bool {
	return isFinite(v.E) && isFinite(v.Px) && isFinite(v.Py) && isFinite(v.Pz)
}

// Dot returns the Minkowski product E_a*E_b - p_a·p_b under the (+, -, -, -)
// signature. Symmetric in its arguments.
// Complexity: O(1).
func Dot(a, b Vec) float64 {
	return a.E*b.E - a.Px*b.Px - a.Py*b.Py - a.Pz*b.Pz
}

// Add returns the component-wise sum a + b.
// Complexity: O(1).
func Add(a, b Vec) Vec {
	return Vec{
		E:  a.E + b.E,
		Px: a.Px + b.Px,
		Py: a.Py + b.Py,
		Pz: a.Pz + b.Pz,
	}
}

// Sum returns the component-wise sum of vs. An empty slice sums to the zero
// vector, the canonical aggregate of an empty jet.
// Complexity: O(N).
func Sum(vs []Vec) Vec {
	var total Vec
	for _, v := range vs {
		total = Add(total, v)
	}

	return total
}

// clampUnit clamps x into [-1+EtaClamp, 1-EtaClamp].
func clampUnit(x float64) float64 {
	if x > 1-EtaClamp {
		return 1 - EtaClamp
	}
	if x < -1+EtaClamp {
		return -1 + EtaClamp
	}

	return x
}

// isFinite reports x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
