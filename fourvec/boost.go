// Package fourvec: Lorentz boost into the rest frame of an aggregate.
package fourvec

import "math"

// BoostToRestFrame boosts every vector in vs into the rest frame of their
// component-wise sum and returns the boosted copies; vs is never modified.
//
// Contracts:
//   - beta^2 is clamped at 1-BoostClamp before the Lorentz factor, so
//     near-lightlike aggregates stay finite; the result is then approximate
//     and RestFrameResidual quantifies the deviation.
//   - An empty slice returns an empty slice.
//   - An aggregate with zero spatial momentum, or with non-positive energy,
//     is already at rest as far as this boost is concerned: the identity
//     copy is returned.
//
// Complexity: O(N) time and memory.
func BoostToRestFrame(vs []Vec) []Vec {
	out := make([]Vec, len(vs))
	if len(vs) == 0 {
		return out
	}

	total := Sum(vs)
	if total.E <= 0 {
		copy(out, vs)
		return out
	}

	// beta = p_total / E_total
	bx := total.Px / total.E
	by := total.Py / total.E
	bz := total.Pz / total.E
	b2 := bx*bx + by*by + bz*bz
	if b2 == 0 {
		copy(out, vs)
		return out
	}
	if b2 > 1-BoostClamp {
		b2 = 1 - BoostClamp
	}
	gamma := 1 / math.Sqrt(1-b2)

	for i, v := range vs {
		bp := bx*v.Px + by*v.Py + bz*v.Pz
		coef := (gamma-1)*bp/b2 - gamma*v.E
		out[i] = Vec{
			E:  gamma * (v.E - bp),
			Px: v.Px + bx*coef,
			Py: v.Py + by*coef,
			Pz: v.Pz + bz*coef,
		}
	}

	return out
}

// RestFrameResidual returns the magnitude of the summed spatial momentum
// after BoostToRestFrame — the closure check callers assert against a
// tolerance to validate boost correctness. An exact boost yields ~0; the
// beta^2 clamp can leave a small, finite residual for near-lightlike
// aggregates. An empty slice returns 0.
// Complexity: O(N).
func RestFrameResidual(vs []Vec) float64 {
	if len(vs) == 0 {
		return 0
	}

	total := Sum(BoostToRestFrame(vs))

	return math.Sqrt(total.Px*total.Px + total.Py*total.Py + total.Pz*total.Pz)
}
