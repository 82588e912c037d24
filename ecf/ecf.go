// Package ecf: two- and three-point energy correlators and their ratios.
package ecf

import (
	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
)

// E2 returns the two-point energy correlation
// Σ_{i<j} pT_i pT_j ΔR_ij / (Σ pT)^2. Fewer than 2 constituents, or a zero
// pT sum, yields 0.
// Complexity: O(N^2).
func E2(j *jet.Jet) float64 {
	n := j.Len()
	sum := j.ScalarPtSum()
	if n < 2 || sum == 0 {
		return 0
	}

	pts, etas, phis := j.ConstituentPts(), j.ConstituentEtas(), j.ConstituentPhis()
	total := 0.0
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			total += pts[i] * pts[k] * fourvec.DeltaRAt(etas[i], phis[i], etas[k], phis[k])
		}
	}

	return total / (sum * sum)
}

// E3 returns the three-point energy correlation
// Σ_{i<j<k} pT_i pT_j pT_k ΔR_ij ΔR_ik ΔR_jk / (Σ pT)^3 over every
// unordered constituent triple. Fewer than 3 constituents, or a zero pT
// sum, yields 0.
// Complexity: O(N^3), by design; see the package documentation.
func E3(j *jet.Jet) float64 {
	n := j.Len()
	sum := j.ScalarPtSum()
	if n < 3 || sum == 0 {
		return 0
	}

	pts, etas, phis := j.ConstituentPts(), j.ConstituentEtas(), j.ConstituentPhis()
	total := 0.0
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			drIK := fourvec.DeltaRAt(etas[i], phis[i], etas[k], phis[k])
			for m := k + 1; m < n; m++ {
				drIM := fourvec.DeltaRAt(etas[i], phis[i], etas[m], phis[m])
				drKM := fourvec.DeltaRAt(etas[k], phis[k], etas[m], phis[m])
				total += pts[i] * pts[k] * pts[m] * drIK * drIM * drKM
			}
		}
	}

	return total / (sum * sum * sum)
}

// C2 returns the ratio e3/e2^2. A non-positive e2 yields the 0.0 sentinel.
// Complexity: O(N^3).
func C2(j *jet.Jet) float64 {
	e2 := E2(j)
	if e2 <= 0 {
		return 0
	}

	return E3(j) / (e2 * e2)
}

// D2 returns the ratio e3/e2^3. A non-positive e2 yields the 0.0 sentinel.
// Complexity: O(N^3).
func D2(j *jet.Jet) float64 {
	e2 := E2(j)
	if e2 <= 0 {
		return 0
	}

	return E3(j) / (e2 * e2 * e2)
}
