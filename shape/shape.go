// Package shape implements the O(N) pT-weighted shape observables.
package shape

import (
	"math"

	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
)

// Multiplicity returns the number of constituents in the jet.
// Complexity: O(1) (cached at construction).
func Multiplicity(j *jet.Jet) int {
	return j.Len()
}

// PtSum returns the scalar sum of constituent transverse momenta; 0 for an
// empty jet.
// Complexity: O(1) (cached at construction).
func PtSum(j *jet.Jet) float64 {
	return j.ScalarPtSum()
}

// LeadingPt returns the largest constituent transverse momentum; 0 for an
// empty jet.
// Complexity: O(N).
func LeadingPt(j *jet.Jet) float64 {
	leading := 0.0
	for _, pt := range j.ConstituentPts() {
		if pt > leading {
			leading = pt
		}
	}

	return leading
}

// LeadingPtFraction returns the leading constituent pT divided by the
// scalar pT sum; 0 when the sum is zero.
// Complexity: O(N).
func LeadingPtFraction(j *jet.Jet) float64 {
	sum := j.ScalarPtSum()
	if sum == 0 {
		return 0
	}

	return LeadingPt(j) / sum
}

// Width returns the jet width Σ pT_i ΔR_i / Σ pT_i, where ΔR_i is the
// angular distance of constituent i to the jet axis; 0 for an empty jet or
// zero pT sum.
// Complexity: O(N).
func Width(j *jet.Jet) float64 {
	return RadialMoment(j, 1)
}

// Girth is the phenomenology alias for Width.
// Complexity: O(N).
func Girth(j *jet.Jet) float64 {
	return Width(j)
}

// RadialMoment returns the generalized radial moment
// Σ pT_i ΔR_i^beta / Σ pT_i; 0 for an empty jet or zero pT sum.
// Complexity: O(N).
func RadialMoment(j *jet.Jet, beta float64) float64 {
	sum := j.ScalarPtSum()
	if j.Len() == 0 || sum == 0 {
		return 0
	}

	jetEta, jetPhi := j.Eta(), j.Phi()
	pts, etas, phis := j.ConstituentPts(), j.ConstituentEtas(), j.ConstituentPhis()
	accum := 0.0
	for i := range pts {
		dr := fourvec.DeltaRAt(etas[i], phis[i], jetEta, jetPhi)
		accum += pts[i] * math.Pow(dr, beta)
	}

	return accum / sum
}

// RadialMoment2 returns the second radial moment (beta = 2).
// Complexity: O(N).
func RadialMoment2(j *jet.Jet) float64 {
	return RadialMoment(j, 2)
}

// RadialMoment3 returns the third radial moment (beta = 3).
// Complexity: O(N).
func RadialMoment3(j *jet.Jet) float64 {
	return RadialMoment(j, 3)
}

// Angularity returns the generalized angularity lambda^kappa_beta:
//
//	z_i     = pT_i / Σ_j pT_j
//	theta_i = ΔR_i / r0
//	lambda  = Σ_i z_i^kappa * theta_i^beta
//
// Returns 0 for an empty jet, a zero pT sum, or r0 <= 0. Note that kappa
// != 1 weightings are not IRC safe; the catalog carries the flag.
// Complexity: O(N).
func Angularity(j *jet.Jet, kappa, beta, r0 float64) float64 {
	sum := j.ScalarPtSum()
	if j.Len() == 0 || r0 <= 0 || sum == 0 {
		return 0
	}

	jetEta, jetPhi := j.Eta(), j.Phi()
	pts, etas, phis := j.ConstituentPts(), j.ConstituentEtas(), j.ConstituentPhis()
	accum := 0.0
	for i := range pts {
		z := pts[i] / sum
		theta := fourvec.DeltaRAt(etas[i], phis[i], jetEta, jetPhi) / r0
		accum += math.Pow(z, kappa) * math.Pow(theta, beta)
	}

	return accum
}

// LHA returns the Les Houches angularity lambda^1_{0.5}.
// Complexity: O(N).
func LHA(j *jet.Jet) float64 {
	return Angularity(j, 1, 0.5, 1)
}

// Thrust returns the thrust-like angularity lambda^1_{2}.
// Complexity: O(N).
func Thrust(j *jet.Jet) float64 {
	return Angularity(j, 1, 2, 1)
}

// PtD returns the pTD-like angularity lambda^2_{0} — the square of
// PtDispersion.
// Complexity: O(N).
func PtD(j *jet.Jet) float64 {
	return Angularity(j, 2, 0, 1)
}

// PtDispersion returns sqrt(Σ pT_i^2) / Σ pT_i; 0 for an empty jet or zero
// pT sum. 1 for a single-constituent jet, approaching 1/sqrt(N) for N
// equal constituents.
// Complexity: O(N).
func PtDispersion(j *jet.Jet) float64 {
	sum := j.ScalarPtSum()
	if j.Len() == 0 || sum == 0 {
		return 0
	}

	sq := 0.0
	for _, pt := range j.ConstituentPts() {
		sq += pt * pt
	}

	return math.Sqrt(sq) / sum
}
