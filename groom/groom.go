// Package groom: momentum-sharing proxies on the hardest constituent pair.
package groom

import (
	"math"
	"sort"

	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
)

// hardestPair returns the indices of the two highest-pT constituents,
// ranked with a stable descending sort so equal-pT ties resolve to the
// earlier input index. ok is false when the jet has fewer than two
// constituents.
func hardestPair(j *jet.Jet) (lead, sub int, ok bool) {
	if j.Len() < 2 {
		return 0, 0, false
	}

	pts := j.ConstituentPts()
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return pts[idx[a]] > pts[idx[b]] })

	return idx[0], idx[1], true
}

// Zg returns the momentum-sharing fraction of the two hardest
// constituents, min(pT1, pT2) / (pT1 + pT2). The stable ranking makes the
// sub-leading prong the softer one, so the minimum is its pT. Fewer than
// two constituents, or a pair with zero combined pT, yields 0.
// Complexity: O(N log N).
func Zg(j *jet.Jet) float64 {
	lead, sub, ok := hardestPair(j)
	if !ok {
		return 0
	}

	pts := j.ConstituentPts()
	total := pts[lead] + pts[sub]
	if total <= 0 {
		return 0
	}

	return pts[sub] / total
}

// Rg returns the angular separation ΔR between the two hardest
// constituents. Fewer than two constituents yields 0.
// Complexity: O(N log N).
func Rg(j *jet.Jet) float64 {
	lead, sub, ok := hardestPair(j)
	if !ok {
		return 0
	}

	etas, phis := j.ConstituentEtas(), j.ConstituentPhis()

	return fourvec.DeltaRAt(etas[lead], phis[lead], etas[sub], phis[sub])
}

// Pass evaluates the grooming condition zg > ZCut·(rg/R0)^Beta on the
// hardest pair and returns 1.0 when it holds, 0.0 otherwise. Jets with
// fewer than two constituents fail the condition, as does a non-positive
// R0.
// Complexity: O(N log N).
func Pass(j *jet.Jet, opts Options) float64 {
	if opts.R0 <= 0 || j.Len() < 2 {
		return 0
	}
	if Zg(j) > opts.ZCut*math.Pow(Rg(j)/opts.R0, opts.Beta) {
		return 1
	}

	return 0
}

// PairMass returns the invariant mass of the summed four-vectors of the
// two hardest constituents. Fewer than two constituents yields 0.
// Complexity: O(N log N).
func PairMass(j *jet.Jet) float64 {
	lead, sub, ok := hardestPair(j)
	if !ok {
		return 0
	}

	vs := j.Constituents()

	return fourvec.Add(vs[lead], vs[sub]).M()
}
