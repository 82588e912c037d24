// Package subjet: tau_N proxies with fixed top-pT constituent axes.
package subjet

import (
	"errors"
	"math"
	"sort"

	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
)

// Sentinel errors for axis-count validation.
var (
	// ErrBadAxisCount indicates a TauN call with fewer than one axis.
	ErrBadAxisCount = errors.New("subjet: axis count must be at least 1")
)

// TauN returns the tau_N proxy for an arbitrary axis count n.
// Returns ErrBadAxisCount for n < 1. See the package documentation for the
// proxy definition and its degenerate-case sentinels.
// Complexity: O(N log N + N·n).
func TauN(j *jet.Jet, n int) (float64, error) {
	if n < 1 {
		return 0, ErrBadAxisCount
	}

	return tauN(j, n), nil
}

// Tau1 returns the one-axis proxy: total pT-weighted distance to the
// hardest constituent.
// Complexity: O(N log N).
func Tau1(j *jet.Jet) float64 { return tauN(j, 1) }

// Tau2 returns the two-axis proxy.
// Complexity: O(N log N).
func Tau2(j *jet.Jet) float64 { return tauN(j, 2) }

// Tau3 returns the three-axis proxy.
// Complexity: O(N log N).
func Tau3(j *jet.Jet) float64 { return tauN(j, 3) }

// Tau21 returns tau2/tau1, the classic two-prong discriminant, computed
// from the proxies. A non-positive tau1 yields the 0.0 sentinel.
// Complexity: O(N log N).
func Tau21(j *jet.Jet) float64 {
	t1 := tauN(j, 1)
	if t1 <= 0 {
		return 0
	}

	return tauN(j, 2) / t1
}

// Tau32 returns tau3/tau2, the three-prong discriminant, computed from the
// proxies. A non-positive tau2 yields the 0.0 sentinel.
// Complexity: O(N log N).
func Tau32(j *jet.Jet) float64 {
	t2 := tauN(j, 2)
	if t2 <= 0 {
		return 0
	}

	return tauN(j, 3) / t2
}

// tauN evaluates the proxy for validated n >= 1.
func tauN(j *jet.Jet, n int) float64 {
	// n >= multiplicity: every constituent sits on an axis, tau vanishes.
	if j.Len() == 0 || n >= j.Len() || j.ScalarPtSum() == 0 {
		return 0
	}

	axes := topPtIndices(j, n)
	pts, etas, phis := j.ConstituentPts(), j.ConstituentEtas(), j.ConstituentPhis()

	total := 0.0
	for i := range pts {
		drMin := math.Inf(1)
		for _, a := range axes {
			dr := fourvec.DeltaRAt(etas[i], phis[i], etas[a], phis[a])
			if dr < drMin {
				drMin = dr
			}
		}
		total += pts[i] * drMin
	}

	return total
}

// topPtIndices returns the indices of the n highest-pT constituents.
// The sort is stable over the ascending index order, so equal pTs resolve
// to the earlier input index — identical input gives identical axes.
func topPtIndices(j *jet.Jet, n int) []int {
	pts := j.ConstituentPts()
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return pts[idx[a]] > pts[idx[b]] })

	return idx[:n]
}
