package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atharva12081/JetObsMC/constituent"
	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
	"github.com/Atharva12081/JetObsMC/shape"
)

// mustJet builds a jet from (E, px, py, pz) rows or fails the test.
func mustJet(t *testing.T, rows [][4]float64) *jet.Jet {
	t.Helper()
	j, err := jet.FromRows(rows, constituent.EPxPyPz)
	require.NoError(t, err)
	return j
}

// referenceWidth recomputes the jet width with an explicit per-constituent
// loop over raw four-vectors, independent of the cached-array path.
func referenceWidth(j *jet.Jet) float64 {
	if j.Len() == 0 {
		return 0
	}
	denom := 0.0
	for _, v := range j.Constituents() {
		denom += v.Pt()
	}
	if denom == 0 {
		return 0
	}
	accum := 0.0
	for _, v := range j.Constituents() {
		accum += v.Pt() * fourvec.DeltaRAt(v.Eta(), v.Phi(), j.Eta(), j.Phi())
	}
	return accum / denom
}

// TestWidth_MatchesReferenceLoop cross-checks the cached-array width against
// the independent loop-based computation on a generic three-prong jet.
func TestWidth_MatchesReferenceLoop(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{50, 28, 6, 40},
		{35, 12, 8, 30},
		{15, 5, 2, 12},
	})
	assert.InDelta(t, referenceWidth(j), shape.Width(j), 1e-12)
	assert.GreaterOrEqual(t, shape.Width(j), 0.0)
}

// TestWidth_SymmetricPair verifies width on a jet where every angular
// distance is known exactly: two equal-pT massless constituents a quarter
// turn apart sit pi/4 from the combined axis.
func TestWidth_SymmetricPair(t *testing.T) {
	j, err := jet.New([]fourvec.Vec{
		{E: 10, Px: 10},
		{E: 10, Py: 10},
	})
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/4, shape.Width(j), 1e-12)
	assert.InDelta(t, math.Pi/4*math.Pi/4, shape.RadialMoment2(j), 1e-12)
}

// TestWidth_SingleConstituentIsZero verifies that a one-particle jet has
// zero width: the constituent coincides with the jet axis.
func TestWidth_SingleConstituentIsZero(t *testing.T) {
	j := mustJet(t, [][4]float64{{40, 20, 5, 34}})
	assert.Equal(t, 0.0, shape.Width(j))
	assert.Equal(t, 1.0, shape.PtDispersion(j))
	assert.Equal(t, 1.0, shape.LeadingPtFraction(j))
}

// TestGirth_IsWidthAlias verifies the phenomenology alias.
func TestGirth_IsWidthAlias(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{40, 20, 5, 34},
		{25, 7, 4, 23},
	})
	assert.Equal(t, shape.Width(j), shape.Girth(j))
}

// TestAngularity_CrossPathIdentities verifies the generalized angularity
// against the other shape code paths it must agree with:
// lambda^1_1 is the width, lambda^2_0 is the squared pT dispersion.
func TestAngularity_CrossPathIdentities(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{50, 28, 6, 40},
		{35, 12, 8, 30},
		{15, 5, 2, 12},
	})
	assert.InDelta(t, shape.Width(j), shape.Angularity(j, 1, 1, 1), 1e-12)

	disp := shape.PtDispersion(j)
	assert.InDelta(t, disp*disp, shape.PtD(j), 1e-12)
}

// TestAngularity_NamedPoints verifies that LHA, Thrust and PtD are the
// documented (kappa, beta) working points of the generalized angularity.
func TestAngularity_NamedPoints(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{50, 28, 6, 40},
		{35, 12, 8, 30},
		{15, 5, 2, 12},
	})
	assert.Equal(t, shape.Angularity(j, 1, 0.5, 1), shape.LHA(j))
	assert.Equal(t, shape.Angularity(j, 1, 2, 1), shape.Thrust(j))
	assert.Equal(t, shape.Angularity(j, 2, 0, 1), shape.PtD(j))
}

// TestAngularity_BadRadiusSentinel verifies the r0 <= 0 guard.
func TestAngularity_BadRadiusSentinel(t *testing.T) {
	j := mustJet(t, [][4]float64{{40, 20, 5, 34}})
	assert.Equal(t, 0.0, shape.Angularity(j, 1, 0.5, 0))
	assert.Equal(t, 0.0, shape.Angularity(j, 1, 0.5, -1))
}

// TestPtDispersion_ReferenceValue verifies the 3-4 constituent pair with the
// known closed-form value 5/7.
func TestPtDispersion_ReferenceValue(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{6, 3, 0, 5},
		{7, 0, 4, 5},
	})
	assert.InDelta(t, 5.0/7.0, shape.PtDispersion(j), 1e-12)
}

// TestCounting_MatchesJetCaches verifies that multiplicity, the scalar pT
// sum and the leading constituent pT agree with the jet caches and with
// direct per-constituent computation.
func TestCounting_MatchesJetCaches(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{40, 20, 5, 34},
		{25, 7, 4, 23},
		{18, -5, 2, 16},
	})
	assert.Equal(t, 3, shape.Multiplicity(j))
	assert.Equal(t, j.ScalarPtSum(), shape.PtSum(j))

	wantLeading := math.Hypot(20, 5)
	assert.InDelta(t, wantLeading, shape.LeadingPt(j), 1e-12)
	assert.InDelta(t, wantLeading/j.ScalarPtSum(), shape.LeadingPtFraction(j), 1e-12)
}

// TestShapes_EmptyJetSentinels verifies that every shape observable returns
// its 0 sentinel on the empty jet; no NaN, no division by zero.
func TestShapes_EmptyJetSentinels(t *testing.T) {
	j, err := jet.New(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, shape.Multiplicity(j))
	assert.Equal(t, 0.0, shape.PtSum(j))
	assert.Equal(t, 0.0, shape.LeadingPt(j))
	assert.Equal(t, 0.0, shape.LeadingPtFraction(j))
	assert.Equal(t, 0.0, shape.Width(j))
	assert.Equal(t, 0.0, shape.Girth(j))
	assert.Equal(t, 0.0, shape.RadialMoment(j, 1.5))
	assert.Equal(t, 0.0, shape.Angularity(j, 1, 0.5, 1))
	assert.Equal(t, 0.0, shape.LHA(j))
	assert.Equal(t, 0.0, shape.Thrust(j))
	assert.Equal(t, 0.0, shape.PtD(j))
	assert.Equal(t, 0.0, shape.PtDispersion(j))
}

// TestShapes_ZeroPtSumSentinels verifies the degenerate jet whose
// constituents all run along the beam axis: multiplicity counts them, every
// pT-weighted shape returns the 0 sentinel instead of dividing by zero.
func TestShapes_ZeroPtSumSentinels(t *testing.T) {
	j, err := jet.New([]fourvec.Vec{
		{E: 5, Pz: 5},
		{E: 3, Pz: -3},
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, j.ScalarPtSum())

	assert.Equal(t, 2, shape.Multiplicity(j))
	assert.Equal(t, 0.0, shape.Width(j))
	assert.Equal(t, 0.0, shape.LeadingPtFraction(j))
	assert.Equal(t, 0.0, shape.Angularity(j, 1, 0.5, 1))
	assert.Equal(t, 0.0, shape.PtDispersion(j))
	assert.False(t, math.IsNaN(shape.Width(j)))
}

// TestShapes_AllPaddingScenario verifies the padded-input path end to end:
// an all-padding event yields zero multiplicity, pt and width, never NaN.
func TestShapes_AllPaddingScenario(t *testing.T) {
	rows := [][4]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	j, err := jet.FromRows(rows, constituent.PtYPhiID)
	require.NoError(t, err)

	assert.Equal(t, 0, shape.Multiplicity(j))
	assert.Equal(t, 0.0, j.Pt())
	assert.Equal(t, 0.0, shape.Width(j))
}

// TestRadialMoment_DecreasesWithBeta verifies the moment ordering on a jet
// whose constituent distances are all below one: higher beta damps the
// sub-unit distances, so the moment sequence must decrease.
func TestRadialMoment_DecreasesWithBeta(t *testing.T) {
	j := mustJet(t, [][4]float64{
		{50, 28, 6, 40},
		{35, 12, 8, 30},
		{15, 5, 2, 12},
	})
	m1 := shape.RadialMoment(j, 1)
	m2 := shape.RadialMoment2(j)
	m3 := shape.RadialMoment3(j)
	require.Positive(t, m1)
	assert.Less(t, m2, m1)
	assert.Less(t, m3, m2)
}
