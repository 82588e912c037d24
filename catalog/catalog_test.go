package catalog_test

import (
	"math"
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atharva12081/JetObsMC/catalog"
	"github.com/Atharva12081/JetObsMC/constituent"
	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
	"github.com/Atharva12081/JetObsMC/shape"
)

// threeProngJet is the generic scenario fixture.
func threeProngJet(t *testing.T) *jet.Jet {
	t.Helper()
	j, err := jet.FromRows([][4]float64{
		{40, 20, 5, 34},
		{25, 7, 4, 23},
		{18, -5, 2, 16},
	}, constituent.EPxPyPz)
	require.NoError(t, err)
	return j
}

// TestRegistry_Size verifies the registry carries the full observable set.
func TestRegistry_Size(t *testing.T) {
	assert.GreaterOrEqual(t, len(catalog.All()), 30)
}

// TestRegistry_SchemaConsistency verifies every entry against the schema:
// snake_case name, non-empty description, known category and cost class,
// known dependency features, and exactly one compute function.
func TestRegistry_SchemaConsistency(t *testing.T) {
	nameRe := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	categories := map[catalog.Category]bool{
		catalog.Kinematic:    true,
		catalog.Shape:        true,
		catalog.Substructure: true,
		catalog.Correlation:  true,
		catalog.Groomed:      true,
	}
	costs := map[catalog.Complexity]bool{
		catalog.Constant:  true,
		catalog.Linear:    true,
		catalog.Quadratic: true,
		catalog.Cubic:     true,
	}
	features := map[string]bool{
		"fourvector": true,
		"pt":         true,
		"eta":        true,
		"phi":        true,
		"mask":       true,
	}

	for _, d := range catalog.All() {
		assert.Regexp(t, nameRe, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
		assert.True(t, categories[d.Category], "%s has unknown category %q", d.Name, d.Category)
		assert.True(t, costs[d.Complexity], "%s has unknown cost class %q", d.Name, d.Complexity)
		require.NotEmpty(t, d.DependsOn, d.Name)
		for _, f := range d.DependsOn {
			assert.True(t, features[f], "%s depends on unknown feature %q", d.Name, f)
		}

		scalar, pair := d.Scalar != nil, d.Pair != nil
		assert.True(t, scalar != pair, "%s must have exactly one compute function", d.Name)
	}
}

// TestNames_SortedUnique verifies the registry key contract: one name per
// entry, sorted, no duplicates.
func TestNames_SortedUnique(t *testing.T) {
	names := catalog.Names()

	assert.Len(t, names, len(catalog.All()))
	assert.True(t, sort.StringsAreSorted(names))

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
}

// TestLookup_KnownAndUnknown verifies descriptor lookup on both sides.
func TestLookup_KnownAndUnknown(t *testing.T) {
	d, ok := catalog.Lookup("jet_width")
	require.True(t, ok)
	assert.Equal(t, catalog.Shape, d.Category)
	assert.True(t, d.IRCSafe)
	assert.NotNil(t, d.Scalar)

	_, ok = catalog.Lookup("does_not_exist")
	assert.False(t, ok)
}

// TestEvaluate_ArityAndUnknown verifies the registry misuse errors.
func TestEvaluate_ArityAndUnknown(t *testing.T) {
	j := threeProngJet(t)

	_, err := catalog.Evaluate("does_not_exist", j)
	assert.ErrorIs(t, err, catalog.ErrUnknownObservable)

	_, err = catalog.Evaluate("delta_r", j)
	assert.ErrorIs(t, err, catalog.ErrPairObservable)

	_, err = catalog.EvaluatePair("pt", j, j)
	assert.ErrorIs(t, err, catalog.ErrScalarObservable)

	_, err = catalog.EvaluatePair("does_not_exist", j, j)
	assert.ErrorIs(t, err, catalog.ErrUnknownObservable)
}

// TestEvaluate_MatchesDirectCall verifies the registry dispatches to the
// same functions the packages export.
func TestEvaluate_MatchesDirectCall(t *testing.T) {
	j := threeProngJet(t)

	pt, err := catalog.Evaluate("pt", j)
	require.NoError(t, err)
	assert.Equal(t, j.Pt(), pt)

	width, err := catalog.Evaluate("jet_width", j)
	require.NoError(t, err)
	assert.Equal(t, shape.Width(j), width)
}

// TestEvaluate_ScenarioValues pins the aggregated kinematics of the
// scenario fixture: pt = sqrt((20+7-5)^2 + (5+4+2)^2) and
// mass = sqrt(83^2 - 22^2 - 11^2 - 73^2).
func TestEvaluate_ScenarioValues(t *testing.T) {
	j := threeProngJet(t)

	pt, err := catalog.Evaluate("pt", j)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(605), pt, 1e-12)

	mass, err := catalog.Evaluate("mass", j)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(955), mass, 1e-12)
}

// TestEvaluatePair_IdenticalJets verifies the self-separation identity on
// two identical single-constituent jets, and that e2 collapses to 0 when
// only one constituent exists.
func TestEvaluatePair_IdenticalJets(t *testing.T) {
	a, err := jet.New([]fourvec.Vec{{E: 40, Px: 20, Py: 5, Pz: 34}})
	require.NoError(t, err)
	b, err := jet.New([]fourvec.Vec{{E: 40, Px: 20, Py: 5, Pz: 34}})
	require.NoError(t, err)

	dr, err := catalog.EvaluatePair("delta_r", a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dr)

	e2, err := catalog.Evaluate("e2", a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e2)
}

// TestEvaluateAll_CoversScalars verifies the output contract: one value
// per scalar entry, pair entries skipped.
func TestEvaluateAll_CoversScalars(t *testing.T) {
	values := catalog.EvaluateAll(threeProngJet(t))

	scalars := 0
	for _, d := range catalog.All() {
		if d.Scalar == nil {
			assert.NotContains(t, values, d.Name)
			continue
		}
		scalars++
		assert.Contains(t, values, d.Name)
	}
	assert.Len(t, values, scalars)
}

// TestEvaluateAll_NoNaNOnDegenerateJets verifies the numeric contract on
// empty, single-constituent and generic jets: never NaN, never Inf.
func TestEvaluateAll_NoNaNOnDegenerateJets(t *testing.T) {
	empty, err := jet.New(nil)
	require.NoError(t, err)
	single, err := jet.New([]fourvec.Vec{{E: 40, Px: 20, Py: 5, Pz: 34}})
	require.NoError(t, err)

	for _, j := range []*jet.Jet{empty, single, threeProngJet(t)} {
		for name, v := range catalog.EvaluateAll(j) {
			assert.False(t, math.IsNaN(v), "%s is NaN", name)
			assert.False(t, math.IsInf(v, 0), "%s is Inf", name)
		}
	}
}

// TestEvaluateAll_EmptyJetZeros verifies the all-padding contract through
// the registry: every scalar observable of an empty jet is exactly 0.
func TestEvaluateAll_EmptyJetZeros(t *testing.T) {
	empty, err := jet.New(nil)
	require.NoError(t, err)

	for name, v := range catalog.EvaluateAll(empty) {
		assert.Equal(t, 0.0, v, name)
	}
}
