package fourvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atharva12081/JetObsMC/fourvec"
)

// TestWrapDeltaPhi_Interval verifies the wrap into (-pi, pi] on
// representative points, including both exact boundaries.
func TestWrapDeltaPhi_Interval(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Identity", 1.0, 1.0},
		{"NegIdentity", -1.0, -1.0},
		{"PlusPiStays", math.Pi, math.Pi},
		{"MinusPiWrapsUp", -math.Pi, math.Pi},
		{"ThreeHalfPi", 3 * math.Pi / 2, -math.Pi / 2},
		{"NegThreeHalfPi", -3 * math.Pi / 2, math.Pi / 2},
		{"FullTurn", 2 * math.Pi, 0},
		{"ThreeTurnsPlus", 6*math.Pi + 0.25, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, fourvec.WrapDeltaPhi(tc.in), 1e-12)
		})
	}
}

// TestWrapDeltaPhi_RangeInvariant verifies that a sweep of inputs always
// lands in (-pi, pi].
func TestWrapDeltaPhi_RangeInvariant(t *testing.T) {
	for x := -25.0; x <= 25.0; x += 0.37 {
		w := fourvec.WrapDeltaPhi(x)
		assert.Greater(t, w, -math.Pi, "wrap of %v fell out of range", x)
		assert.LessOrEqual(t, w, math.Pi, "wrap of %v fell out of range", x)
	}
}

// TestDeltaR_SelfIsZero verifies delta_r(v, v) == 0 exactly.
func TestDeltaR_SelfIsZero(t *testing.T) {
	v := fourvec.Vec{E: 30, Px: 10, Py: 5, Pz: 27}
	assert.Equal(t, 0.0, fourvec.DeltaR(v, v))
}

// TestDeltaR_Symmetric verifies delta_r(a, b) == delta_r(b, a).
func TestDeltaR_Symmetric(t *testing.T) {
	a := fourvec.Vec{E: 30, Px: 10, Py: 5, Pz: 27}
	b := fourvec.Vec{E: 25, Px: -9, Py: 3, Pz: 22}
	assert.InDelta(t, fourvec.DeltaR(a, b), fourvec.DeltaR(b, a), 1e-15)
}

// TestDeltaRAt_PureComponents verifies the quadrature combination on points
// separated in only one coordinate at a time.
func TestDeltaRAt_PureComponents(t *testing.T) {
	assert.Equal(t, 0.7, fourvec.DeltaRAt(1.2, 0.4, 0.5, 0.4), "pure eta separation")
	assert.InDelta(t, 0.3, fourvec.DeltaRAt(0.5, 0.7, 0.5, 0.4), 1e-12, "pure phi separation")
}

// TestDeltaRAt_WrapsAcrossBoundary verifies that two nearly back-to-back
// azimuths close to ±pi are measured through the short way around.
func TestDeltaRAt_WrapsAcrossBoundary(t *testing.T) {
	dr := fourvec.DeltaRAt(0, math.Pi-0.05, 0, -math.Pi+0.05)
	assert.InDelta(t, 0.1, dr, 1e-12, "wrap must take the short arc")
}
