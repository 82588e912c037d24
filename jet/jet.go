// Package jet implements the immutable Jet aggregate and its caches.
package jet

import (
	"errors"
	"fmt"

	"github.com/Atharva12081/JetObsMC/constituent"
	"github.com/Atharva12081/JetObsMC/fourvec"
)

// Sentinel errors for jet construction.
var (
	// ErrNonFinite indicates a constituent with a NaN or Inf component.
	ErrNonFinite = errors.New("jet: non-finite constituent component")
)

// Jet owns its masked constituents by value and caches the aggregate
// four-vector plus the per-constituent kinematic arrays at construction.
// Immutable afterwards; safe for concurrent reads without locks.
type Jet struct {
	constituents []fourvec.Vec
	p4           fourvec.Vec
	pts          []float64
	etas         []float64
	phis         []float64
	ptSum        float64
}

// New builds a Jet from pre-converted constituent four-vectors. The input
// is deep-copied; later mutation of vs cannot reach the Jet. Returns
// ErrNonFinite (with the offending index) if any component is NaN or Inf.
// An empty or nil slice builds the legal empty jet.
// Complexity: O(N).
func New(vs []fourvec.Vec) (*Jet, error) {
	for i, v := range vs {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: constituent %d", ErrNonFinite, i)
		}
	}

	j := &Jet{
		constituents: make([]fourvec.Vec, len(vs)),
		pts:          make([]float64, len(vs)),
		etas:         make([]float64, len(vs)),
		phis:         make([]float64, len(vs)),
	}
	copy(j.constituents, vs)
	for i, v := range j.constituents {
		j.pts[i] = v.Pt()
		j.etas[i] = v.Eta()
		j.phis[i] = v.Phi()
		j.ptSum += j.pts[i]
	}
	j.p4 = fourvec.Sum(j.constituents)

	return j, nil
}

// FromRows applies the canonical mask to raw padded rows, converts the
// survivors per the layout, and builds the Jet. An all-padding input builds
// the empty jet.
// Complexity: O(N).
func FromRows(rows [][4]float64, layout constituent.Layout) (*Jet, error) {
	vs, err := constituent.ToVecs(rows, layout)
	if err != nil {
		return nil, err
	}

	return New(vs)
}

// P4 returns the cached aggregate four-vector.
// Complexity: O(1).
func (j *Jet) P4() fourvec.Vec { return j.p4 }

// Pt returns the aggregate transverse momentum; 0 for an empty jet.
// Complexity: O(1).
func (j *Jet) Pt() float64 { return j.p4.Pt() }

// Mass returns the aggregate invariant mass; 0 for an empty jet.
// Complexity: O(1).
func (j *Jet) Mass() float64 { return j.p4.M() }

// Eta returns the aggregate pseudorapidity; the 0.0 sentinel for an empty
// jet, never NaN.
// Complexity: O(1).
func (j *Jet) Eta() float64 { return j.p4.Eta() }

// Phi returns the aggregate azimuthal angle; 0 for an empty jet.
// Complexity: O(1).
func (j *Jet) Phi() float64 { return j.p4.Phi() }

// Energy returns the aggregate energy.
// Complexity: O(1).
func (j *Jet) Energy() float64 { return j.p4.E }

// Rapidity returns the aggregate rapidity; the 0.0 sentinel for an empty
// jet.
// Complexity: O(1).
func (j *Jet) Rapidity() float64 { return j.p4.Rapidity() }

// DeltaR returns the angular distance between the aggregates of j and
// other. DeltaR(j, j) == 0 exactly.
// Complexity: O(1).
func (j *Jet) DeltaR(other *Jet) float64 {
	return fourvec.DeltaR(j.p4, other.p4)
}

// Len returns the number of constituents.
// Complexity: O(1).
func (j *Jet) Len() int { return len(j.constituents) }

// Constituents returns the masked constituent four-vectors. The slice is an
// internal buffer: read-only by contract, never append to it.
// Complexity: O(1).
func (j *Jet) Constituents() []fourvec.Vec { return j.constituents }

// ConstituentPts returns the cached per-constituent transverse momenta.
// Internal buffer: read-only by contract.
// Complexity: O(1).
func (j *Jet) ConstituentPts() []float64 { return j.pts }

// ConstituentEtas returns the cached per-constituent pseudorapidities.
// Internal buffer: read-only by contract.
// Complexity: O(1).
func (j *Jet) ConstituentEtas() []float64 { return j.etas }

// ConstituentPhis returns the cached per-constituent azimuthal angles.
// Internal buffer: read-only by contract.
// Complexity: O(1).
func (j *Jet) ConstituentPhis() []float64 { return j.phis }

// ScalarPtSum returns the cached scalar sum of constituent transverse
// momenta — the common denominator of every pT-weighted observable.
// Complexity: O(1).
func (j *Jet) ScalarPtSum() float64 { return j.ptSum }

// BoostedRestFrame returns the constituents boosted into the rest frame of
// the aggregate. The Jet itself is unchanged.
// Complexity: O(N).
func (j *Jet) BoostedRestFrame() []fourvec.Vec {
	return fourvec.BoostToRestFrame(j.constituents)
}

// RestFrameResidual returns |sum of spatial momenta| after the rest-frame
// boost; ~0 when the boost closes. 0 for an empty jet.
// Complexity: O(N).
func (j *Jet) RestFrameResidual() float64 {
	return fourvec.RestFrameResidual(j.constituents)
}
