// Package hepconv: component-wise conversions to and from go-hep fmom.
package hepconv

import (
	"go-hep.org/x/hep/fmom"

	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
)

// P4 converts a four-vector into the go-hep (px, py, pz, E) representation.
// Complexity: O(1).
func P4(v fourvec.Vec) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(v.Px, v.Py, v.Pz, v.E)
}

// Vec converts any go-hep four-momentum into this library's value type,
// reading only the four components.
// Complexity: O(1).
func Vec(p fmom.P4) fourvec.Vec {
	return fourvec.Vec{E: p.E(), Px: p.Px(), Py: p.Py(), Pz: p.Pz()}
}

// Constituents converts a go-hep four-momentum collection.
// Complexity: O(N).
func Constituents(ps []fmom.P4) []fourvec.Vec {
	vs := make([]fourvec.Vec, len(ps))
	for i, p := range ps {
		vs[i] = Vec(p)
	}

	return vs
}

// Jet converts the given four-momenta and builds a Jet from them. The
// usual construction validation applies.
// Complexity: O(N).
func Jet(ps ...fmom.P4) (*jet.Jet, error) {
	return jet.New(Constituents(ps))
}
