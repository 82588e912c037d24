// Package catalog: the observable table and its evaluation surface.
package catalog

import (
	"fmt"
	"sort"

	"github.com/Atharva12081/JetObsMC/ecf"
	"github.com/Atharva12081/JetObsMC/groom"
	"github.com/Atharva12081/JetObsMC/jet"
	"github.com/Atharva12081/JetObsMC/shape"
	"github.com/Atharva12081/JetObsMC/subjet"
)

// table is the full registry in family order. index is the lookup map
// derived from it. Both are built once at process start and never mutated.
var (
	table = []Descriptor{
		// Kinematics of the aggregated four-vector.
		{
			Name:        "pt",
			Category:    Kinematic,
			Description: "transverse momentum of the summed jet four-vector",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Pt,
		},
		{
			Name:        "mass",
			Category:    Kinematic,
			Description: "invariant mass of the summed jet four-vector, clamped at zero",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Mass,
		},
		{
			Name:        "eta",
			Category:    Kinematic,
			Description: "pseudorapidity of the jet axis",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Eta,
		},
		{
			Name:        "phi",
			Category:    Kinematic,
			Description: "azimuthal angle of the jet axis",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Phi,
		},
		{
			Name:        "energy",
			Category:    Kinematic,
			Description: "total energy of the summed jet four-vector",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Energy,
		},
		{
			Name:        "rapidity",
			Category:    Kinematic,
			Description: "longitudinal rapidity of the summed jet four-vector",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"fourvector"},
			Scalar:      (*jet.Jet).Rapidity,
		},
		{
			Name:        "delta_r",
			Category:    Kinematic,
			Description: "angular separation between two jet axes in the eta-phi plane",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"eta", "phi"},
			Pair:        (*jet.Jet).DeltaR,
		},

		// Counting and pT bookkeeping.
		{
			Name:        "multiplicity",
			Category:    Shape,
			Description: "number of constituents surviving the canonical mask",
			IRCSafe:     false,
			Complexity:  Constant,
			DependsOn:   []string{"mask"},
			Scalar:      func(j *jet.Jet) float64 { return float64(shape.Multiplicity(j)) },
		},
		{
			Name:        "constituent_pt_sum",
			Category:    Shape,
			Description: "scalar sum of constituent transverse momenta",
			IRCSafe:     true,
			Complexity:  Constant,
			DependsOn:   []string{"pt", "mask"},
			Scalar:      shape.PtSum,
		},
		{
			Name:        "leading_constituent_pt",
			Category:    Shape,
			Description: "transverse momentum of the hardest constituent",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"pt", "mask"},
			Scalar:      shape.LeadingPt,
		},
		{
			Name:        "leading_pt_fraction",
			Category:    Shape,
			Description: "hardest constituent pT divided by the scalar pT sum",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"pt", "mask"},
			Scalar:      shape.LeadingPtFraction,
		},

		// pT-weighted shapes.
		{
			Name:        "jet_width",
			Category:    Shape,
			Description: "pT-weighted mean angular distance to the jet axis",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.Width,
		},
		{
			Name:        "girth",
			Category:    Shape,
			Description: "alias of jet_width",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.Girth,
		},
		{
			Name:        "radial_moment_2",
			Category:    Shape,
			Description: "pT-weighted second radial moment about the jet axis",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.RadialMoment2,
		},
		{
			Name:        "radial_moment_3",
			Category:    Shape,
			Description: "pT-weighted third radial moment about the jet axis",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.RadialMoment3,
		},
		{
			Name:        "lha",
			Category:    Shape,
			Description: "Les Houches angularity, kappa 1 and beta 0.5",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.LHA,
		},
		{
			Name:        "thrust",
			Category:    Shape,
			Description: "thrust-like angularity, kappa 1 and beta 2",
			IRCSafe:     true,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      shape.Thrust,
		},
		{
			Name:        "ptd",
			Category:    Shape,
			Description: "sum of squared constituent pT fractions",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"pt"},
			Scalar:      shape.PtD,
		},
		{
			Name:        "pt_dispersion",
			Category:    Shape,
			Description: "square root of the summed squared pT fractions",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"pt"},
			Scalar:      shape.PtDispersion,
		},

		// Fixed-axis subjettiness proxies.
		{
			Name:        "tau1",
			Category:    Substructure,
			Description: "one-axis subjettiness proxy with fixed top-pT axes",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      subjet.Tau1,
		},
		{
			Name:        "tau2",
			Category:    Substructure,
			Description: "two-axis subjettiness proxy with fixed top-pT axes",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      subjet.Tau2,
		},
		{
			Name:        "tau3",
			Category:    Substructure,
			Description: "three-axis subjettiness proxy with fixed top-pT axes",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      subjet.Tau3,
		},
		{
			Name:        "tau21",
			Category:    Substructure,
			Description: "tau2 over tau1 proxy ratio",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      subjet.Tau21,
		},
		{
			Name:        "tau32",
			Category:    Substructure,
			Description: "tau3 over tau2 proxy ratio",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      subjet.Tau32,
		},

		// Energy correlations.
		{
			Name:        "e2",
			Category:    Correlation,
			Description: "pairwise energy correlation normalized by the squared pT sum",
			IRCSafe:     true,
			Complexity:  Quadratic,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      ecf.E2,
		},
		{
			Name:        "e3",
			Category:    Correlation,
			Description: "triple-wise energy correlation normalized by the cubed pT sum",
			IRCSafe:     true,
			Complexity:  Cubic,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      ecf.E3,
		},
		{
			Name:        "c2",
			Category:    Correlation,
			Description: "e3 over e2 squared correlation ratio",
			IRCSafe:     true,
			Complexity:  Cubic,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      ecf.C2,
		},
		{
			Name:        "d2",
			Category:    Correlation,
			Description: "e3 over e2 cubed correlation ratio",
			IRCSafe:     true,
			Complexity:  Cubic,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      ecf.D2,
		},

		// Hardest-pair grooming proxies.
		{
			Name:        "zg",
			Category:    Groomed,
			Description: "momentum-sharing fraction of the two hardest constituents",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"pt"},
			Scalar:      groom.Zg,
		},
		{
			Name:        "rg",
			Category:    Groomed,
			Description: "angular separation of the two hardest constituents",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      groom.Rg,
		},
		{
			Name:        "soft_drop_pass",
			Category:    Groomed,
			Description: "grooming decision at the default working point, 1.0 or 0.0",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"eta", "phi", "pt"},
			Scalar:      func(j *jet.Jet) float64 { return groom.Pass(j, groom.DefaultOptions()) },
		},
		{
			Name:        "groomed_pair_mass",
			Category:    Groomed,
			Description: "invariant mass of the summed hardest constituent pair",
			IRCSafe:     false,
			Complexity:  Linear,
			DependsOn:   []string{"fourvector", "pt"},
			Scalar:      groom.PairMass,
		},
	}

	index = buildIndex(table)
)

// buildIndex maps names to their descriptors.
func buildIndex(entries []Descriptor) map[string]Descriptor {
	m := make(map[string]Descriptor, len(entries))
	for _, d := range entries {
		m[d.Name] = d
	}

	return m
}

// Names returns every registry key in sorted order — the stable column
// order for downstream consumers.
// Complexity: O(K log K) in the table size K.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, d := range table {
		names = append(names, d.Name)
	}
	sort.Strings(names)

	return names
}

// All returns a copy of the registry in family order. Mutating the copy
// does not affect the registry.
// Complexity: O(K).
func All() []Descriptor {
	out := make([]Descriptor, len(table))
	copy(out, table)

	return out
}

// Lookup returns the descriptor registered under name.
// Complexity: O(1).
func Lookup(name string) (Descriptor, bool) {
	d, ok := index[name]

	return d, ok
}

// Evaluate computes the named scalar observable on one jet.
//
// Returns:
//   - ErrUnknownObservable when the name has no entry.
//   - ErrPairObservable when the entry compares two jets.
//
// Complexity: the entry's own cost class.
func Evaluate(name string, j *jet.Jet) (float64, error) {
	d, ok := index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObservable, name)
	}
	if d.Scalar == nil {
		return 0, fmt.Errorf("%w: %q", ErrPairObservable, name)
	}

	return d.Scalar(j), nil
}

// EvaluatePair computes the named pair observable on two jets.
//
// Returns:
//   - ErrUnknownObservable when the name has no entry.
//   - ErrScalarObservable when the entry takes a single jet.
//
// Complexity: the entry's own cost class.
func EvaluatePair(name string, a, b *jet.Jet) (float64, error) {
	d, ok := index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObservable, name)
	}
	if d.Pair == nil {
		return 0, fmt.Errorf("%w: %q", ErrScalarObservable, name)
	}

	return d.Pair(a, b), nil
}

// EvaluateAll computes every scalar entry on one jet, keyed by name — the
// per-jet output contract. Pair entries are skipped; degenerate jets yield
// all-zero values, never NaN.
// Complexity: dominated by the cubic correlation entries.
func EvaluateAll(j *jet.Jet) map[string]float64 {
	out := make(map[string]float64, len(table))
	for _, d := range table {
		if d.Scalar == nil {
			continue
		}
		out[d.Name] = d.Scalar(j)
	}

	return out
}
