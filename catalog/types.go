// Package catalog defines the descriptor schema and sentinel errors for the
// observable registry.
package catalog

import (
	"errors"

	"github.com/Atharva12081/JetObsMC/jet"
)

// Sentinel errors for registry evaluation.
var (
	// ErrUnknownObservable indicates a name with no registry entry.
	ErrUnknownObservable = errors.New("catalog: unknown observable name")
	// ErrPairObservable indicates Evaluate was called on an entry that
	// compares two jets.
	ErrPairObservable = errors.New("catalog: observable requires a jet pair")
	// ErrScalarObservable indicates EvaluatePair was called on an entry
	// that takes a single jet.
	ErrScalarObservable = errors.New("catalog: observable takes a single jet")
)

// Category buckets registry entries by observable family.
type Category string

const (
	// Kinematic observables read the aggregated jet four-vector.
	Kinematic Category = "kinematic"
	// Shape observables are pT-weighted angular moments over constituents.
	Shape Category = "shape"
	// Substructure observables are the fixed-axis tau proxies.
	Substructure Category = "substructure"
	// Correlation observables are the pairwise and triple-wise energy
	// correlations.
	Correlation Category = "correlation"
	// Groomed observables read the two hardest constituents.
	Groomed Category = "groomed"
)

// Complexity labels the asymptotic cost class of one evaluation in the
// constituent count N.
type Complexity string

const (
	// Constant evaluations read cached jet aggregates.
	Constant Complexity = "O(1)"
	// Linear evaluations make one pass over the constituents (the prong
	// and axis rankings add a sorting factor on top).
	Linear Complexity = "O(N)"
	// Quadratic evaluations visit every constituent pair.
	Quadratic Complexity = "O(N^2)"
	// Cubic evaluations visit every constituent triple.
	Cubic Complexity = "O(N^3)"
)

// Descriptor is one registry entry: the metadata of a named observable and
// its compute function. Exactly one of Scalar and Pair is non-nil — Scalar
// entries evaluate a single jet, Pair entries compare two.
type Descriptor struct {
	// Name is the registry key, unique across the table.
	Name string

	// Category buckets the entry by observable family.
	Category Category

	// Description is a one-line human-readable definition.
	Description string

	// IRCSafe records whether the observable is infrared- and
	// collinear-safe. Proxy observables with fixed axes or hard prong
	// counts are flagged unsafe.
	IRCSafe bool

	// Complexity is the asymptotic cost class of one evaluation.
	Complexity Complexity

	// DependsOn lists the derived input features the evaluation reads.
	DependsOn []string

	// Scalar evaluates the observable on one jet. Nil for pair entries.
	Scalar func(j *jet.Jet) float64

	// Pair evaluates the observable on a jet pair. Nil for scalar entries.
	Pair func(a, b *jet.Jet) float64
}
