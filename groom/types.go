// Package groom defines the options for the grooming decision.
package groom

// Options configures the grooming condition zg > ZCut·(rg/R0)^Beta
// evaluated by Pass.
type Options struct {
	// ZCut is the momentum-sharing threshold the softer prong must exceed.
	ZCut float64

	// Beta is the angular exponent: positive values relax the threshold
	// for wide pairs, 0 makes the decision purely momentum-based.
	Beta float64

	// R0 is the angular normalization radius for the (rg/R0)^Beta factor.
	// Pass treats a non-positive R0 as a failed decision.
	R0 float64
}

// DefaultOptions returns the canonical grooming working point:
//
//	– ZCut = 0.1
//	– Beta = 0   (angle-independent decision)
//	– R0   = 1.0
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		ZCut: 0.1,
		Beta: 0,
		R0:   1.0,
	}
}
