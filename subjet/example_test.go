// File: subjet/example_test.go
package subjet_test

import (
	"fmt"

	"github.com/Atharva12081/JetObsMC/constituent"
	"github.com/Atharva12081/JetObsMC/fourvec"
	"github.com/Atharva12081/JetObsMC/jet"
	"github.com/Atharva12081/JetObsMC/subjet"
)

////////////////////////////////////////////////////////////////////////////////
// Example: two-prong discrimination with tau21
////////////////////////////////////////////////////////////////////////////////

// ExampleTau21 demonstrates the tau2/tau1 proxy ratio on a clean two-prong
// jet.
// Scenario:
//
//   - Two hard, equal-pT prongs one radian apart in phi, plus one soft
//     constituent near the first prong.
//   - tau1 is large (one axis cannot cover both prongs); tau2 collapses to
//     the soft constituent's distance from its prong, so tau21 is small —
//     the classic two-prong signature.
//
// Complexity: O(N log N)
func ExampleTau21() {
	j, _ := jet.New([]fourvec.Vec{
		constituent.FromPtYPhi(10, 0, 0),
		constituent.FromPtYPhi(10, 0, 1.0),
		constituent.FromPtYPhi(2, 0, 0.1),
	})

	fmt.Printf("tau1:  %.2f\n", subjet.Tau1(j))
	fmt.Printf("tau2:  %.2f\n", subjet.Tau2(j))
	fmt.Printf("tau21: %.4f\n", subjet.Tau21(j))

	// Output:
	// tau1:  10.20
	// tau2:  0.20
	// tau21: 0.0196
}
