// Package batch defines the per-event result type and configuration errors.
package batch

import "errors"

// Sentinel errors for evaluator configuration.
var (
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("batch: worker count must be at least 1")
)

// Result is the outcome for one input event. Exactly one of Values and Err
// is set: a rejected event carries the construction error and no values.
type Result struct {
	// Event is the index of the event in the Run input.
	Event int

	// Values maps observable names to their evaluated values. Nil when
	// the event was rejected.
	Values map[string]float64

	// Err is the construction error for a rejected event. Nil otherwise.
	Err error
}
