// Package batch: evaluator construction and functional options.
package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Atharva12081/JetObsMC/catalog"
	"github.com/Atharva12081/JetObsMC/constituent"
)

// Evaluator is a configured batch pipeline. Build it with NewEvaluator;
// the zero value is not usable. An Evaluator is immutable after
// construction and safe for concurrent Run calls.
type Evaluator struct {
	layout   constituent.Layout
	selected []catalog.Descriptor
	workers  int
	logger   *zap.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures an Evaluator via functional arguments. If an Option is
// invalid (unknown observable, bad layout, bad worker count), the problem
// is recorded internally and surfaced by NewEvaluator.
type Option func(*Evaluator)

// WithLayout sets the row layout events are decoded with. The default is
// EPxPyPz; an unrecognized layout is surfaced as constituent.ErrBadLayout.
func WithLayout(layout constituent.Layout) Option {
	return func(e *Evaluator) {
		switch layout {
		case constituent.EPxPyPz, constituent.PtYPhiID:
			e.layout = layout
		default:
			e.err = fmt.Errorf("%w: %d", constituent.ErrBadLayout, layout)
		}
	}
}

// WithObservables restricts evaluation to the named scalar registry
// entries, resolved at construction. An unknown name is surfaced as
// catalog.ErrUnknownObservable, the pair entry as
// catalog.ErrPairObservable. The default evaluates every scalar entry.
func WithObservables(names ...string) Option {
	return func(e *Evaluator) {
		selected := make([]catalog.Descriptor, 0, len(names))
		for _, name := range names {
			d, ok := catalog.Lookup(name)
			if !ok {
				e.err = fmt.Errorf("%w: %q", catalog.ErrUnknownObservable, name)
				return
			}
			if d.Scalar == nil {
				e.err = fmt.Errorf("%w: %q", catalog.ErrPairObservable, name)
				return
			}
			selected = append(selected, d)
		}
		e.selected = selected
	}
}

// WithWorkers sets the bound on concurrently processed events.
//
//	n > 1: parallel fan-out over at most n goroutines
//	n == 1: sequential processing (the default)
//	n < 1: invalid option, surfaced as ErrBadWorkers
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n < 1 {
			e.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		e.workers = n
	}
}

// WithLogger sets the structured logger for per-event rejection reports.
// A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEvaluator builds an Evaluator from the defaults (EPxPyPz layout,
// every scalar entry, one worker, no-op logger) and the given options.
// The first invalid option is returned as the construction error.
// Complexity: O(1) plus the selection lookups.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		layout:  constituent.EPxPyPz,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}

	return e, nil
}
