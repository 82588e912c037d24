// Package batch: the event loop and its bounded parallel fan-out.
package batch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Atharva12081/JetObsMC/catalog"
	"github.com/Atharva12081/JetObsMC/jet"
)

// Run evaluates every event and returns one Result per event, in input
// order. A malformed event is reported in its Result and logged at warn
// level; it never aborts the batch. Context cancellation aborts the run
// with the context's error.
// Complexity: per-event observable cost, parallel across events up to the
// worker bound.
func (e *Evaluator) Run(ctx context.Context, events [][][4]float64) ([]Result, error) {
	results := make([]Result, len(events))

	if e.workers == 1 {
		for i, rows := range events {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = e.evalEvent(i, rows)
		}

		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, rows := range events {
		i, rows := i, rows
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evalEvent(i, rows)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// evalEvent masks, converts and evaluates one event. Construction failures
// become the Result's Err; evaluation itself cannot fail.
func (e *Evaluator) evalEvent(i int, rows [][4]float64) Result {
	j, err := jet.FromRows(rows, e.layout)
	if err != nil {
		e.logger.Warn("event rejected",
			zap.Int("event", i),
			zap.Error(err),
		)

		return Result{Event: i, Err: err}
	}

	if e.selected == nil {
		return Result{Event: i, Values: catalog.EvaluateAll(j)}
	}

	values := make(map[string]float64, len(e.selected))
	for _, d := range e.selected {
		values[d.Name] = d.Scalar(j)
	}

	return Result{Event: i, Values: values}
}
