// Package batch evaluates the observable registry over padded event
// collections: one Result per input event, in input order, with per-event
// fault isolation.
//
// What:
//
//   - Evaluator — a configured pipeline: row layout, observable selection,
//     worker count, logger. Built once via NewEvaluator and functional
//     options, reusable across Run calls.
//   - Run — masks, converts and evaluates every event; events are
//     independent, so the parallel path fans them out over a bounded
//     worker pool with results identical to the sequential path.
//   - Result — the per-event outcome: the scalar name → value map, or the
//     construction error for a rejected event.
//
// Contracts:
//
//   - One malformed event NEVER aborts the batch: its Result carries the
//     error, a warn-level structured log line records it, and processing
//     continues. Only context cancellation aborts a run.
//   - Results preserve input order regardless of the worker count, and
//     parallel runs produce bit-identical values to sequential runs.
//   - Configuration problems (unknown observable, bad layout, bad worker
//     count) surface at construction, never mid-run.
//   - The default logger is a no-op; the library never logs unless given
//     a logger.
//
// Errors:
//
//   - ErrBadWorkers: WithWorkers called with n < 1.
//   - catalog.ErrUnknownObservable, catalog.ErrPairObservable: bad
//     WithObservables selection, surfaced by NewEvaluator.
//   - constituent.ErrBadLayout: bad WithLayout value, surfaced by
//     NewEvaluator.
//
// Complexity: per event, the cost of the selected observables; across
// events, embarrassingly parallel up to the worker limit.
package batch
