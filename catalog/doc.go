// Package catalog is the closed registry of every observable this library
// computes: a fixed name → descriptor table mapping each observable to its
// category, IRC-safety flag, cost class, input dependencies and compute
// function.
//
// What:
//
//   - Descriptor — one entry: metadata plus exactly one of a scalar
//     (single-jet) or pair (two-jet) compute function.
//   - Names, All, Lookup — enumeration and lookup over the fixed table.
//   - Evaluate, EvaluatePair — compute one named observable with
//     arity checking.
//   - EvaluateAll — the full scalar name → value map for one jet, the
//     per-jet output contract of the library.
//
// Contracts:
//
//   - The table is built once at process start and never mutated: lookups
//     and evaluations are read-only and safe for concurrent use.
//   - Names are unique, lowercase snake_case; Names() returns them sorted
//     so downstream consumers get a stable column order.
//   - Every compute function inherits the degenerate-state guarantees of
//     its home package: empty and degenerate jets evaluate to 0.0
//     sentinels, never NaN or ±Inf.
//   - Evaluation never errors on jet CONTENT — only on registry misuse
//     (unknown name, wrong arity).
//
// Errors:
//
//   - ErrUnknownObservable: no entry under the requested name.
//   - ErrPairObservable: Evaluate called on the pair entry.
//   - ErrScalarObservable: EvaluatePair called on a scalar entry.
//
// Complexity: lookups are O(1); evaluation cost is the entry's own
// Complexity class, and EvaluateAll is dominated by the cubic correlation
// entries.
package catalog
