// Package deck orchestrates whole-batch generation: five independent column
// samplers running concurrently, joined and assembled into print-ready grids.
//
// What:
//
//   - Generate(count, opts...) returns count grids built from the standard
//     pools (or custom ones) under one explicit seed.
//   - GenerateBatch additionally exposes the per-column sampler results
//     (final tolerances, escalation and draw counts) for logging and audit.
//   - Options follow the functional style: WithSeed, WithRand, WithPools.
//     The arrangement length is fixed at board.Size; the grid dictates it.
//
// Why:
//
//	Within one column, acceptance of draw i depends on every prior
//	acceptance — inherently sequential. Across columns there is no shared
//	state at all: disjoint pools, disjoint bags, disjoint tolerances. So
//	the batch fans out to exactly five goroutines and joins before
//	assembly, with no locks anywhere.
//
// Determinism:
//
//	Each column's RNG stream is derived from the base seed BEFORE the
//	goroutines start (shufflebag.DeriveRNG with the column index as the
//	stream id), so goroutine scheduling cannot influence the output: same
//	seed and inputs ⇒ identical grids, run after run. Time-based seeding
//	is deliberately the caller's job; the core never touches the clock.
//
// Accepted limitation:
//
//	Diversity is enforced per column only. Two sheets whose five columns
//	each respect the tolerance can in rare cases still look alike as a
//	whole; cross-column similarity is not checked.
//
// Errors:
//
//   - ErrSheetCount: count outside 1..MaxSheets.
//   - Pool/length violations surface the arrange sentinels unchanged.
package deck
