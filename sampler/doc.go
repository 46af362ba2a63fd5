// Package sampler draws diverse column arrangements from a precomputed
// universe under an adaptively relaxing similarity tolerance.
//
// What:
//
//   - Sampler is a per-column state machine over {Sampling, Escalating,
//     Done}. In Sampling it draws candidates without replacement from a
//     shufflebag over the universe and accepts one iff it matches every
//     previously accepted arrangement in at most `tolerance` positions.
//   - A run of consecutive rejections as long as the universe proves no
//     acceptable candidate exists at the current tolerance; the machine
//     moves to Escalating, bumps the tolerance by one, resets the bag and
//     resumes Sampling.
//   - Result reports the accepted arrangements in acceptance order plus the
//     tolerance in force at each acceptance, so the pairwise diversity
//     guarantee can be audited after the fact.
//
// Why:
//
//	Print runs of bingo sheets must look meaningfully different from one
//	another. Positional similarity per column is cheap to check (5 cells,
//	not 25) over a universe large enough (360360) to keep realistic batch
//	sizes highly diverse.
//
// Termination:
//
//	Tolerance never decreases and is bounded above by the arrangement
//	length k: at tolerance==k similarity can no longer exceed it, so every
//	candidate is accepted. Generation therefore finishes in at most k+1
//	tolerance rounds, each bounded by one full pass of the universe —
//	for any finite count, including counts beyond the universe size.
//
// A rejected pass is not an error; escalation IS the retry strategy.
//
// Concurrency:
//
//	One Sampler is single-goroutine by design: acceptance of draw i depends
//	on every prior acceptance. Run one Sampler per column; columns share no
//	state and parallelize freely (see package deck).
//
// Errors:
//
//   - ErrEmptyUniverse: the universe holds no arrangements.
//   - ErrNegativeCount: the requested count is negative.
package sampler
