// Package chotto generates batches of 5×5 bingo sheets whose columns are
// deliberately diverse: buyers of a print run expect that no two sheets in
// the stack look alike.
//
// 🎯 What is chotto?
//
//	A deterministic, seed-driven combinatorial core that turns five fixed
//	number pools (1–15, 16–30, 31–45, 46–60, 61–75) into print-ready grids:
//		• arrange/    — enumerate every ordered 5-arrangement of a 15-value pool
//		• shufflebag/ — without-replacement draws with reshuffle-on-exhaustion
//		• sampler/    — per-column diversity filter with escalating tolerance
//		• board/      — pools, the 5×5 Grid value type, and the assembler
//		• deck/       — five concurrent column runs joined into one batch
//		• store/      — SQLite ledger of print runs, for bit-exact reprints
//
// ✨ Why choose chotto?
//
//   - Reproducible – every draw flows from one explicit seed; no wall-clock
//     randomness hides inside the core
//   - Diverse by construction – a new column arrangement is accepted only if
//     it matches every previously accepted one in at most `tolerance` cells,
//     and the tolerance relaxes only when a full pass of the universe fails
//   - Terminating – tolerance is bounded by the column height, so generation
//     finishes for any requested batch size, even beyond the universe size
//   - Pure Go – no cgo; the SQLite driver is modernc.org/sqlite
//
// Diversity is enforced per column, not across whole grids: the per-column
// universe (15·14·13·12·11 = 360360 arrangements) keeps realistic batch
// sizes highly distinct at a fraction of the comparison cost. Two sheets can
// in principle still resemble each other when their five columns jointly
// happen to align; this is an accepted limitation, not an oversight.
//
// Quick sketch of one column:
//
//	pools ──▶ arrange.Enumerate ──▶ shufflebag ──▶ sampler ──▶ board.Assemble
//
// The rendering side (fonts, compositing, PNG output) is a downstream
// collaborator: chotto hands it grids of integers and stays out of pixels.
package chotto
