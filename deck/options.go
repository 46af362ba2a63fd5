// Package: chotto/deck
//
// options.go — functional options for batch generation.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics, it returns sentinel errors.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand.
//   - No hidden globals; everything flows through the config value.
package deck

import (
	"math/rand"

	"github.com/katalvlaran/chotto/board"
)

// MaxSheets bounds one print run. Tolerance escalation would terminate for
// any finite count, but a print shop has no use for a bigger stack, and the
// bound keeps accidental fat-finger requests from burning minutes of CPU.
const MaxSheets = 10000

// Option customizes batch generation by mutating the config before any
// enumeration or sampling starts.
type Option func(*config)

// config carries the resolved generation parameters. The arrangement
// length is always board.Size: the grid dictates k, not the caller.
type config struct {
	seed  int64
	rng   *rand.Rand
	pools [board.Size]board.Pool
}

// defaultConfig returns the production setup: standard pools and seed 0
// (the fixed default stream).
func defaultConfig() config {
	return config{
		pools: board.StandardPools(),
	}
}

// WithSeed sets the base seed all five column streams derive from.
// Seed 0 selects the fixed default stream (see shufflebag.FromSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand provides an explicit base RNG instead of a seed. Panics on nil
// to surface the programmer error at the call site. Prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("deck: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithPools replaces the standard pools, one per column. Pool contents are
// validated by arrange.Enumerate when generation starts (distinct values,
// size ≥ the grid height). Smaller pools shrink the universe and make
// escalation easier to provoke, which is exactly what tests want.
func WithPools(pools [board.Size]board.Pool) Option {
	return func(c *config) {
		c.pools = pools
	}
}
