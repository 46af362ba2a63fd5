// Package shufflebag provides a without-replacement random sampler over a
// fixed collection, plus the deterministic RNG helpers the rest of chotto
// builds on.
//
// What:
//
//   - Bag[T] hands out the items of a collection one by one in a shuffled
//     order; when the collection is exhausted it reshuffles and starts a
//     fresh pass, so Next never runs dry.
//   - Reset forces the fresh pass early (the sampler does this when it
//     relaxes its tolerance).
//   - FromSeed / DeriveSeed / DeriveRNG centralize seeding so that no
//     time-based randomness can hide inside the core.
//
// Why:
//
//   - Drawing without replacement guarantees every universe member is seen
//     exactly once per pass: a full failed pass is therefore proof that no
//     acceptable candidate exists at the current tolerance.
//   - Derived seed streams give the five column generators independent,
//     reproducible randomness regardless of goroutine scheduling.
//
// Concurrency:
//
//   - A Bag and its *rand.Rand are NOT goroutine-safe. Give each worker its
//     own Bag built from DeriveRNG.
//
// Complexity:
//
//   - Next: O(1) amortized; a reshuffle pass costs O(n) every n draws.
//   - Reset: O(n).
//
// Errors:
//
//   - ErrEmptyBag: the collection holds no items.
package shufflebag
