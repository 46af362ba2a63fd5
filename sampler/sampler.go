package sampler

import (
	"math/rand"

	"github.com/katalvlaran/chotto/arrange"
	"github.com/katalvlaran/chotto/shufflebag"
)

// Sampler generates one column's diverse arrangement sequence. Create it
// with New, then either drive it step by step (Step) or to completion (Run).
// Not goroutine-safe; use one Sampler per column.
type Sampler struct {
	bag          *shufflebag.Bag[arrange.Arrangement]
	universeSize int
	target       int

	phase       Phase
	accepted    []arrange.Arrangement
	toleranceAt []int
	tolerance   int
	failed      int
	escalations int
	draws       int
}

// New builds a Sampler over universe that will accept exactly count
// arrangements. The universe slice is referenced, not copied (it is large
// and treated as immutable by contract; see arrange.Enumerate). A nil rng
// falls back to the deterministic default stream.
//
// count==0 is valid and yields an immediately Done machine with an empty
// result. count may exceed len(universe); tolerance escalation then permits
// repeats once the tolerance reaches the arrangement length.
//
// Returns ErrEmptyUniverse or ErrNegativeCount.
func New(universe []arrange.Arrangement, count int, rng *rand.Rand) (*Sampler, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}
	bag, err := shufflebag.New(universe, rng)
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		bag:          bag,
		universeSize: len(universe),
		target:       count,
		phase:        Sampling,
		accepted:     make([]arrange.Arrangement, 0, count),
		toleranceAt:  make([]int, 0, count),
	}
	if count == 0 {
		s.phase = Done
	}

	return s, nil
}

// Phase returns the machine's current state.
func (s *Sampler) Phase() Phase {
	return s.phase
}

// Tolerance returns the similarity threshold currently in force.
func (s *Sampler) Tolerance() int {
	return s.tolerance
}

// Accepted returns how many arrangements have been accepted so far.
func (s *Sampler) Accepted() int {
	return len(s.accepted)
}

// Step advances the machine by one transition and returns the new phase.
//
// In Sampling it draws one candidate and either accepts it or records the
// failure; a streak of failures covering the whole universe moves the
// machine to Escalating. In Escalating it bumps the tolerance, clears the
// failure streak, resets the bag, and returns to Sampling. In Done it is a
// no-op.
//
// Complexity: one Sampling step costs O(|accepted| · k); one Escalating
// step costs O(|universe|) for the bag reset.
func (s *Sampler) Step() Phase {
	switch s.phase {
	case Done:
		return Done

	case Escalating:
		s.tolerance++
		s.escalations++
		s.failed = 0
		s.bag.Reset()
		s.phase = Sampling

		return s.phase

	default: // Sampling
		candidate := s.bag.Next()
		s.draws++

		if s.maxSimilarity(candidate) <= s.tolerance {
			s.accepted = append(s.accepted, candidate)
			s.toleranceAt = append(s.toleranceAt, s.tolerance)
			s.failed = 0
			if len(s.accepted) == s.target {
				s.phase = Done
			}

			return s.phase
		}

		s.failed++
		if s.failed >= s.universeSize {
			// An entire pass yielded nothing acceptable: no candidate can
			// succeed at this tolerance, so relaxing it is the only move.
			s.phase = Escalating
		}

		return s.phase
	}
}

// Run drives the machine until Done and returns the result.
// Termination is guaranteed: the tolerance is bounded by the arrangement
// length, and at that bound every candidate is accepted.
func (s *Sampler) Run() Result {
	for s.phase != Done {
		s.Step()
	}

	return Result{
		Accepted:       s.accepted,
		ToleranceAt:    s.toleranceAt,
		FinalTolerance: s.tolerance,
		Escalations:    s.escalations,
		Draws:          s.draws,
	}
}

// maxSimilarity returns the highest positional similarity between candidate
// and any accepted arrangement, or 0 when nothing has been accepted yet
// (the first candidate is always acceptable).
func (s *Sampler) maxSimilarity(candidate arrange.Arrangement) int {
	best := 0
	for _, a := range s.accepted {
		if sim := arrange.Similarity(candidate, a); sim > best {
			best = sim
		}
	}

	return best
}
