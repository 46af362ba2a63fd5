// Package sampler defines phases, results, and sentinel errors for the
// sampler subpackage of github.com/katalvlaran/chotto.
package sampler

import (
	"errors"

	"github.com/katalvlaran/chotto/arrange"
)

// Sentinel errors for sampler construction.
var (
	// ErrEmptyUniverse indicates the candidate universe holds no arrangements.
	ErrEmptyUniverse = errors.New("sampler: universe must contain at least one arrangement")
	// ErrNegativeCount indicates a negative requested count.
	ErrNegativeCount = errors.New("sampler: count must be non-negative")
)

// Phase names one state of the per-column generation machine.
//
//   - Sampling   — drawing candidates from the bag and filtering by the
//     current tolerance.
//   - Escalating — a full pass produced no acceptable candidate; the next
//     step relaxes the tolerance by one and resets the bag.
//   - Done       — the accepted list reached the requested count.
type Phase int

const (
	// Sampling is the drawing-and-filtering state.
	Sampling Phase = iota
	// Escalating is the tolerance-relaxation state.
	Escalating
	// Done is the terminal state.
	Done
)

// String returns the phase name for logs and test output.
func (p Phase) String() string {
	switch p {
	case Sampling:
		return "Sampling"
	case Escalating:
		return "Escalating"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one column's generation run.
type Result struct {
	// Accepted holds exactly the requested number of arrangements, in
	// acceptance order; the i-th entry belongs to the i-th generated sheet.
	Accepted []arrange.Arrangement

	// ToleranceAt[i] is the tolerance in force when Accepted[i] was taken.
	// For any pair (i, j): Similarity(Accepted[i], Accepted[j]) ≤
	// max(ToleranceAt[i], ToleranceAt[j]).
	ToleranceAt []int

	// FinalTolerance is the tolerance at completion (0 if it never moved).
	FinalTolerance int

	// Escalations counts tolerance increments during the run.
	Escalations int

	// Draws counts every candidate pulled from the bag, accepted or not.
	Draws int
}
