package deck

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/katalvlaran/chotto/arrange"
	"github.com/katalvlaran/chotto/board"
	"github.com/katalvlaran/chotto/sampler"
	"github.com/katalvlaran/chotto/shufflebag"
)

// ErrSheetCount indicates the requested batch size lies outside 1..MaxSheets.
var ErrSheetCount = errors.New("deck: sheet count must be between 1 and MaxSheets")

// Batch is the full outcome of one generation run.
type Batch struct {
	// Grids holds one grid per sheet, index i belonging to sheet i+1.
	Grids []board.Grid
	// Columns holds the per-column sampler results, index matching the
	// column letter order B..O. Accepted sequences are retained so callers
	// can audit diversity after the fact.
	Columns [board.Size]sampler.Result
}

// Generate produces count print-ready grids. See GenerateBatch for the
// variant that also reports per-column sampling statistics.
func Generate(count int, opts ...Option) ([]board.Grid, error) {
	batch, err := GenerateBatch(count, opts...)
	if err != nil {
		return nil, err
	}

	return batch.Grids, nil
}

// GenerateBatch produces count grids plus per-column statistics.
//
// Each column enumerates its universe, samples count diverse arrangements,
// and the five results are assembled into grids. The five columns run as
// independent goroutines: their RNG streams are derived from the base seed
// up front, so scheduling order cannot affect the output.
//
// Returns ErrSheetCount for counts outside 1..MaxSheets; pool violations
// surface the arrange sentinels.
//
// Complexity: O(|universe| · k) enumeration per column plus the sampling
// cost, which for realistic counts is dominated by enumeration.
func GenerateBatch(count int, opts ...Option) (*Batch, error) {
	if count < 1 || count > MaxSheets {
		return nil, ErrSheetCount
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Derive the five column streams before spawning anything: the base RNG
	// advances once per derivation, and that order must not depend on
	// goroutine scheduling.
	base := cfg.rng
	if base == nil {
		base = shufflebag.FromSeed(cfg.seed)
	}
	var rngs [board.Size]*rand.Rand
	for c := range rngs {
		rngs[c] = shufflebag.DeriveRNG(base, uint64(c))
	}

	var (
		columns [board.Size][]arrange.Arrangement
		results [board.Size]sampler.Result
		errs    [board.Size]error
		wg      sync.WaitGroup
	)
	for c := 0; c < board.Size; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			universe, err := arrange.Enumerate(cfg.pools[c], board.Size)
			if err != nil {
				errs[c] = err

				return
			}
			s, err := sampler.New(universe, count, rngs[c])
			if err != nil {
				errs[c] = err

				return
			}
			results[c] = s.Run()
			columns[c] = results[c].Accepted
		}(c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	grids, err := board.Assemble(columns)
	if err != nil {
		return nil, err
	}

	return &Batch{Grids: grids, Columns: results}, nil
}
