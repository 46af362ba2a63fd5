package cli

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/chotto/board"
	"github.com/katalvlaran/chotto/deck"
	"github.com/katalvlaran/chotto/store"
)

// sheetArtifact is the JSON document written per sheet. The seed and index
// travel with every sheet so any single file identifies its run.
type sheetArtifact struct {
	Sheet int        `json:"sheet"`
	Seed  int64      `json:"seed"`
	Grid  board.Grid `json:"grid"`
}

// Run generates the batch described by cfg and writes its artifacts.
func Run(ctx context.Context, cfg Config) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chotto",
	})

	seed := cfg.Seed
	if seed == 0 {
		fresh, err := randomSeed()
		if err != nil {
			return fmt.Errorf("draw seed: %w", err)
		}
		seed = fresh
	}
	logger.Info("generating batch", "sheets", cfg.Sheets, "seed", seed)

	started := time.Now()
	batch, err := deck.GenerateBatch(cfg.Sheets, deck.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("generate batch: %w", err)
	}
	for c, res := range batch.Columns {
		logger.Debug("column done",
			"column", string(board.Letters[c]),
			"tolerance", res.FinalTolerance,
			"escalations", res.Escalations,
			"draws", res.Draws)
	}
	logger.Info("batch ready", "elapsed", time.Since(started).Round(time.Millisecond))

	if err := writeSheets(ctx, cfg.OutputDir, seed, batch.Grids); err != nil {
		return err
	}
	logger.Info("artifacts written", "dir", cfg.OutputDir, "count", len(batch.Grids))

	if cfg.LedgerPath != "" {
		runID, err := recordRun(ctx, cfg.LedgerPath, seed, batch.Grids)
		if err != nil {
			return err
		}
		logger.Info("run recorded", "ledger", cfg.LedgerPath, "run", runID)
	}

	if cfg.Preview {
		fmt.Println(renderGrid(batch.Grids[0]))
	}

	return nil
}

// writeSheets writes one JSON artifact per sheet, named sheet_%04d.json
// with stable 1-based numbering: artifact i always belongs to grid i.
func writeSheets(ctx context.Context, dir string, seed int64, grids []board.Grid) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for i, grid := range grids {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc := sheetArtifact{Sheet: i + 1, Seed: seed, Grid: grid}
		encoded, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode sheet %d: %w", i+1, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("sheet_%04d.json", i+1))
		if err := os.WriteFile(name, encoded, 0o644); err != nil {
			return fmt.Errorf("write sheet %d: %w", i+1, err)
		}
	}

	return nil
}

// recordRun appends the batch to the SQLite ledger.
func recordRun(ctx context.Context, path string, seed int64, grids []board.Grid) (int64, error) {
	ledger, err := store.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open ledger: %w", err)
	}
	defer func() { _ = ledger.Close() }()

	runID, err := ledger.SaveRun(ctx, store.Run{
		Seed:       seed,
		SheetCount: len(grids),
		Grids:      grids,
	})
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	return runID, nil
}

// randomSeed draws a non-zero seed from crypto/rand; zero would alias the
// fixed default stream and silently de-randomize the batch.
func randomSeed() (int64, error) {
	for {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		seed := int64(binary.LittleEndian.Uint64(b[:]))
		if seed != 0 {
			return seed, nil
		}
	}
}
