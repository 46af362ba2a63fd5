package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/chotto/board"
	_ "modernc.org/sqlite" // register the pure-Go sqlite driver
)

// ErrRunNotFound indicates no run exists under the requested id.
var ErrRunNotFound = errors.New("store: print run not found")

// Run is one recorded print run: the parameters that reproduce it plus the
// grids it produced.
type Run struct {
	ID         int64
	Seed       int64
	SheetCount int
	CreatedAt  time.Time
	Grids      []board.Grid
}

// Summary is a run without its grids, for listings.
type Summary struct {
	ID         int64
	Seed       int64
	SheetCount int
	CreatedAt  time.Time
}

// Store persists print runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS print_runs (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  seed        INTEGER NOT NULL,
  sheet_count INTEGER NOT NULL,
  created_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS print_sheets (
  run_id      INTEGER NOT NULL REFERENCES print_runs(id) ON DELETE CASCADE,
  sheet_index INTEGER NOT NULL,
  grid        TEXT    NOT NULL,
  PRIMARY KEY (run_id, sheet_index)
);`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) a SQLite ledger at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store: ledger path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// SaveRun inserts a run and its sheets in one transaction and returns the
// assigned run id. A zero CreatedAt defaults to the current time.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("store: ledger is not configured")
	}
	if run.SheetCount != len(run.Grids) {
		return 0, fmt.Errorf("store: sheet count %d disagrees with %d grids", run.SheetCount, len(run.Grids))
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO print_runs (seed, sheet_count, created_at) VALUES (?, ?, ?)`,
		run.Seed,
		run.SheetCount,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for i, grid := range run.Grids {
		encoded, err := json.Marshal(grid)
		if err != nil {
			return 0, fmt.Errorf("encode sheet %d: %w", i+1, err)
		}
		// Sheet numbering is 1-based and stable: sheet i of the batch is
		// row sheet_index=i+1, matching the output artifact names.
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO print_sheets (run_id, sheet_index, grid) VALUES (?, ?, ?)`,
			runID,
			i+1,
			string(encoded),
		); err != nil {
			return 0, fmt.Errorf("insert sheet %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return runID, nil
}

// GetRun loads one run with its grids in sheet order.
// Returns ErrRunNotFound for unknown ids.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Run{}, fmt.Errorf("store: ledger is not configured")
	}

	var (
		run       Run
		createdAt int64
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, seed, sheet_count, created_at FROM print_runs WHERE id = ?`,
		id,
	).Scan(&run.ID, &run.Seed, &run.SheetCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("select run: %w", err)
	}
	run.CreatedAt = fromMillis(createdAt)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT grid FROM print_sheets WHERE run_id = ? ORDER BY sheet_index`,
		id,
	)
	if err != nil {
		return Run{}, fmt.Errorf("select sheets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	run.Grids = make([]board.Grid, 0, run.SheetCount)
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return Run{}, fmt.Errorf("scan sheet: %w", err)
		}
		var grid board.Grid
		if err := json.Unmarshal([]byte(encoded), &grid); err != nil {
			return Run{}, fmt.Errorf("decode sheet: %w", err)
		}
		run.Grids = append(run.Grids, grid)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate sheets: %w", err)
	}

	return run, nil
}

// ListRuns returns up to limit run summaries, newest first. A non-positive
// limit defaults to 50.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("store: ledger is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, seed, sheet_count, created_at
		   FROM print_runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []Summary
	for rows.Next() {
		var (
			sum       Summary
			createdAt int64
		)
		if err := rows.Scan(&sum.ID, &sum.Seed, &sum.SheetCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		sum.CreatedAt = fromMillis(createdAt)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return summaries, nil
}
