// Package storage provides SQLite-based persistence for solve runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/reindeer/gridgraph"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single recorded solve.
type Run struct {
	ID       int64
	GridHash string
	Name     string
	MoveCost int64
	TurnCost int64
	Heading  string
	Found    bool
	Cost     int64
	Tiles    int
	// CreatedAt is set by the database on insert.
	CreatedAt time.Time
}

// HashGrid fingerprints a grid by its text form. Start, End and walls all
// contribute; the initial heading is stored separately on each Run.
func HashGrid(g *gridgraph.Grid) string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grid_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			move_cost INTEGER NOT NULL,
			turn_cost INTEGER NOT NULL,
			heading TEXT NOT NULL,
			found INTEGER NOT NULL,
			cost INTEGER NOT NULL DEFAULT 0,
			tiles INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_lookup ON runs(grid_hash, move_cost, turn_cost, heading);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a solve. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (grid_hash, name, move_cost, turn_cost, heading, found, cost, tiles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GridHash, r.Name, r.MoveCost, r.TurnCost, r.Heading, r.Found, r.Cost, r.Tiles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Lookup returns the most recent run for the same grid and parameters.
// ok is false when nothing matches.
func (s *Store) Lookup(gridHash string, moveCost, turnCost int64, heading string) (Run, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, grid_hash, name, move_cost, turn_cost, heading, found, cost, tiles, created_at
		 FROM runs
		 WHERE grid_hash = ? AND move_cost = ? AND turn_cost = ? AND heading = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		gridHash, moveCost, turnCost, heading,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("storage: cannot look up run: %w", err)
	}

	return r, true, nil
}

// Recent retrieves the latest runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, grid_hash, name, move_cost, turn_cost, heading, found, cost, tiles, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	if err := sc.Scan(&r.ID, &r.GridHash, &r.Name, &r.MoveCost, &r.TurnCost, &r.Heading,
		&r.Found, &r.Cost, &r.Tiles, &createdAt); err != nil {
		return Run{}, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}
