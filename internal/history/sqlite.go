// Package history persists benchmark runs so that past results can be
// listed and compared later.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"hyperbench/internal/benchmark"
)

// Store is the persistence interface for benchmark runs.
type Store interface {
	Save(run benchmark.Run) error
	LoadLatest() (*benchmark.Run, error)
	LoadAll() ([]benchmark.Run, error)
	Close() error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		commit_hash TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		command TEXT NOT NULL,
		mean REAL NOT NULL,
		stddev REAL NOT NULL,
		median REAL NOT NULL,
		user_time REAL NOT NULL,
		system_time REAL NOT NULL,
		min REAL NOT NULL,
		max REAL NOT NULL,
		times TEXT NOT NULL DEFAULT '[]',
		parameter TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores a run and all of its results in one transaction.
func (s *SQLiteStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO runs (timestamp, commit_hash) VALUES (?, ?)",
		run.Timestamp, run.Commit)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, r := range run.Results {
		times, err := json.Marshal(r.Times)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO results
			(run_id, command, mean, stddev, median, user_time, system_time, min, max, times, parameter)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Command, r.Mean, r.Stddev, r.Median, r.User, r.System, r.Min, r.Max, string(times), r.Parameter)
		if err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
	}

	return tx.Commit()
}

// LoadAll returns every stored run, oldest first.
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	rows, err := s.db.Query("SELECT id, timestamp, commit_hash FROM runs ORDER BY timestamp, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []benchmark.Run
	var ids []int64
	for rows.Next() {
		var id int64
		var run benchmark.Run
		if err := rows.Scan(&id, &run.Timestamp, &run.Commit); err != nil {
			return nil, err
		}
		runs = append(runs, run)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		results, err := s.loadResults(id)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

// LoadLatest returns the most recent run, or nil if none is stored.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	row := s.db.QueryRow("SELECT id, timestamp, commit_hash FROM runs ORDER BY timestamp DESC, id DESC LIMIT 1")

	var id int64
	var run benchmark.Run
	if err := row.Scan(&id, &run.Timestamp, &run.Commit); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	results, err := s.loadResults(id)
	if err != nil {
		return nil, err
	}
	run.Results = results
	return &run, nil
}

func (s *SQLiteStore) loadResults(runID int64) ([]benchmark.Result, error) {
	rows, err := s.db.Query(`SELECT command, mean, stddev, median, user_time, system_time, min, max, times, parameter
		FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []benchmark.Result
	for rows.Next() {
		var r benchmark.Result
		var times string
		if err := rows.Scan(&r.Command, &r.Mean, &r.Stddev, &r.Median, &r.User, &r.System, &r.Min, &r.Max, &times, &r.Parameter); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(times), &r.Times); err != nil {
			return nil, fmt.Errorf("corrupt times column: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
