package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/readcircle/digest/pkg/digest/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite archive with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	parsed INTEGER NOT NULL,
	skipped INTEGER NOT NULL,
	bullets INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_records (
	run_id TEXT NOT NULL,
	summary_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	date_label TEXT,
	tags TEXT,
	section_count INTEGER NOT NULL,
	PRIMARY KEY(run_id, summary_id),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// RecordRun stores a run and its records in one transaction.
func (s *sqliteStore) RecordRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, started_at, parsed, skipped, bullets) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339), r.Parsed, r.Skipped, r.Bullets)
	if err != nil {
		return err
	}

	for _, rec := range r.Records {
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO run_records (run_id, summary_id, title, date_label, tags, section_count) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, rec.SummaryID, rec.Title, rec.DateLabel, strings.Join(rec.Tags, ","), rec.SectionCount)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun loads one run by id.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var r store.Run
	var startedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, parsed, skipped, bullets FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &startedAt, &r.Parsed, &r.Skipped, &r.Bullets)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	if t, perr := time.Parse(time.RFC3339, startedAt); perr == nil {
		r.StartedAt = t
	}

	records, err := s.loadRecords(ctx, id)
	if err != nil {
		return store.Run{}, false, err
	}
	r.Records = records
	return r, true, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, parsed, skipped, bullets FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.Parsed, &r.Skipped, &r.Bullets); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, startedAt); perr == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		records, err := s.loadRecords(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Records = records
	}
	return runs, nil
}

func (s *sqliteStore) loadRecords(ctx context.Context, runID string) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT summary_id, title, date_label, tags, section_count FROM run_records WHERE run_id = ? ORDER BY summary_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		var rec store.Record
		var tags string
		if err := rows.Scan(&rec.SummaryID, &rec.Title, &rec.DateLabel, &tags, &rec.SectionCount); err != nil {
			return nil, err
		}
		if tags != "" {
			rec.Tags = strings.Split(tags, ",")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
