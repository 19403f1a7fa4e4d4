package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	// sqlite3 driver registration.
	_ "github.com/mattn/go-sqlite3"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS baselines (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	branch      TEXT NOT NULL,
	suite       TEXT NOT NULL,
	run_id      TEXT NOT NULL DEFAULT '',
	failing     INTEGER NOT NULL DEFAULT 0,
	recorded_at DATETIME NOT NULL,
	snapshot    TEXT NOT NULL,
	promoted_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_baselines_ref ON baselines(branch, suite, id);
`

// SQLiteBaselineStore keeps every promoted snapshot as a row of the
// baselines table; the newest row per branch and suite is the baseline.
type SQLiteBaselineStore struct {
	db *sql.DB
}

// OpenSQLiteBaselineStore opens (and migrates) the database at path.
func OpenSQLiteBaselineStore(path string) (*SQLiteBaselineStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite baseline store: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		slog.Error("failed to migrate sqlite baseline store", "path", path, "error", err)

		return nil, fmt.Errorf("migrate sqlite baseline store: %w", err)
	}

	return &SQLiteBaselineStore{db: db}, nil
}

// Load implements BaselineStore.
func (s *SQLiteBaselineStore) Load(ctx context.Context, ref m.BaselineRef) (m.Baseline, error) {
	var data string

	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM baselines WHERE branch = ? AND suite = ? ORDER BY id DESC LIMIT 1`,
		ref.Branch, ref.Suite,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return m.NoBaseline(ref), nil
	}

	if err != nil {
		return m.Baseline{}, fmt.Errorf("load baseline %s: %w", ref, err)
	}

	snapshot, err := decodeStoredSnapshot(ref, []byte(data))
	if err != nil {
		return m.Baseline{}, err
	}

	return m.Baseline{Ref: ref, Snapshot: &snapshot}, nil
}

// Save implements BaselineStore.
func (s *SQLiteBaselineStore) Save(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error {
	data, err := encodeStoredSnapshot(snapshot)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO baselines (branch, suite, run_id, failing, recorded_at, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ref.Branch, ref.Suite, snapshot.RunID, len(snapshot.Failing()), snapshot.RecordedAt, string(data),
	)
	if err != nil {
		slog.Error("failed to insert baseline", "ref", ref.Key(), "error", err)
		return fmt.Errorf("save baseline %s: %w", ref, err)
	}

	return nil
}

// History implements BaselineStore.
func (s *SQLiteBaselineStore) History(ctx context.Context, ref m.BaselineRef, limit int) ([]m.BaselineRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT snapshot FROM baselines WHERE branch = ? AND suite = ? ORDER BY id DESC LIMIT ?`,
		ref.Branch, ref.Suite, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query baseline history %s: %w", ref, err)
	}
	defer rows.Close()

	records := make([]m.BaselineRecord, 0)

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan baseline history %s: %w", ref, err)
		}

		snapshot, err := decodeStoredSnapshot(ref, []byte(data))
		if err != nil {
			return nil, err
		}

		records = append(records, m.RecordFor(ref, snapshot))
	}

	return records, rows.Err()
}

// Close implements BaselineStore.
func (s *SQLiteBaselineStore) Close() error {
	return s.db.Close()
}
