package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// Baseline store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// DefaultStorePath is where baselines live when nothing is configured.
const DefaultStorePath = ".suitegate/baselines"

// BaselineStore persists the reference snapshot per branch and suite. Load
// returns a Baseline with a nil snapshot, not an error, when nothing has
// been recorded for the ref.
type BaselineStore interface {
	Load(ctx context.Context, ref m.BaselineRef) (m.Baseline, error)
	// Save records snapshot as the new baseline for ref. Previous baselines
	// stay available through History.
	Save(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error
	// History lists promoted baselines, newest first. A limit <= 0 means
	// no limit.
	History(ctx context.Context, ref m.BaselineRef, limit int) ([]m.BaselineRecord, error)
	Close() error
}

// StoreConfig selects and configures a BaselineStore backend.
type StoreConfig struct {
	Backend string
	// Path is a directory for file and badger, a database file for sqlite.
	Path string
	// InMemory opens badger without touching disk.
	InMemory bool
	Logger   *slog.Logger
}

// OpenBaselineStore opens the backend named by cfg.Backend.
func OpenBaselineStore(cfg StoreConfig) (BaselineStore, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendFile
	}

	if cfg.Path == "" && !cfg.InMemory {
		cfg.Path = DefaultStorePath
	}

	switch backend {
	case BackendFile:
		return NewFileBaselineStore(NewLocalFSAdapter(), m.Path(cfg.Path)), nil
	case BackendSQLite:
		return OpenSQLiteBaselineStore(cfg.Path)
	case BackendBadger:
		return OpenBadgerBaselineStore(cfg)
	default:
		return nil, fmt.Errorf("unknown baseline backend %q (known: %s, %s, %s)", cfg.Backend, BackendFile, BackendSQLite, BackendBadger)
	}
}

func encodeStoredSnapshot(snapshot m.Snapshot) ([]byte, error) {
	if snapshot.Outcomes == nil {
		snapshot.Outcomes = []m.Outcome{}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode baseline: %w", err)
	}

	return data, nil
}

func decodeStoredSnapshot(ref m.BaselineRef, data []byte) (m.Snapshot, error) {
	var snapshot m.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return m.Snapshot{}, m.NewDataError(ref.Suite, fmt.Errorf("decode stored baseline %s: %w", ref, err))
	}

	return snapshot, nil
}

// storeKeyPart escapes a branch or suite name into a single key segment or
// path element. Distinct names never map to the same segment.
func storeKeyPart(name string) string {
	if name == "." || name == ".." {
		return strings.ReplaceAll(name, ".", "%2E")
	}

	return url.PathEscape(name)
}

func limitRecords(records []m.BaselineRecord, limit int) []m.BaselineRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}

	return records
}
