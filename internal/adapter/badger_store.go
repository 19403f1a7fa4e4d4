package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// BadgerBaselineStore keeps baselines in a badger key/value store:
//
//	baseline/<branch>/<suite>              current baseline
//	history/<branch>/<suite>/<unix nanos>  every promoted snapshot
type BadgerBaselineStore struct {
	db  *badger.DB
	now func() time.Time
}

// badgerLogger adapts slog.Logger to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadgerBaselineStore opens the store at cfg.Path, or in memory when
// cfg.InMemory is set.
func OpenBadgerBaselineStore(cfg StoreConfig) (*BadgerBaselineStore, error) {
	var opts badger.Options

	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("badger baseline store needs a path")
		}

		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}

		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("failed to open badger baseline store", "path", cfg.Path, "error", err)
		return nil, fmt.Errorf("open badger baseline store: %w", err)
	}

	return &BadgerBaselineStore{db: db, now: time.Now}, nil
}

func badgerRefKey(ref m.BaselineRef) string {
	return storeKeyPart(ref.Branch) + "/" + storeKeyPart(ref.Suite)
}

func badgerCurrentKey(ref m.BaselineRef) []byte {
	return []byte("baseline/" + badgerRefKey(ref))
}

func badgerHistoryPrefix(ref m.BaselineRef) []byte {
	return []byte("history/" + badgerRefKey(ref) + "/")
}

// Load implements BaselineStore.
func (s *BadgerBaselineStore) Load(ctx context.Context, ref m.BaselineRef) (m.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return m.Baseline{}, err
	}

	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerCurrentKey(ref))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return m.NoBaseline(ref), nil
	}

	if err != nil {
		return m.Baseline{}, fmt.Errorf("load baseline %s: %w", ref, err)
	}

	snapshot, err := decodeStoredSnapshot(ref, data)
	if err != nil {
		return m.Baseline{}, err
	}

	return m.Baseline{Ref: ref, Snapshot: &snapshot}, nil
}

// Save implements BaselineStore. The baseline and its history entry are
// written in one transaction.
func (s *BadgerBaselineStore) Save(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeStoredSnapshot(snapshot)
	if err != nil {
		return err
	}

	historyKey := append(badgerHistoryPrefix(ref), []byte(fmt.Sprintf("%020d", s.now().UnixNano()))...)

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(badgerCurrentKey(ref), data); err != nil {
			return err
		}

		return txn.Set(historyKey, data)
	})
	if err != nil {
		slog.Error("failed to save baseline", "ref", ref.Key(), "error", err)
		return fmt.Errorf("save baseline %s: %w", ref, err)
	}

	return nil
}

// History implements BaselineStore.
func (s *BadgerBaselineStore) History(ctx context.Context, ref m.BaselineRef, limit int) ([]m.BaselineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := badgerHistoryPrefix(ref)
	records := make([]m.BaselineRecord, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(append(append([]byte{}, prefix...), 0xff)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}

			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			snapshot, err := decodeStoredSnapshot(ref, data)
			if err != nil {
				return err
			}

			records = append(records, m.RecordFor(ref, snapshot))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read baseline history %s: %w", ref, err)
	}

	return records, nil
}

// Close implements BaselineStore.
func (s *BadgerBaselineStore) Close() error {
	return s.db.Close()
}
