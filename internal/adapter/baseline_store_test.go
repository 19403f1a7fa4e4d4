package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

func storedSnapshot(suite, runID string, recordedAt time.Time, failing ...m.TestID) m.Snapshot {
	snapshot := m.Snapshot{Suite: suite, RunID: runID, RecordedAt: recordedAt, Outcomes: []m.Outcome{}}
	for _, id := range failing {
		snapshot.Outcomes = append(snapshot.Outcomes, m.Outcome{ID: id, Status: m.StatusFailed})
	}

	counters := m.CountersFromOutcomes(snapshot.Outcomes)
	snapshot.Counters = &counters

	return snapshot
}

// storeFactories opens every backend against a fresh location.
func storeFactories() map[string]func(t *testing.T) BaselineStore {
	return map[string]func(t *testing.T) BaselineStore{
		BackendFile: func(t *testing.T) BaselineStore {
			store := NewFileBaselineStore(NewLocalFSAdapter(), m.Path(t.TempDir()))
			tick := int64(0)
			store.now = func() time.Time { tick++; return time.Unix(0, tick) }

			return store
		},
		BackendSQLite: func(t *testing.T) BaselineStore {
			store, err := OpenSQLiteBaselineStore(filepath.Join(t.TempDir(), "db", "baselines.db"))
			require.NoError(t, err)

			return store
		},
		BackendBadger: func(t *testing.T) BaselineStore {
			store, err := OpenBadgerBaselineStore(StoreConfig{InMemory: true})
			require.NoError(t, err)

			tick := int64(0)
			store.now = func() time.Time { tick++; return time.Unix(0, tick) }

			return store
		},
	}
}

func TestBaselineStores(t *testing.T) {
	gnu := m.BaselineRef{Branch: "main", Suite: "gnu"}
	bfs := m.BaselineRef{Branch: "main", Suite: "bfs"}
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			defer func() { require.NoError(t, store.Close()) }()

			baseline, err := store.Load(ctx, gnu)
			require.NoError(t, err)
			assert.False(t, baseline.Available())
			assert.Equal(t, gnu, baseline.Ref)

			history, err := store.History(ctx, gnu, 0)
			require.NoError(t, err)
			assert.Empty(t, history)

			require.NoError(t, store.Save(ctx, gnu, storedSnapshot("gnu", "run-1", first, "t1", "t2")))
			require.NoError(t, store.Save(ctx, gnu, storedSnapshot("gnu", "run-2", second, "t2")))
			require.NoError(t, store.Save(ctx, bfs, storedSnapshot("bfs", "run-b", first)))

			baseline, err = store.Load(ctx, gnu)
			require.NoError(t, err)
			require.True(t, baseline.Available())
			assert.Equal(t, storedSnapshot("gnu", "run-2", second, "t2"), *baseline.Snapshot)

			history, err = store.History(ctx, gnu, 0)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, "run-2", history[0].RunID)
			assert.Equal(t, 1, history[0].Failing)
			assert.Equal(t, "run-1", history[1].RunID)
			assert.Equal(t, 2, history[1].Failing)
			assert.Equal(t, first, history[1].RecordedAt.UTC())

			limited, err := store.History(ctx, gnu, 1)
			require.NoError(t, err)
			require.Len(t, limited, 1)
			assert.Equal(t, "run-2", limited[0].RunID)

			other, err := store.Load(ctx, bfs)
			require.NoError(t, err)
			require.True(t, other.Available())
			assert.Equal(t, "run-b", other.Snapshot.RunID)
			assert.Empty(t, other.Snapshot.Failing())
		})
	}
}

func TestFileBaselineStore_Layout(t *testing.T) {
	root := t.TempDir()
	store := NewFileBaselineStore(NewLocalFSAdapter(), m.Path(root))
	store.now = func() time.Time { return time.Unix(0, 42) }
	ref := m.BaselineRef{Branch: "main", Suite: "gnu"}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, ref, storedSnapshot("gnu", "run-1", time.Time{})))
	require.NoError(t, store.Save(ctx, ref, storedSnapshot("gnu", "run-2", time.Time{})))

	fs := NewLocalFSAdapter()
	_, err := fs.FileInfo(m.Path(filepath.Join(root, "main", "gnu.json")))
	require.NoError(t, err)

	rotated, err := fs.ListFiles(m.Path(filepath.Join(root, "main", "history", "gnu")))
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "main", "history", "gnu", "00000000000000000042.json"))}, rotated)
}

func TestBaselineStores_RefsWithSlashesDoNotCollide(t *testing.T) {
	refs := []m.BaselineRef{
		{Branch: "a", Suite: "gnu"},
		{Branch: "a/gnu", Suite: "bfs"},
		{Branch: "a", Suite: "gnu/bfs"},
		{Branch: "..", Suite: "gnu"},
		{Branch: "a%2Fgnu", Suite: "bfs"},
	}

	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			defer func() { require.NoError(t, store.Close()) }()

			for _, ref := range refs {
				require.NoError(t, store.Save(ctx, ref, storedSnapshot(ref.Suite, ref.Key(), time.Time{})))
			}

			for _, ref := range refs {
				baseline, err := store.Load(ctx, ref)
				require.NoError(t, err)
				require.True(t, baseline.Available(), ref.Key())
				assert.Equal(t, ref.Key(), baseline.Snapshot.RunID)

				history, err := store.History(ctx, ref, 0)
				require.NoError(t, err)
				require.Len(t, history, 1, ref.Key())
				assert.Equal(t, ref.Key(), history[0].RunID)
			}
		})
	}
}

func TestFileBaselineStore_EscapesBranchIntoOneDirectory(t *testing.T) {
	root := t.TempDir()
	store := NewFileBaselineStore(NewLocalFSAdapter(), m.Path(root))
	ref := m.BaselineRef{Branch: "release/4.10", Suite: "gnu"}

	require.NoError(t, store.Save(context.Background(), ref, storedSnapshot("gnu", "run-1", time.Time{})))

	_, err := NewLocalFSAdapter().FileInfo(m.Path(filepath.Join(root, "release%2F4.10", "gnu.json")))
	require.NoError(t, err)
}

// failingWriteFS fails every atomic write to one path.
type failingWriteFS struct {
	*LocalFSAdapter
	failPath m.Path
}

func (f *failingWriteFS) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	if path == f.failPath {
		return errors.New("disk full")
	}

	return f.LocalFSAdapter.WriteFileAtomic(path, content, perm)
}

func TestFileBaselineStore_FailedSaveKeepsPreviousBaseline(t *testing.T) {
	root := t.TempDir()
	ref := m.BaselineRef{Branch: "main", Suite: "gnu"}
	ctx := context.Background()

	healthy := NewFileBaselineStore(NewLocalFSAdapter(), m.Path(root))
	require.NoError(t, healthy.Save(ctx, ref, storedSnapshot("gnu", "run-1", time.Time{}, "t1")))

	failing := NewFileBaselineStore(&failingWriteFS{
		LocalFSAdapter: NewLocalFSAdapter(),
		failPath:       m.Path(filepath.Join(root, "main", "gnu.json")),
	}, m.Path(root))

	err := failing.Save(ctx, ref, storedSnapshot("gnu", "run-2", time.Time{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	baseline, err := healthy.Load(ctx, ref)
	require.NoError(t, err)
	require.True(t, baseline.Available())
	assert.Equal(t, "run-1", baseline.Snapshot.RunID)

	history, err := healthy.History(ctx, ref, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "run-1", history[0].RunID)

	rotated, err := NewLocalFSAdapter().ListFiles(m.Path(filepath.Join(root, "main", "history", "gnu")))
	require.NoError(t, err)
	assert.Empty(t, rotated)
}

func TestFileBaselineStore_CorruptBaselineIsDataError(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main", "gnu.json"), "{")

	store := NewFileBaselineStore(NewLocalFSAdapter(), m.Path(root))

	_, err := store.Load(context.Background(), m.BaselineRef{Branch: "main", Suite: "gnu"})
	require.ErrorIs(t, err, m.ErrDataError)
}

func TestOpenBaselineStore(t *testing.T) {
	dir := t.TempDir()

	file, err := OpenBaselineStore(StoreConfig{Path: dir})
	require.NoError(t, err)
	assert.IsType(t, &FileBaselineStore{}, file)

	sqlite, err := OpenBaselineStore(StoreConfig{Backend: "SQLite", Path: filepath.Join(dir, "b.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBaselineStore{}, sqlite)
	require.NoError(t, sqlite.Close())

	badgerStore, err := OpenBaselineStore(StoreConfig{Backend: BackendBadger, Path: filepath.Join(dir, "kv")})
	require.NoError(t, err)
	assert.IsType(t, &BadgerBaselineStore{}, badgerStore)
	require.NoError(t, badgerStore.Close())

	_, err = OpenBaselineStore(StoreConfig{Backend: "gcs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown baseline backend "gcs"`)
}
