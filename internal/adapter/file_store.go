package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// FileBaselineStore keeps one JSON document per branch and suite:
//
//	<root>/<branch>/<suite>.json
//	<root>/<branch>/history/<suite>/<unix nanos>.json
//
// Branch and suite names are escaped into single path elements. Saving
// copies the previous baseline into the history directory before the new
// one replaces it, so a failed save leaves the old baseline in place.
type FileBaselineStore struct {
	fs   FSAdapter
	root m.Path
	now  func() time.Time
}

// NewFileBaselineStore creates a store rooted at root.
func NewFileBaselineStore(fs FSAdapter, root m.Path) *FileBaselineStore {
	return &FileBaselineStore{fs: fs, root: root, now: time.Now}
}

func (s *FileBaselineStore) currentPath(ref m.BaselineRef) m.Path {
	return s.fs.JoinPath(string(s.root), storeKeyPart(ref.Branch), storeKeyPart(ref.Suite)+".json")
}

func (s *FileBaselineStore) historyDir(ref m.BaselineRef) m.Path {
	return s.fs.JoinPath(string(s.root), storeKeyPart(ref.Branch), "history", storeKeyPart(ref.Suite))
}

// Load implements BaselineStore.
func (s *FileBaselineStore) Load(ctx context.Context, ref m.BaselineRef) (m.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return m.Baseline{}, err
	}

	snapshot, err := s.read(ref, s.currentPath(ref))
	if err != nil {
		if os.IsNotExist(err) {
			return m.NoBaseline(ref), nil
		}

		return m.Baseline{}, err
	}

	return m.Baseline{Ref: ref, Snapshot: &snapshot}, nil
}

// Save implements BaselineStore.
func (s *FileBaselineStore) Save(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeStoredSnapshot(snapshot)
	if err != nil {
		return err
	}

	current := s.currentPath(ref)

	previous, err := s.fs.ReadFile(current)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read baseline %s: %w", ref, err)
	}

	var rotated m.Path
	if err == nil {
		rotated = s.fs.JoinPath(string(s.historyDir(ref)), fmt.Sprintf("%020d.json", s.now().UnixNano()))
		if err := s.fs.WriteFileAtomic(rotated, previous, 0o644); err != nil {
			slog.Error("failed to rotate baseline", "ref", ref.Key(), "error", err)
			return fmt.Errorf("rotate baseline %s: %w", ref, err)
		}
	}

	if err := s.fs.WriteFileAtomic(current, data, 0o644); err != nil {
		slog.Error("failed to write baseline", "ref", ref.Key(), "error", err)

		if rotated != "" {
			if rmErr := s.fs.Remove(rotated); rmErr != nil {
				slog.Warn("failed to drop rotated copy", "path", rotated, "error", rmErr)
			}
		}

		return fmt.Errorf("write baseline %s: %w", ref, err)
	}

	return nil
}

// History implements BaselineStore. Records are in promotion order.
func (s *FileBaselineStore) History(ctx context.Context, ref m.BaselineRef, limit int) ([]m.BaselineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rotated, err := s.fs.ListFiles(s.historyDir(ref))
	if err != nil {
		return nil, fmt.Errorf("list baseline history %s: %w", ref, err)
	}

	// Rotated names sort oldest first; walk them backwards.
	paths := []m.Path{s.currentPath(ref)}
	for i := len(rotated) - 1; i >= 0; i-- {
		paths = append(paths, rotated[i])
	}

	records := make([]m.BaselineRecord, 0, len(paths))

	for _, path := range paths {
		snapshot, err := s.read(ref, path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, err
		}

		records = append(records, m.RecordFor(ref, snapshot))
	}

	return limitRecords(records, limit), nil
}

// Close implements BaselineStore.
func (s *FileBaselineStore) Close() error {
	return nil
}

func (s *FileBaselineStore) read(ref m.BaselineRef, path m.Path) (m.Snapshot, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Snapshot{}, err
	}

	return decodeStoredSnapshot(ref, data)
}
