// Package adapter contains the infrastructure adapters for suitegate: log
// parsers, artifact files, baseline stores and metrics export.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

// FSAdapter abstracts the filesystem operations the adapters rely on. It
// hides direct `os` access so artifact and store logic can be tested
// against temp directories or fakes.
//
//nolint:interfacebloat // A richer interface keeps adapters decoupled from os/fs.
type FSAdapter interface {
	// Open returns a reader for path. The caller closes it.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFileAtomic writes content to a temp file next to path and renames
	// it into place, so readers never observe a partial file.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ListFiles returns the regular files directly inside dir, sorted by name.
	ListFiles(dir m.Path) ([]m.Path, error)

	// Remove deletes a file. Removing a missing file is not an error.
	Remove(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter instance ready to be wired
// into the workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Open opens path for reading.
func (a *LocalFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path is an artifact chosen by the operator
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFileAtomic writes content through a temp file and rename.
func (a *LocalFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, string(path))
}

// MkdirAll creates a directory tree.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListFiles lists regular files in dir. A missing dir yields no files.
func (a *LocalFSAdapter) ListFiles(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	files := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// Remove deletes a file.
func (a *LocalFSAdapter) Remove(path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
