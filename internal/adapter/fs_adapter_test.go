package adapter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	m "suitegate.dev/pkg/suitegate/internal/model"
)

func TestLocalFSAdapter_ReadFileAndOpen(t *testing.T) {
	adapter := NewLocalFSAdapter()
	root := t.TempDir()
	path := filepath.Join(root, "gnu.log")
	writeTestFile(t, path, "PASS: a\n")

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "PASS: a\n" {
		t.Fatalf("ReadFile() = %q", got)
	}

	reader, err := adapter.Open(m.Path(path))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reader.Close()

	streamed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if string(streamed) != "PASS: a\n" {
		t.Fatalf("Open() streamed %q", streamed)
	}
}

func TestLocalFSAdapter_WriteFileAtomic(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		adapter := NewLocalFSAdapter()
		path := filepath.Join(t.TempDir(), "main", "gnu.json")

		if err := adapter.WriteFileAtomic(m.Path(path), []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(contents) != "{}" {
			t.Fatalf("unexpected contents %q", contents)
		}
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		adapter := NewLocalFSAdapter()
		dir := t.TempDir()
		path := filepath.Join(dir, "bfs.json")
		writeTestFile(t, path, "old")

		if err := adapter.WriteFileAtomic(m.Path(path), []byte("new"), 0o600); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		contents, _ := os.ReadFile(path)
		if string(contents) != "new" {
			t.Fatalf("expected replaced contents, got %q", contents)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}

		if len(entries) != 1 {
			t.Fatalf("expected only the target file, found %d entries", len(entries))
		}
	})
}

func TestLocalFSAdapter_ListFiles(t *testing.T) {
	adapter := NewLocalFSAdapter()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.json"), "b")
	writeTestFile(t, filepath.Join(root, "a.json"), "a")
	mustMkdir(t, filepath.Join(root, "nested"))

	files, err := adapter.ListFiles(m.Path(root))
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	want := []m.Path{m.Path(filepath.Join(root, "a.json")), m.Path(filepath.Join(root, "b.json"))}
	if len(files) != len(want) || files[0] != want[0] || files[1] != want[1] {
		t.Fatalf("ListFiles() = %v, want %v", files, want)
	}

	missing, err := adapter.ListFiles(m.Path(filepath.Join(root, "does-not-exist")))
	if err != nil {
		t.Fatalf("ListFiles() on missing dir error = %v", err)
	}

	if len(missing) != 0 {
		t.Fatalf("expected no files for missing dir, got %v", missing)
	}
}

func TestLocalFSAdapter_RemoveAndFileInfo(t *testing.T) {
	adapter := NewLocalFSAdapter()
	path := filepath.Join(t.TempDir(), "history", "gnu", "1.json")
	writeTestFile(t, path, "{}")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("expected a file at %s", path)
	}

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := adapter.FileInfo(m.Path(path)); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, err = %v", err)
	}

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() on missing file error = %v", err)
	}
}

func TestLocalFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalFSAdapter()

	if got := adapter.JoinPath("a", "b", "c.json"); got != m.Path(filepath.Join("a", "b", "c.json")) {
		t.Fatalf("JoinPath() = %q", got)
	}

	dir := filepath.Join(t.TempDir(), "x", "y")
	if err := adapter.MkdirAll(m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err = %v", dir, err)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
