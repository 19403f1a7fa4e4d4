package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// ArtifactAdapter reads and writes the files a CI job hands to the gate:
// suite logs, normalized snapshots and verdict reports.
type ArtifactAdapter interface {
	// ReadSnapshot parses the log at path with the parser registered for
	// format and stamps suite, a run id and a timestamp where the source
	// carries none.
	ReadSnapshot(ctx context.Context, path m.Path, format, suite string) (m.Snapshot, error)
	// WriteSnapshot persists snapshot as JSON or YAML, chosen by extension.
	WriteSnapshot(ctx context.Context, path m.Path, snapshot m.Snapshot) error
	// ReadVerdict loads a verdict report written by WriteVerdict.
	ReadVerdict(ctx context.Context, path m.Path) (m.VerdictReport, error)
	// WriteVerdict persists verdict as a JSON report.
	WriteVerdict(ctx context.Context, path m.Path, verdict m.GateVerdict) error
}

// ArtifactOption customizes a LocalArtifactAdapter.
type ArtifactOption func(*LocalArtifactAdapter)

// WithRunIDGenerator replaces the uuid based run id generator.
func WithRunIDGenerator(next func() string) ArtifactOption {
	return func(a *LocalArtifactAdapter) {
		a.newRunID = next
	}
}

// WithClock replaces time.Now for snapshot timestamps.
func WithClock(now func() time.Time) ArtifactOption {
	return func(a *LocalArtifactAdapter) {
		a.now = now
	}
}

// LocalArtifactAdapter implements ArtifactAdapter on top of an FSAdapter.
type LocalArtifactAdapter struct {
	fs       FSAdapter
	parsers  *ParserRegistry
	newRunID func() string
	now      func() time.Time
}

// NewLocalArtifactAdapter wires an artifact adapter.
func NewLocalArtifactAdapter(fs FSAdapter, parsers *ParserRegistry, opts ...ArtifactOption) *LocalArtifactAdapter {
	adapter := &LocalArtifactAdapter{
		fs:       fs,
		parsers:  parsers,
		newRunID: uuid.NewString,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// ReadSnapshot implements ArtifactAdapter.
func (a *LocalArtifactAdapter) ReadSnapshot(ctx context.Context, path m.Path, format, suite string) (m.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return m.Snapshot{}, err
	}

	parser, err := a.parsers.Lookup(format)
	if err != nil {
		return m.Snapshot{}, err
	}

	reader, err := a.fs.Open(path)
	if err != nil {
		slog.Error("failed to open snapshot source", "path", path, "error", err)
		return m.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	snapshot, err := parser.Parse(reader)
	if err != nil {
		var dataErr *m.DataError
		if errors.As(err, &dataErr) && dataErr.Suite == "" {
			dataErr.Suite = suite
		}

		slog.Error("failed to parse snapshot", "path", path, "format", parser.Name(), "error", err)

		return m.Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if snapshot.Suite == "" {
		snapshot.Suite = suite
	}

	if snapshot.RunID == "" {
		snapshot.RunID = a.newRunID()
	}

	if snapshot.RecordedAt.IsZero() {
		snapshot.RecordedAt = a.now().UTC()
	}

	slog.Debug("snapshot read", "path", path, "format", parser.Name(), "suite", snapshot.Suite, "outcomes", len(snapshot.Outcomes), "failing", len(snapshot.Failing()))

	return snapshot, nil
}

// WriteSnapshot implements ArtifactAdapter.
func (a *LocalArtifactAdapter) WriteSnapshot(ctx context.Context, path m.Path, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := CodecForPath(path).Encode(snapshot)
	if err != nil {
		return err
	}

	if err := a.fs.WriteFileAtomic(path, data, 0o644); err != nil {
		slog.Error("failed to write snapshot", "path", path, "error", err)
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return nil
}

// ReadVerdict implements ArtifactAdapter.
func (a *LocalArtifactAdapter) ReadVerdict(ctx context.Context, path m.Path) (m.VerdictReport, error) {
	if err := ctx.Err(); err != nil {
		return m.VerdictReport{}, err
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		slog.Error("failed to read verdict report", "path", path, "error", err)
		return m.VerdictReport{}, fmt.Errorf("read verdict %s: %w", path, err)
	}

	var report m.VerdictReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.VerdictReport{}, m.NewDataError("", fmt.Errorf("decode verdict %s: %w", path, err))
	}

	return report, nil
}

// WriteVerdict implements ArtifactAdapter.
func (a *LocalArtifactAdapter) WriteVerdict(ctx context.Context, path m.Path, verdict m.GateVerdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}

	if err := a.fs.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		slog.Error("failed to write verdict report", "path", path, "error", err)
		return fmt.Errorf("write verdict %s: %w", path, err)
	}

	return nil
}
