package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// Normalized snapshot formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SnapshotCodec reads and writes snapshots in their persisted form.
type SnapshotCodec struct {
	format string
}

// NewSnapshotCodec returns a codec for FormatJSON or FormatYAML. Any other
// value falls back to JSON.
func NewSnapshotCodec(format string) *SnapshotCodec {
	if format != FormatYAML {
		format = FormatJSON
	}

	return &SnapshotCodec{format: format}
}

// CodecForPath picks the codec matching a file extension.
func CodecForPath(path m.Path) *SnapshotCodec {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return NewSnapshotCodec(FormatYAML)
	default:
		return NewSnapshotCodec(FormatJSON)
	}
}

// Name implements SnapshotParser.
func (c *SnapshotCodec) Name() string {
	return c.format
}

// Parse implements SnapshotParser. Unknown fields are rejected, as are
// counters that disagree with the listed outcomes.
func (c *SnapshotCodec) Parse(r io.Reader) (m.Snapshot, error) {
	var snapshot m.Snapshot

	switch c.format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)

		if err := decoder.Decode(&snapshot); err != nil && !errors.Is(err, io.EOF) {
			return m.Snapshot{}, m.NewDataError("", fmt.Errorf("decode yaml snapshot: %w", err))
		}
	default:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&snapshot); err != nil {
			return m.Snapshot{}, m.NewDataError("", fmt.Errorf("decode json snapshot: %w", err))
		}
	}

	if snapshot.Outcomes == nil {
		snapshot.Outcomes = []m.Outcome{}
	}

	if snapshot.Counters != nil {
		if err := checkCounters(c.format, *snapshot.Counters, snapshot.Outcomes); err != nil {
			return m.Snapshot{}, err
		}
	}

	return snapshot, nil
}

// Encode renders snapshot in the codec's format.
func (c *SnapshotCodec) Encode(snapshot m.Snapshot) ([]byte, error) {
	if snapshot.Outcomes == nil {
		snapshot.Outcomes = []m.Outcome{}
	}

	if c.format == FormatYAML {
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)

		if err := encoder.Encode(snapshot); err != nil {
			return nil, fmt.Errorf("encode yaml snapshot: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml snapshot: %w", err)
		}

		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json snapshot: %w", err)
	}

	return append(data, '\n'), nil
}
