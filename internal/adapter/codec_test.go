package adapter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

func sampleSnapshot() m.Snapshot {
	return m.Snapshot{
		Suite:      "gnu",
		RunID:      "run-1",
		RecordedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Outcomes: []m.Outcome{
			{ID: "t1", Status: m.StatusFailed},
			{ID: "t2", Status: m.StatusPassed},
		},
		Counters: &m.Counters{Total: 2, Passed: 1, Failed: 1},
	}
}

func TestSnapshotCodec_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			codec := NewSnapshotCodec(format)

			data, err := codec.Encode(sampleSnapshot())
			require.NoError(t, err)

			decoded, err := codec.Parse(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot(), decoded)
		})
	}
}

func TestSnapshotCodec_RejectsUnknownFields(t *testing.T) {
	_, err := NewSnapshotCodec(FormatJSON).Parse(bytes.NewBufferString(`{"suite":"gnu","outcomes":[],"flaky":true}`))
	require.ErrorIs(t, err, m.ErrDataError)

	_, err = NewSnapshotCodec(FormatYAML).Parse(bytes.NewBufferString("suite: gnu\nflaky: true\n"))
	require.ErrorIs(t, err, m.ErrDataError)
}

func TestSnapshotCodec_EmptyOutcomesAreNotNil(t *testing.T) {
	decoded, err := NewSnapshotCodec(FormatYAML).Parse(bytes.NewBufferString("suite: bfs\n"))
	require.NoError(t, err)
	assert.NotNil(t, decoded.Outcomes)
	assert.Equal(t, "bfs", decoded.Suite)
}

func TestSnapshotCodec_RejectsCountersBelowListedOutcomes(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Outcomes = []m.Outcome{
		{ID: "t1", Status: m.StatusFailed},
		{ID: "t2", Status: m.StatusFailed},
		{ID: "t3", Status: m.StatusFailed},
	}
	snapshot.Counters = &m.Counters{Total: 1, Passed: 1}

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			codec := NewSnapshotCodec(format)

			data, err := codec.Encode(snapshot)
			require.NoError(t, err)

			_, err = codec.Parse(bytes.NewReader(data))
			require.ErrorIs(t, err, m.ErrDataError)
			assert.Contains(t, err.Error(), "the log lists")
		})
	}
}

func TestSnapshotCodec_CountersMayCoverUnlistedOutcomes(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Outcomes = []m.Outcome{{ID: "t1", Status: m.StatusFailed}}
	snapshot.Counters = &m.Counters{Total: 700, Passed: 699, Failed: 1}

	data, err := NewSnapshotCodec(FormatJSON).Encode(snapshot)
	require.NoError(t, err)

	decoded, err := NewSnapshotCodec(FormatJSON).Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestSnapshotCodec_RejectsCountersWithBadTotal(t *testing.T) {
	_, err := NewSnapshotCodec(FormatYAML).Parse(bytes.NewBufferString(
		"suite: gnu\ncounters:\n  total: 5\n  passed: 1\n  failed: 1\n  skipped: 0\n"))
	require.ErrorIs(t, err, m.ErrDataError)
	assert.Contains(t, err.Error(), "does not match its parts")
}

func TestCodecForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, CodecForPath("snap.yml").Name())
	assert.Equal(t, FormatYAML, CodecForPath("snap.YAML").Name())
	assert.Equal(t, FormatJSON, CodecForPath("snap.json").Name())
	assert.Equal(t, FormatJSON, CodecForPath("snap").Name())
}
