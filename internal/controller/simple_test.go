package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

var gnuRef = m.BaselineRef{Branch: "main", Suite: "gnu"}

func newBufferedCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func redTestVerdict() m.GateVerdict {
	return m.NewGateVerdict(gnuRef, "run-9",
		m.ClassifiedDelta{
			Regressed:    []m.TestID{"t1"},
			Fixed:        []m.TestID{"t3"},
			StillFailing: []m.TestID{"t2"},
		},
		m.CountJudgement{Verdict: m.Acceptable, CurrentFailed: 2, BaselineFailed: 2, Evaluated: true},
		m.DefaultPolicy(), true,
		[]string{
			"regressed: t1",
			"fixed: t3",
			"counts: acceptable (failed 2 -> 2, net new failures 0, tolerated 0, allow equal true)",
		})
}

func greenTestVerdict() m.GateVerdict {
	return m.NewGateVerdict(gnuRef, "run-10",
		m.ClassifiedDelta{Regressed: []m.TestID{}, Fixed: []m.TestID{"t1"}, StillFailing: []m.TestID{}},
		m.CountJudgement{Verdict: m.Acceptable},
		m.DefaultPolicy(), true,
		[]string{"fixed: t1", "counts: acceptable (not evaluated)"})
}

func TestSimpleUI_DisplayVerdict(t *testing.T) {
	tests := []struct {
		name         string
		verdict      m.GateVerdict
		diff         bool
		wantContains []string
		wantMissing  []string
	}{
		{
			name:    "red verdict",
			verdict: redTestVerdict(),
			wantContains: []string{
				"Gate verdict for gnu against main/gnu",
				"run run-9",
				"regressed",
				"2 -> 2",
				"regressed: t1",
				"fixed: t3",
				"RED: 1 regressed test(s) in gnu",
			},
			wantMissing: []string{"@@"},
		},
		{
			name:         "green verdict without counters",
			verdict:      greenTestVerdict(),
			wantContains: []string{"GREEN: no regressions in gnu", "counts: acceptable (not evaluated)"},
			wantMissing:  []string{"net new failures  "},
		},
		{
			name:    "diff of failing lists",
			verdict: redTestVerdict(),
			diff:    true,
			wantContains: []string{
				"--- baseline main/gnu",
				"+++ current run-9",
				"-t3",
				"+t1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCommand()
			ui := NewSimpleUI(cmd)

			require.NoError(t, ui.Start(context.Background(), WithCompareMode(), WithDiff(tt.diff)))
			require.NoError(t, ui.DisplayVerdict(context.Background(), tt.verdict))
			ui.Wait(context.Background())
			ui.Close(context.Background())

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestSimpleUI_DisplaySnapshot(t *testing.T) {
	cmd, buf := newBufferedCommand()
	ui := NewSimpleUI(cmd)

	snapshot := m.Snapshot{
		Suite:      "bfs",
		RunID:      "run-1",
		RecordedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		Outcomes: []m.Outcome{
			{ID: "posix/basic", Status: m.StatusPassed},
			{ID: "gnu/printf", Status: m.StatusFailed},
			{ID: "bsd/flags", Status: m.StatusErrored},
		},
	}

	require.NoError(t, ui.DisplaySnapshot(context.Background(), snapshot))

	got := buf.String()
	assert.Contains(t, got, "Snapshot of bfs")
	assert.Contains(t, got, "2026-02-03T04:05:06Z")
	assert.Contains(t, got, "no counters reported")
	assert.Contains(t, got, "  gnu/printf\n")
	assert.Contains(t, got, "  bsd/flags\n")
	assert.NotContains(t, got, "  posix/basic\n")
}

func TestSimpleUI_DisplayBaselineAndHistory(t *testing.T) {
	cmd, buf := newBufferedCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.DisplayBaseline(ctx, m.NoBaseline(gnuRef)))
	assert.Contains(t, buf.String(), "no baseline recorded for main/gnu")

	buf.Reset()

	require.NoError(t, ui.DisplayHistory(ctx, gnuRef, nil))
	assert.Contains(t, buf.String(), "no baselines recorded for main/gnu")

	buf.Reset()

	records := []m.BaselineRecord{
		{Ref: gnuRef, RunID: "run-2", Failing: 1, Counters: &m.Counters{Failed: 1}},
		{Ref: gnuRef, RunID: "run-1", Failing: 3},
	}
	require.NoError(t, ui.DisplayHistory(ctx, gnuRef, records))

	got := buf.String()
	assert.Contains(t, got, "Baseline history for main/gnu")
	assert.Less(t, strings.Index(got, "run-2"), strings.Index(got, "run-1"))

	buf.Reset()

	snapshot := m.Snapshot{Suite: "gnu", RunID: "run-2", Outcomes: []m.Outcome{{ID: "t1", Status: m.StatusFailed}}}
	require.NoError(t, ui.DisplayBaseline(ctx, m.Baseline{Ref: gnuRef, Snapshot: &snapshot}))
	assert.Contains(t, buf.String(), "Baseline main/gnu")

	buf.Reset()

	require.NoError(t, ui.DisplayPromotion(ctx, gnuRef, snapshot))
	assert.Equal(t, "promoted run run-2 to baseline main/gnu (1 failing)\n", buf.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, _ := newBufferedCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayVerdict(ctx, redTestVerdict()), context.Canceled)
}

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestFailingDiff_Empty(t *testing.T) {
	diff, err := failingDiff(m.NewGateVerdict(gnuRef, "", m.ClassifiedDelta{}, m.CountJudgement{Verdict: m.Acceptable}, m.DefaultPolicy(), true, nil))
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestFailingDiff_SortsBothSides(t *testing.T) {
	verdict := m.NewGateVerdict(gnuRef, "run-9",
		m.ClassifiedDelta{
			Regressed:    []m.TestID{"z-new", "b-new"},
			Fixed:        []m.TestID{"c-fixed"},
			StillFailing: []m.TestID{"d-kept", "a-kept"},
		},
		m.CountJudgement{Verdict: m.Acceptable}, m.DefaultPolicy(), true, nil)

	diff, err := failingDiff(verdict)
	require.NoError(t, err)
	assert.Equal(t, `--- baseline main/gnu
+++ current run-9
@@ -1,3 +1,4 @@
 a-kept
-c-fixed
+b-new
 d-kept
+z-new
`, diff)
}
