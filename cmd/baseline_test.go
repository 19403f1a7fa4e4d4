package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"suitegate.dev/pkg/suitegate/internal/domain"
	domainmocks "suitegate.dev/pkg/suitegate/internal/domain/mocks"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

func TestBaselinePromoteCmd(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   string
		extra      []string
		wantFormat string
	}{
		{"json by default", "gnu.json", nil, "json"},
		{"yaml by extension", "gnu.yml", nil, "yaml"},
		{"explicit native format", "test-suite.log", []string{"--format", "gnu"}, "gnu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := domainmocks.NewMockWorkflow(t)
			root := newTestRootCmd(t, wf)

			want := domain.PromoteArgs{
				Snapshot: m.Path(tt.snapshot),
				Format:   tt.wantFormat,
				Verdict:  "verdict.json",
				Ref:      m.BaselineRef{Branch: "main", Suite: "gnu"},
			}
			wf.EXPECT().Promote(mock.Anything, want).Return(nil).Once()

			args := append([]string{"baseline", "promote", tt.snapshot, "--verdict", "verdict.json", "-s", "gnu"}, tt.extra...)
			_, err := executeCommand(root, args...)
			require.NoError(t, err)
		})
	}
}

func TestBaselinePromoteCmd_RequiresVerdict(t *testing.T) {
	root := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))

	_, err := executeCommand(root, "baseline", "promote", "gnu.json", "-s", "gnu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--verdict")
}

func TestBaselinePromoteCmd_Refused(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	root := newTestRootCmd(t, wf)

	wf.EXPECT().Promote(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: verdict for main/gnu is red", domain.ErrPromotionRefused)).Once()

	_, err := executeCommand(root, "baseline", "promote", "gnu.json", "--verdict", "verdict.json", "-s", "gnu")
	require.ErrorIs(t, err, domain.ErrPromotionRefused)
	assert.Equal(t, 2, exitCode(err))
}

func TestBaselineShowCmd(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	root := newTestRootCmd(t, wf)

	wf.EXPECT().Show(mock.Anything, m.BaselineRef{Branch: "next", Suite: "bfs"}).Return(nil).Once()

	_, err := executeCommand(root, "baseline", "show", "-s", "bfs", "-b", "next")
	require.NoError(t, err)
}

func TestBaselineHistoryCmd(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	root := newTestRootCmd(t, wf)

	wf.EXPECT().History(mock.Anything, m.BaselineRef{Branch: "main", Suite: "gnu"}, 3).Return(nil).Once()

	_, err := executeCommand(root, "baseline", "history", "-s", "gnu", "--limit", "3")
	require.NoError(t, err)
}

func TestBaselineHistoryCmd_DefaultLimit(t *testing.T) {
	wf := domainmocks.NewMockWorkflow(t)
	root := newTestRootCmd(t, wf)

	wf.EXPECT().History(mock.Anything, mock.Anything, defaultHistoryLimit).Return(nil).Once()

	_, err := executeCommand(root, "baseline", "history", "-s", "gnu")
	require.NoError(t, err)
}
