// Package controller renders gate results for humans: a plain printer for
// CI logs and a pager for interactive terminals.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeCompare shows a verdict.
	ModeCompare StartMode = iota
	// ModeInspect shows stored or parsed snapshots.
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
	diff bool
}

// WithCompareMode sets the UI to verdict display.
func WithCompareMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompare
	}
}

// WithInspectMode sets the UI to snapshot and history display.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithDiff adds a unified diff of the failing lists to verdict output.
func WithDiff(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.diff = enabled
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI displays gate results. Implementations can use different output
// methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayVerdict(ctx context.Context, verdict m.GateVerdict) error
	DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error
	DisplayBaseline(ctx context.Context, baseline m.Baseline) error
	DisplayHistory(ctx context.Context, ref m.BaselineRef, records []m.BaselineRecord) error
	DisplayPromotion(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error
}

// NewUI picks the TUI for interactive terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
