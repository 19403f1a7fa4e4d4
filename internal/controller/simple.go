package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// SimpleUI implements UI by printing to the command's output. It is the
// UI used in CI logs.
type SimpleUI struct {
	cmd    *cobra.Command
	styles styles
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: newStyles(cmd.OutOrStdout())}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayVerdict prints the verdict summary, its messages and, when
// enabled, the failing-list diff.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, verdict m.GateVerdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderVerdict(s.styles, verdict, s.config.diff)
	if err != nil {
		return err
	}

	return s.print(text)
}

// DisplaySnapshot prints a status breakdown of a parsed snapshot.
func (s *SimpleUI) DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderSnapshot(s.styles, snapshot))
}

// DisplayBaseline prints the stored baseline, or says there is none.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, baseline m.Baseline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderBaseline(s.styles, baseline))
}

// DisplayHistory prints promoted baselines, newest first.
func (s *SimpleUI) DisplayHistory(ctx context.Context, ref m.BaselineRef, records []m.BaselineRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderHistory(s.styles, ref, records))
}

// DisplayPromotion confirms a baseline write.
func (s *SimpleUI) DisplayPromotion(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(renderPromotion(s.styles, ref, snapshot))
}

func (s *SimpleUI) print(text string) error {
	return writeText(s.cmd.OutOrStdout(), text)
}

func writeText(w io.Writer, text string) error {
	_, err := fmt.Fprint(w, text)
	return err
}
