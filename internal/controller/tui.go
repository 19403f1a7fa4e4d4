package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

// pagerReservedLines is the footer below the viewport.
const pagerReservedLines = 2

// TUI implements UI for interactive terminals. Output is collected while
// the command runs and shown on Wait: printed directly when it fits the
// terminal, otherwise in a scrollable pager.
type TUI struct {
	output  io.Writer
	styles  styles
	config  StartConfig
	content strings.Builder
	width   int
	height  int
	// runProgram runs the pager; replaced in tests.
	runProgram func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{output: output, styles: newStyles(output)}
	tui.runProgram = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(tui.output), tea.WithAltScreen()).Run()
		return err
	}

	// Get initial terminal size
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			tui.width = width
			tui.height = height
		}
	}

	return tui
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options)

	return nil
}

// Close flushes anything Wait has not shown yet.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if p.content.Len() > 0 {
		_ = writeText(p.output, p.takeContent())
	}
}

// Wait shows the collected output and blocks until the pager is closed.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if p.content.Len() == 0 {
		return
	}

	content := p.takeContent()

	if !p.needsPagination(content) {
		_ = writeText(p.output, content)
		return
	}

	if err := p.runProgram(newPagerModel(p.title(), content, p.width, p.height)); err != nil {
		// The pager could not take over the terminal; fall back to printing.
		_ = writeText(p.output, content)
	}
}

// DisplayVerdict queues the verdict view.
func (p *TUI) DisplayVerdict(ctx context.Context, verdict m.GateVerdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderVerdict(p.styles, verdict, p.config.diff)
	if err != nil {
		return err
	}

	p.content.WriteString(text)

	return nil
}

// DisplaySnapshot queues the snapshot view.
func (p *TUI) DisplaySnapshot(ctx context.Context, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.content.WriteString(renderSnapshot(p.styles, snapshot))

	return nil
}

// DisplayBaseline queues the baseline view.
func (p *TUI) DisplayBaseline(ctx context.Context, baseline m.Baseline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.content.WriteString(renderBaseline(p.styles, baseline))

	return nil
}

// DisplayHistory queues the history view.
func (p *TUI) DisplayHistory(ctx context.Context, ref m.BaselineRef, records []m.BaselineRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.content.WriteString(renderHistory(p.styles, ref, records))

	return nil
}

// DisplayPromotion queues the promotion notice.
func (p *TUI) DisplayPromotion(ctx context.Context, ref m.BaselineRef, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.content.WriteString(renderPromotion(p.styles, ref, snapshot))

	return nil
}

func (p *TUI) takeContent() string {
	content := p.content.String()
	p.content.Reset()

	return content
}

func (p *TUI) title() string {
	if p.config.mode == ModeInspect {
		return "suitegate baselines"
	}

	return "suitegate verdict"
}

// needsPagination returns true if content is too tall for the terminal.
func (p *TUI) needsPagination(content string) bool {
	if p.height <= 0 {
		return false
	}

	return strings.Count(content, "\n") > p.height-pagerReservedLines
}

// pagerModel is the Bubble Tea model scrolling long output.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(1, height-pagerReservedLines))
	vp.SetContent(content)

	return pagerModel{title: title, content: content, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(1, msg.Height-pagerReservedLines)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := fmt.Sprintf("%s  %3.0f%%  ↑/↓ scroll • g/G top/bottom • q quit", pm.title, pm.viewport.ScrollPercent()*100)

	return pm.viewport.View() + "\n\n" + footer
}
