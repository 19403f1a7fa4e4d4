package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles bundles the lipgloss styles used by every view. Colors degrade to
// plain text when the output is not a terminal.
type styles struct {
	green   lipgloss.Style
	red     lipgloss.Style
	warning lipgloss.Style
	title   lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(output io.Writer) styles {
	renderer := lipgloss.NewRenderer(output)

	return styles{
		green:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		red:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		title:   renderer.NewStyle().Bold(true),
		faint:   renderer.NewStyle().Faint(true),
	}
}
