package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for console output. They render
// plain text when the writer is not a color-capable terminal.
type Styles struct {
	Banner  lipgloss.Style
	Heading lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles bound to w's color profile.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}
}

// Renderer returns a func applying style, for APIs that take a plain
// func(string) string.
func Renderer(style lipgloss.Style) func(string) string {
	return func(s string) string {
		return style.Render(s)
	}
}
