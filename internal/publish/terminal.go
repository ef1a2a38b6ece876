package publish

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal styles md for a terminal. It falls back to the raw Markdown
// when the renderer cannot be built.
func RenderTerminal(md string, width int, style string) string {
	if width < 20 {
		width = 20
	}
	if strings.TrimSpace(style) == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		// Avoid WithAutoStyle(): it queries the terminal and can block.
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
