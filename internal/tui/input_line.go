package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a form as a single "label [input]" line of width w.
func renderInputLine(w int, label, inputView string) string {
	if w < 10 {
		w = 10
	}

	// A text input must stay on one visual line; stray newlines would wrap the footer.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+label+" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Never exceed the footer width; terminate ANSI styling to prevent bleed.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}
