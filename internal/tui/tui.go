// Package tui is the terminal display adapter: it forwards key events to a
// session and applies render.View results to bubbletea panes.
package tui

import (
	"context"

	"tasklist-cli/internal/session"
	"tasklist-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Config carries appearance preferences; nil means defaults.
	Config *store.TUIConfig
}

func Run(ctx context.Context, sess *session.Session, opts Options) error {
	var theme, glyphPref string
	if opts.Config != nil {
		theme, glyphPref = opts.Config.Theme, opts.Config.Glyphs
	}
	applyColorProfilePreference()
	applyThemePreference(theme)
	applyGlyphPreference(glyphPref)

	m := newAppModel(ctx, sess)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
