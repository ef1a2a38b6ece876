// Package session owns the application state and applies user interactions to it.
//
// Every interaction runs to completion synchronously: mutate the state, persist it,
// then report how much of the view must be redrawn. Callers must not invoke a
// Session from more than one goroutine.
package session

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/store"

	"golang.org/x/text/unicode/norm"
)

// Effect tells a display adapter what to redraw after an interaction.
type Effect int

const (
	EffectNone Effect = iota
	// EffectFull rebuilds the whole view from state.
	EffectFull
	// EffectCount redraws only the remaining-count line (completion toggles).
	EffectCount
)

func (e Effect) String() string {
	switch e {
	case EffectFull:
		return "full"
	case EffectCount:
		return "count"
	default:
		return "none"
	}
}

type Session struct {
	State  *model.State
	Store  *store.Adapter
	Logger *slog.Logger
}

// Open loads the persisted state. A corrupt store is returned as an error rather
// than starting from an empty state.
func Open(ctx context.Context, a *store.Adapter, logger *slog.Logger) (*Session, error) {
	st, err := a.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(st, a, logger), nil
}

func New(st *model.State, a *store.Adapter, logger *slog.Logger) *Session {
	if st == nil {
		st = model.NewState()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{State: st, Store: a, Logger: logger}
}

func (s *Session) persist(ctx context.Context, op string) error {
	if s.Store == nil {
		return nil
	}
	if err := s.Store.Save(ctx, s.State); err != nil {
		s.Logger.Error("persist failed", "op", op, "err", err)
		return err
	}
	s.Logger.Debug("persisted", "op", op, "lists", len(s.State.Lists), "selected", s.State.SelectedListID)
	return nil
}

// cleanName reports the name to store and whether it passes validation.
// Blank or whitespace-only names are rejected; accepted names keep their
// spacing and are normalized to NFC.
func cleanName(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return norm.NFC.String(name), true
}

// Selected resolves the current selection.
func (s *Session) Selected() (*model.List, bool) {
	return mutate.SelectedList(s.State)
}
