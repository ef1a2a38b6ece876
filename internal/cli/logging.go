package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// logSink owns the slog destination. The TUI draws on the terminal, so logs
// only go to a file when one is configured.
type logSink struct {
	logger *slog.Logger
	file   *os.File
}

func openLogSink(path string, verbose bool) (*logSink, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	path = strings.TrimSpace(path)
	if path == "" {
		return &logSink{logger: slog.New(slog.NewTextHandler(io.Discard, opts))}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &logSink{logger: slog.New(slog.NewTextHandler(f, opts)), file: f}, nil
}

func (s *logSink) Logger() *slog.Logger {
	if s == nil || s.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.logger
}

func (s *logSink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
