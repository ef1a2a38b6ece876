package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tasklist-cli/internal/model"
)

type WriteOptions struct {
	HTML      bool
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteState exports every list to a single Markdown (or HTML) file.
func WriteState(st *model.State, to string, opt WriteOptions) (WriteResult, error) {
	if st == nil {
		return WriteResult{}, errors.New("missing state")
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	to = filepath.Clean(to)

	content := RenderStateMarkdown(st, RenderOptions{})
	if opt.HTML {
		body, err := MarkdownToHTML(content)
		if err != nil {
			return WriteResult{}, fmt.Errorf("render html: %w", err)
		}
		content = HTMLDocument("Task lists", body)
	}

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return WriteResult{}, err
	}
	if err := writeFile(to, []byte(content), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{to}}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing file: %s (use --overwrite)", path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
