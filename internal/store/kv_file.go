package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores every entry in one JSON object file. Each Apply rewrites the
// whole file through a temp file + rename, so a batch lands atomically.
type FileKV struct {
	path string
}

func OpenFileKV(path string) (*FileKV, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileKV{path: path}, nil
}

func (f *FileKV) read() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return map[string]string{}, nil
	}
	m := map[string]string{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", f.path, ErrCorrupt, err)
	}
	return m, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	m, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (f *FileKV) Apply(_ context.Context, muts ...Mutation) error {
	m, err := f.read()
	if err != nil {
		return err
	}
	for _, mu := range muts {
		if mu.Delete {
			delete(m, mu.Key)
			continue
		}
		m[mu.Key] = mu.Value
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp", f.path, b, 0o644)
}

func (f *FileKV) Close() error { return nil }
