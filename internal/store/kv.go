package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrCorrupt marks stored data that exists but cannot be decoded.
var ErrCorrupt = errors.New("stored data is corrupt")

// Mutation is one write in a batch. Delete removes Key and ignores Value.
type Mutation struct {
	Key    string
	Value  string
	Delete bool
}

func Put(key, value string) Mutation { return Mutation{Key: key, Value: value} }
func Del(key string) Mutation        { return Mutation{Key: key, Delete: true} }

// KV is a string-keyed store. Apply must commit a batch as a unit: either every
// mutation is visible afterwards or none is.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Apply(ctx context.Context, muts ...Mutation) error
	Close() error
}

const MemoryPath = ":memory:"

// OpenKV picks a backend from the path: ":memory:" for an in-process map,
// "*.json" for a single JSON file, anything else for SQLite.
func OpenKV(ctx context.Context, path string) (KV, error) {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return nil, errors.New("open kv: empty path")
	case path == MemoryPath:
		return NewMemoryKV(), nil
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return OpenFileKV(path)
	default:
		kv, err := OpenSQLiteKV(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
		return kv, nil
	}
}
