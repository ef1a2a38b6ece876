package store

import (
	"context"
	"maps"
)

// MemoryKV is an in-process KV. FailNext, when set, makes the next Apply return
// that error without changing anything.
type MemoryKV struct {
	entries  map[string]string
	FailNext error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryKV) Apply(_ context.Context, muts ...Mutation) error {
	if err := m.FailNext; err != nil {
		m.FailNext = nil
		return err
	}
	next := maps.Clone(m.entries)
	for _, mu := range muts {
		if mu.Delete {
			delete(next, mu.Key)
			continue
		}
		next[mu.Key] = mu.Value
	}
	m.entries = next
	return nil
}

func (m *MemoryKV) Close() error { return nil }
