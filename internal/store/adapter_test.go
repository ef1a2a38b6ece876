package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tasklist-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]KV {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	sq, err := OpenKV(ctx, filepath.Join(dir, "state.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	fk, err := OpenKV(ctx, filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	mem, err := OpenKV(ctx, MemoryPath)
	require.NoError(t, err)

	return map[string]KV{"sqlite": sq, "file": fk, "memory": mem}
}

func sampleState() *model.State {
	return &model.State{
		Lists: []model.List{
			{ID: "l1", Name: "Groceries", Tasks: []model.Task{
				{ID: "t1", Name: "Milk", Complete: true},
				{ID: "t2", Name: "Eggs"},
			}},
			{ID: "l2", Name: "Empty", Tasks: []model.Task{}},
		},
		SelectedListID: "l1",
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(kv)

			want := sampleState()
			require.NoError(t, a.Save(ctx, want))
			got, err := a.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			empty := model.NewState()
			require.NoError(t, a.Save(ctx, empty))
			got, err = a.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, empty, got)

			_, ok, err := kv.Get(ctx, KeySelectedListID)
			require.NoError(t, err)
			assert.False(t, ok, "cleared selection removes the key")
		})
	}
}

func TestAdapter_LoadMissingKeys(t *testing.T) {
	a := NewAdapter(NewMemoryKV())
	st, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, st.Lists)
	assert.Empty(t, st.Lists)
	assert.False(t, st.HasSelection())
}

func TestAdapter_LoadNullMarkers(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Apply(ctx,
		Put(KeyLists, `[{"id":"l1","name":"A","tasks":null}]`),
		Put(KeySelectedListID, "null"),
	))

	st, err := NewAdapter(kv).Load(ctx)
	require.NoError(t, err)
	require.Len(t, st.Lists, 1)
	assert.Equal(t, []model.Task{}, st.Lists[0].Tasks)
	assert.Empty(t, st.SelectedListID)
}

func TestAdapter_LoadCorruptIsError(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Apply(ctx, Put(KeyLists, `[{"id":`), Put(KeySelectedListID, "l1")))

	st, err := NewAdapter(kv).Load(ctx)
	require.Error(t, err)
	assert.Nil(t, st)
	assert.True(t, errors.Is(err, ErrCorrupt))

	v, ok, err := kv.Get(ctx, KeyLists)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":`, v, "corrupt data is left in place")
}

func TestAdapter_SaveFailureKeepsPreviousPair(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	a := NewAdapter(kv)

	first := sampleState()
	require.NoError(t, a.Save(ctx, first))

	second := sampleState()
	second.Lists = second.Lists[1:]
	second.SelectedListID = "l2"
	kv.FailNext = errors.New("disk full")
	require.Error(t, a.Save(ctx, second))

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestAdapter_PersistedLayout(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, NewAdapter(kv).Save(ctx, &model.State{
		Lists:          []model.List{{ID: "l1", Name: "A"}},
		SelectedListID: "l1",
	}))

	v, ok, err := kv.Get(ctx, KeyLists)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"l1","name":"A","tasks":[]}]`, v)

	sel, ok, err := kv.Get(ctx, KeySelectedListID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "l1", sel)
}
