package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tasklist-cli/internal/model"
)

// Keys are namespaced so the store can be shared with unrelated data.
const (
	KeyLists          = "task.lists"
	KeySelectedListID = "task.selectedListId"
)

// Adapter maps a model.State onto two KV entries.
type Adapter struct {
	KV KV
}

func NewAdapter(kv KV) *Adapter {
	return &Adapter{KV: kv}
}

// Load reads the persisted state. Missing entries read as empty; corrupt list
// data is an error wrapping ErrCorrupt and is never replaced with an empty state.
func (a *Adapter) Load(ctx context.Context) (*model.State, error) {
	st := model.NewState()

	raw, ok, err := a.KV.Get(ctx, KeyLists)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyLists, err)
	}
	if ok && strings.TrimSpace(raw) != "" {
		var lists []model.List
		if err := json.Unmarshal([]byte(raw), &lists); err != nil {
			return nil, fmt.Errorf("decode %s: %w: %v", KeyLists, ErrCorrupt, err)
		}
		st.Lists = normalizeLists(lists)
	}

	sel, ok, err := a.KV.Get(ctx, KeySelectedListID)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeySelectedListID, err)
	}
	if ok {
		st.SelectedListID = decodeSelection(sel)
	}
	return st, nil
}

// Save writes both entries in one batch. Encoding happens first, so a failure
// there leaves the previously saved values untouched.
func (a *Adapter) Save(ctx context.Context, st *model.State) error {
	if st == nil {
		return fmt.Errorf("save: nil state")
	}
	lists := st.Lists
	if lists == nil {
		lists = []model.List{}
	}
	b, err := json.Marshal(normalizeLists(lists))
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyLists, err)
	}

	sel := Del(KeySelectedListID)
	if st.SelectedListID != "" {
		sel = Put(KeySelectedListID, st.SelectedListID)
	}
	if err := a.KV.Apply(ctx, Put(KeyLists, string(b)), sel); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// decodeSelection treats "" and the literal "null" as no selection; some
// writers store a null selection as that string.
func decodeSelection(v string) string {
	v = strings.TrimSpace(v)
	if v == "null" {
		return ""
	}
	return v
}

// normalizeLists ensures every list has a non-nil task slice so "tasks" encodes as [].
func normalizeLists(lists []model.List) []model.List {
	if lists == nil {
		return []model.List{}
	}
	for i := range lists {
		if lists[i].Tasks == nil {
			lists[i].Tasks = []model.Task{}
		}
	}
	return lists
}
