package mutate

import "tasklist-cli/internal/model"

// CreateList builds a list with a fresh id and no tasks.
// Callers reject blank names before calling.
func CreateList(name string) model.List {
	return model.List{ID: NewID(), Name: name, Tasks: []model.Task{}}
}

// AppendList adds l at the end of the list sequence.
func AppendList(st *model.State, l model.List) *model.List {
	st.Lists = append(st.Lists, l)
	return &st.Lists[len(st.Lists)-1]
}

// FindList returns a pointer into st.Lists so callers can mutate in place.
func FindList(st *model.State, id string) (*model.List, bool) {
	if st == nil || id == "" {
		return nil, false
	}
	for i := range st.Lists {
		if st.Lists[i].ID == id {
			return &st.Lists[i], true
		}
	}
	return nil, false
}

// SelectedList resolves the current selection. A stale selection id reports false.
func SelectedList(st *model.State) (*model.List, bool) {
	if !st.HasSelection() {
		return nil, false
	}
	return FindList(st, st.SelectedListID)
}

// SelectList sets the selection. An empty id clears it.
func SelectList(st *model.State, id string) error {
	if id == "" {
		st.SelectedListID = ""
		return nil
	}
	if _, ok := FindList(st, id); !ok {
		return NotFoundError{Kind: "list", ID: id}
	}
	st.SelectedListID = id
	return nil
}

// DeleteList removes the list with the given id. Deleting the selected list
// clears the selection. It reports whether a list was removed.
func DeleteList(st *model.State, id string) bool {
	removed := false
	out := st.Lists[:0]
	for _, l := range st.Lists {
		if l.ID == id {
			removed = true
			continue
		}
		out = append(out, l)
	}
	st.Lists = out
	if st.SelectedListID == id {
		st.SelectedListID = ""
	}
	return removed
}
