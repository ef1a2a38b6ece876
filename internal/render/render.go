// Package render projects a model.State onto a display-independent View.
//
// Render is pure and rebuilds the whole View on every call; display adapters
// apply the result to their surface without keeping any prior rendered state.
package render

import (
	"fmt"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/mutate"
)

type Mode int

const (
	// ModeNoSelection hides the task surface; the list of lists still renders.
	ModeNoSelection Mode = iota
	// ModeSelection shows the selected list's title, count and tasks.
	ModeSelection
)

func (m Mode) String() string {
	if m == ModeSelection {
		return "selection"
	}
	return "no-selection"
}

type ListEntry struct {
	ID     string
	Name   string
	Active bool
}

type TaskRow struct {
	ID       string
	Name     string
	Complete bool
}

type Details struct {
	ListID    string
	Title     string
	Remaining int
	Count     string
	Tasks     []TaskRow
}

type View struct {
	Lists   []ListEntry
	Details *Details
}

func (v View) Mode() Mode {
	if v.Details == nil {
		return ModeNoSelection
	}
	return ModeSelection
}

// ActiveIndex returns the index of the highlighted entry, or -1.
func (v View) ActiveIndex() int {
	for i, e := range v.Lists {
		if e.Active {
			return i
		}
	}
	return -1
}

func Render(st *model.State) View {
	var v View
	if st == nil {
		return v
	}
	v.Lists = make([]ListEntry, 0, len(st.Lists))
	for _, l := range st.Lists {
		v.Lists = append(v.Lists, ListEntry{
			ID:     l.ID,
			Name:   l.Name,
			Active: st.HasSelection() && l.ID == st.SelectedListID,
		})
	}

	sel, ok := mutate.SelectedList(st)
	if !ok {
		return v
	}
	d := &Details{
		ListID: sel.ID,
		Title:  sel.Name,
		Tasks:  make([]TaskRow, 0, len(sel.Tasks)),
	}
	for _, t := range sel.Tasks {
		d.Tasks = append(d.Tasks, TaskRow{ID: t.ID, Name: t.Name, Complete: t.Complete})
	}
	SetCount(d, mutate.RemainingCount(sel))
	v.Details = d
	return v
}

// SetCount updates only the remaining-count fields of d.
func SetCount(d *Details, remaining int) {
	if d == nil {
		return
	}
	d.Remaining = remaining
	d.Count = CountLabel(remaining)
}

// CountLabel formats the remaining-count line: "1 task remaining", "3 tasks remaining".
func CountLabel(n int) string {
	word := "tasks"
	if n == 1 {
		word = "task"
	}
	return fmt.Sprintf("%d %s remaining", n, word)
}
