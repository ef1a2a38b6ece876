package mutate

import "tasklist-cli/internal/model"

// CreateTask builds an incomplete task with a fresh id.
func CreateTask(name string) model.Task {
	return model.Task{ID: NewID(), Name: name, Complete: false}
}

func AppendTask(l *model.List, t model.Task) *model.Task {
	l.Tasks = append(l.Tasks, t)
	return &l.Tasks[len(l.Tasks)-1]
}

// FindTask returns a pointer into l.Tasks.
func FindTask(l *model.List, id string) (*model.Task, bool) {
	if l == nil || id == "" {
		return nil, false
	}
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i], true
		}
	}
	return nil, false
}

// FindTaskAnywhere searches every list; used by the CLI where the task id is the only handle.
func FindTaskAnywhere(st *model.State, id string) (*model.List, *model.Task, bool) {
	for i := range st.Lists {
		if t, ok := FindTask(&st.Lists[i], id); ok {
			return &st.Lists[i], t, true
		}
	}
	return nil, nil, false
}

func ToggleTaskComplete(t *model.Task, value bool) {
	t.Complete = value
}

// ClearCompletedTasks drops completed tasks and keeps the order of the rest.
// It returns the number of tasks removed.
func ClearCompletedTasks(l *model.List) int {
	kept := make([]model.Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if !t.Complete {
			kept = append(kept, t)
		}
	}
	n := len(l.Tasks) - len(kept)
	l.Tasks = kept
	return n
}

// RemainingCount is the number of incomplete tasks in l.
func RemainingCount(l *model.List) int {
	if l == nil {
		return 0
	}
	n := 0
	for _, t := range l.Tasks {
		if !t.Complete {
			n++
		}
	}
	return n
}
