package session

import (
	"context"

	"tasklist-cli/internal/mutate"
)

// SelectList makes id the selected list.
func (s *Session) SelectList(ctx context.Context, id string) (Effect, error) {
	if err := mutate.SelectList(s.State, id); err != nil {
		return EffectNone, err
	}
	return EffectFull, s.persist(ctx, "select_list")
}

// ToggleTask sets the completion of a task in the selected list. Only the count
// needs redrawing afterwards.
//
// A task id that does not resolve is a logic error; it is logged and ignored so
// the UI keeps running.
func (s *Session) ToggleTask(ctx context.Context, taskID string, complete bool) (Effect, error) {
	sel, ok := s.Selected()
	if !ok {
		s.Logger.Error("toggle without a selected list", "task", taskID)
		return EffectNone, nil
	}
	t, ok := mutate.FindTask(sel, taskID)
	if !ok {
		s.Logger.Error("toggle of unknown task", "list", sel.ID, "task", taskID)
		return EffectNone, nil
	}
	mutate.ToggleTaskComplete(t, complete)
	return EffectCount, s.persist(ctx, "toggle_task")
}

// SubmitNewList creates and appends a list. Blank names are a no-op: ok is false
// and nothing is persisted.
func (s *Session) SubmitNewList(ctx context.Context, name string) (id string, ok bool, err error) {
	name, ok = cleanName(name)
	if !ok {
		return "", false, nil
	}
	l := mutate.AppendList(s.State, mutate.CreateList(name))
	id = l.ID
	return id, true, s.persist(ctx, "new_list")
}

// SubmitNewTask appends a task to the selected list. Blank names, or no selected
// list, are a no-op.
func (s *Session) SubmitNewTask(ctx context.Context, name string) (id string, ok bool, err error) {
	sel, found := s.Selected()
	if !found {
		return "", false, nil
	}
	return s.addTask(ctx, sel.ID, name)
}

// AddTask appends a task to the list with the given id.
func (s *Session) AddTask(ctx context.Context, listID, name string) (id string, ok bool, err error) {
	if _, found := mutate.FindList(s.State, listID); !found {
		return "", false, mutate.NotFoundError{Kind: "list", ID: listID}
	}
	return s.addTask(ctx, listID, name)
}

func (s *Session) addTask(ctx context.Context, listID, name string) (string, bool, error) {
	name, ok := cleanName(name)
	if !ok {
		return "", false, nil
	}
	l, _ := mutate.FindList(s.State, listID)
	t := mutate.AppendTask(l, mutate.CreateTask(name))
	return t.ID, true, s.persist(ctx, "new_task")
}

// ClearCompleted drops completed tasks from the selected list.
func (s *Session) ClearCompleted(ctx context.Context) (Effect, error) {
	sel, ok := s.Selected()
	if !ok {
		return EffectNone, nil
	}
	return s.ClearCompletedIn(ctx, sel.ID)
}

func (s *Session) ClearCompletedIn(ctx context.Context, listID string) (Effect, error) {
	l, ok := mutate.FindList(s.State, listID)
	if !ok {
		return EffectNone, mutate.NotFoundError{Kind: "list", ID: listID}
	}
	n := mutate.ClearCompletedTasks(l)
	s.Logger.Debug("cleared completed", "list", listID, "removed", n)
	return EffectFull, s.persist(ctx, "clear_completed")
}

// DeleteSelectedList removes the selected list and clears the selection.
func (s *Session) DeleteSelectedList(ctx context.Context) (Effect, error) {
	sel, ok := s.Selected()
	if !ok {
		return EffectNone, nil
	}
	return s.DeleteList(ctx, sel.ID)
}

func (s *Session) DeleteList(ctx context.Context, listID string) (Effect, error) {
	if !mutate.DeleteList(s.State, listID) {
		return EffectNone, mutate.NotFoundError{Kind: "list", ID: listID}
	}
	return EffectFull, s.persist(ctx, "delete_list")
}

// SetTaskComplete is the CLI form of ToggleTask: the task may live in any list.
func (s *Session) SetTaskComplete(ctx context.Context, taskID string, complete bool) error {
	_, t, ok := mutate.FindTaskAnywhere(s.State, taskID)
	if !ok {
		return mutate.NotFoundError{Kind: "task", ID: taskID}
	}
	mutate.ToggleTaskComplete(t, complete)
	return s.persist(ctx, "set_task_complete")
}
