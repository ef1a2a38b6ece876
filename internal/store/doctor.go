package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tasklist-cli/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Key     string           `json:"key,omitempty"`
	ListID  string           `json:"listId,omitempty"`
	TaskID  string           `json:"taskId,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

func (r DoctorReport) Text() string {
	if len(r.Issues) == 0 {
		return "No issues found."
	}
	var b strings.Builder
	for _, it := range r.Issues {
		fmt.Fprintf(&b, "%-5s %s: %s\n", it.Level, it.Code, it.Message)
	}
	return b.String()
}

var ErrDoctorIssuesFound = errors.New("doctor: issues found")

// Doctor inspects the raw persisted entries without loading them into a
// session. Problems are reported as issues, not returned as errors; only a
// backend read failure is an error.
func Doctor(ctx context.Context, kv KV) (DoctorReport, error) {
	var issues []DoctorIssue

	raw, ok, err := kv.Get(ctx, KeyLists)
	if err != nil {
		return DoctorReport{}, fmt.Errorf("read %s: %w", KeyLists, err)
	}
	var lists []model.List
	if ok && strings.TrimSpace(raw) != "" {
		lists, issues = doctorLists(raw)
		if lists == nil && len(issues) > 0 {
			return DoctorReport{Issues: issues}, nil
		}
	}

	sel, ok, err := kv.Get(ctx, KeySelectedListID)
	if err != nil {
		return DoctorReport{}, fmt.Errorf("read %s: %w", KeySelectedListID, err)
	}
	if id := decodeSelection(sel); ok && id != "" {
		found := false
		for _, l := range lists {
			if l.ID == id {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "selection_stale",
				Message: fmt.Sprintf("selected list %s does not exist; it will read as no selection", id),
				Key:     KeySelectedListID,
				ListID:  id,
			})
		}
	}

	return DoctorReport{Issues: issuesOrEmpty(issues)}, nil
}

func doctorLists(raw string) ([]model.List, []DoctorIssue) {
	var issues []DoctorIssue

	var lists []model.List
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return nil, []DoctorIssue{{
			Level:   DoctorIssueLevelError,
			Code:    "lists_invalid_json",
			Message: err.Error(),
			Key:     KeyLists,
		}}
	}

	listIDs := map[string]bool{}
	taskIDs := map[string]string{}
	for _, l := range lists {
		switch {
		case strings.TrimSpace(l.ID) == "":
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "list_missing_id",
				Message: fmt.Sprintf("list %q has no id", l.Name),
				Key:     KeyLists,
			})
		case listIDs[l.ID]:
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "list_duplicate_id",
				Message: fmt.Sprintf("list id %s is used more than once", l.ID),
				Key:     KeyLists,
				ListID:  l.ID,
			})
		}
		listIDs[l.ID] = true

		if strings.TrimSpace(l.Name) == "" {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "list_blank_name",
				Message: fmt.Sprintf("list %s has a blank name", l.ID),
				Key:     KeyLists,
				ListID:  l.ID,
			})
		}
		if l.Tasks == nil {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "list_tasks_null",
				Message: fmt.Sprintf("list %s has no tasks array; it reads as empty", l.ID),
				Key:     KeyLists,
				ListID:  l.ID,
			})
		}

		for _, t := range l.Tasks {
			if strings.TrimSpace(t.ID) == "" {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "task_missing_id",
					Message: fmt.Sprintf("task %q in list %s has no id", t.Name, l.ID),
					Key:     KeyLists,
					ListID:  l.ID,
				})
				continue
			}
			if owner, dup := taskIDs[t.ID]; dup {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "task_duplicate_id",
					Message: fmt.Sprintf("task id %s appears in lists %s and %s", t.ID, owner, l.ID),
					Key:     KeyLists,
					ListID:  l.ID,
					TaskID:  t.ID,
				})
			}
			taskIDs[t.ID] = l.ID
		}
	}
	if lists == nil {
		lists = []model.List{}
	}
	return lists, issues
}

func issuesOrEmpty(issues []DoctorIssue) []DoctorIssue {
	if issues == nil {
		return []DoctorIssue{}
	}
	return issues
}
