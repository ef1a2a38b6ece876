package cli

import (
	"fmt"
	"strings"

	"tasklist-cli/internal/model"

	"github.com/spf13/cobra"
)

type taskRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type taskRows []taskRow

func (rs taskRows) Text() string {
	if len(rs) == 0 {
		return "No tasks."
	}
	var b strings.Builder
	for _, r := range rs {
		box := "[ ]"
		if r.Complete {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%s %s  %s\n", box, r.Name, r.ID)
	}
	return b.String()
}

func toTaskRows(l *model.List) taskRows {
	out := taskRows{}
	if l == nil {
		return out
	}
	for _, t := range l.Tasks {
		out = append(out, taskRow{ID: t.ID, Name: t.Name, Complete: t.Complete})
	}
	return out
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksLsCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksSetCompleteCmd(app, "done", "Mark a task complete", true))
	cmd.AddCommand(newTasksSetCompleteCmd(app, "undone", "Mark a task incomplete", false))
	return cmd
}

func newTasksLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [<list-id>]",
		Short: "Show the tasks of a list (default: the selected list)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			l, err := targetList(sess, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, toTaskRows(l))
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var listID string
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task (default: to the selected list)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			var target []string
			if strings.TrimSpace(listID) != "" {
				target = []string{listID}
			}
			l, err := targetList(sess, target)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, ok, err := sess.AddTask(cmd.Context(), l.ID, strings.Join(args, " "))
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNameRequired)
			}
			return writeOut(cmd, app, idResult{ID: id})
		},
	}
	cmd.Flags().StringVar(&listID, "list", "", "List id (default: the selected list)")
	return cmd
}

func newTasksSetCompleteCmd(app *App, use, short string, complete bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			id := strings.TrimSpace(args[0])
			if err := sess.SetTaskComplete(cmd.Context(), id, complete); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, idResult{ID: id})
		},
	}
}
