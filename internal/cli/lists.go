package cli

import (
	"fmt"
	"strings"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/session"

	"github.com/spf13/cobra"
)

type listRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Tasks     int    `json:"tasks"`
	Remaining int    `json:"remaining"`
	Selected  bool   `json:"selected"`
}

type listRows []listRow

func (rs listRows) Text() string {
	if len(rs) == 0 {
		return "No lists."
	}
	var b strings.Builder
	for _, r := range rs {
		mark := " "
		if r.Selected {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s  (%d/%d open)  %s\n", mark, r.Name, r.Remaining, r.Tasks, r.ID)
	}
	return b.String()
}

func toListRows(st *model.State) listRows {
	out := listRows{}
	for i := range st.Lists {
		l := &st.Lists[i]
		out = append(out, listRow{
			ID:        l.ID,
			Name:      l.Name,
			Tasks:     len(l.Tasks),
			Remaining: mutate.RemainingCount(l),
			Selected:  st.SelectedListID == l.ID,
		})
	}
	return out
}

type idResult struct {
	ID string `json:"id"`
}

func (r idResult) Text() string { return r.ID }

func newListsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsLs(cmd, app)
		},
	}
	cmd.AddCommand(newListsLsCmd(app))
	cmd.AddCommand(newListsAddCmd(app))
	cmd.AddCommand(newListsSelectCmd(app))
	cmd.AddCommand(newListsRmCmd(app))
	cmd.AddCommand(newListsClearCmd(app))
	return cmd
}

func newListsLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show all lists (* marks the selected one)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsLs(cmd, app)
		},
	}
}

func runListsLs(cmd *cobra.Command, app *App) error {
	sess, kv, err := openSession(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer kv.Close()
	return writeOut(cmd, app, toListRows(sess.State))
}

func newListsAddCmd(app *App) *cobra.Command {
	var sel bool
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Create a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			id, ok, err := sess.SubmitNewList(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNameRequired)
			}
			if sel {
				if _, err := sess.SelectList(cmd.Context(), id); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, idResult{ID: id})
		},
	}
	cmd.Flags().BoolVar(&sel, "select", false, "Select the new list")
	return cmd
}

func newListsSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <list-id>",
		Short: "Select a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			id := strings.TrimSpace(args[0])
			if _, err := sess.SelectList(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, idResult{ID: id})
		},
	}
}

// targetList resolves an optional list-id argument, defaulting to the selection.
func targetList(sess *session.Session, args []string) (*model.List, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		id := strings.TrimSpace(args[0])
		l, ok := mutate.FindList(sess.State, id)
		if !ok {
			return nil, errNotFound("list", id)
		}
		return l, nil
	}
	l, ok := sess.Selected()
	if !ok {
		return nil, errNoSelection
	}
	return l, nil
}

func newListsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [<list-id>]",
		Short: "Delete a list (default: the selected list)",
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
			id := l.ID
			if _, err := sess.DeleteList(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, idResult{ID: id})
		},
	}
}

func newListsClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [<list-id>]",
		Short: "Remove completed tasks from a list (default: the selected list)",
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
			id := l.ID
			if _, err := sess.ClearCompletedIn(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			l, _ = mutate.FindList(sess.State, id)
			return writeOut(cmd, app, toTaskRows(l))
		},
	}
}
