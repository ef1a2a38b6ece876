package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tasklist-cli/internal/format"
	"tasklist-cli/internal/session"
	"tasklist-cli/internal/store"
	"tasklist-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	DBPath     string
	Format     string
	PrettyJSON bool
	LogPath    string
	Verbose    bool

	logs *logSink
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tasklist",
		Short:        "Local task lists (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasklist

  # Scriptable commands
  tasklist lists add Groceries
  tasklist lists select <list-id>
  tasklist tasks add Milk
  tasklist show
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(strings.TrimSpace(app.Format)) {
		case "text", "json":
		default:
			return fmt.Errorf("invalid format %q: must be one of text|json", app.Format)
		}
		sink, err := openLogSink(app.LogPath, app.Verbose)
		if err != nil {
			return err
		}
		app.logs = sink
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.logs.Close()
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr("TASKLIST_DB", ""), "Path to the store (.sqlite, .json, or :memory:; default <config dir>/tasklist.sqlite)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKLIST_FORMAT", "text"), "Output format (text|json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogPath, "log", envOr("TASKLIST_LOG", ""), "Append logs to this file (default: discard)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newBackupCmd(app))
	cmd.AddCommand(newRestoreCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	sess, kv, err := openSession(ctx, app)
	if err != nil {
		return err
	}
	defer kv.Close()

	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	return tui.Run(ctx, sess, tui.Options{Config: cfg.TUI})
}

// openSession resolves the store path, opens the backend and loads state.
// Callers close the returned KV.
func openSession(ctx context.Context, app *App) (*session.Session, store.KV, error) {
	kv, path, err := openKV(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Open(ctx, store.NewAdapter(kv), app.logs.Logger())
	if err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sess, kv, nil
}

// openKV opens the raw backend without decoding it, so maintenance commands
// still work on a corrupt store.
func openKV(ctx context.Context, app *App) (store.KV, string, error) {
	path, err := store.ResolveDBPath(app.DBPath)
	if err != nil {
		return nil, "", err
	}
	kv, err := store.OpenKV(ctx, path)
	if err != nil {
		return nil, "", err
	}
	app.logs.Logger().Debug("store opened", "path", path)
	return kv, path, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
