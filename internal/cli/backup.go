package cli

import (
	"fmt"

	"tasklist-cli/internal/store"

	"github.com/spf13/cobra"
)

type backupResult struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

func (r backupResult) Text() string {
	return fmt.Sprintf("%s (%d entries)", r.Path, r.Entries)
}

func newBackupCmd(app *App) *cobra.Command {
	var to string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the persisted entries to a JSON backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, _, err := openKV(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			b, err := store.ExportBackup(cmd.Context(), kv)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.WriteBackupFile(to, b, overwrite); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, backupResult{Path: to, Entries: len(b.Entries)})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Backup file path")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRestoreCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the persisted entries with a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := store.ReadBackupFile(from)
			if err != nil {
				return writeErr(cmd, err)
			}
			kv, _, err := openKV(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			if err := store.RestoreBackup(cmd.Context(), kv, b); err != nil {
				return writeErr(cmd, err)
			}
			app.logs.Logger().Info("restored backup", "from", from, "entries", len(b.Entries))
			return writeOut(cmd, app, backupResult{Path: from, Entries: len(b.Entries)})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Backup file path")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
