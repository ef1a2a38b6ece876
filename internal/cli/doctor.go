package cli

import (
	"tasklist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the persisted lists and selection for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, _, err := openKV(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			report, err := store.Doctor(cmd.Context(), kv)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := writeOut(cmd, app, report); err != nil {
				return err
			}
			if fail && report.HasErrors() {
				return store.ErrDoctorIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with non-zero status if errors are found")
	return cmd
}
