package cli

import (
	"strings"

	"tasklist-cli/internal/publish"

	"github.com/spf13/cobra"
)

type exportResult publish.WriteResult

func (r exportResult) Text() string { return strings.Join(r.Written, "\n") }

func newExportCmd(app *App) *cobra.Command {
	var to string
	var html bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every list to a Markdown (or HTML) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, kv, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			res, err := publish.WriteState(sess.State, to, publish.WriteOptions{HTML: html, Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, exportResult(res))
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output file path")
	cmd.Flags().BoolVar(&html, "html", false, "Write HTML instead of Markdown")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
