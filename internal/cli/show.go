package cli

import (
	"io"

	"tasklist-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var raw bool
	var width int
	var style string

	cmd := &cobra.Command{
		Use:   "show [<list-id>]",
		Short: "Render a list as Markdown (default: the selected list)",
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
			md := publish.RenderListMarkdown(*l)
			if app.Format == "json" {
				return writeOut(cmd, app, map[string]string{"id": l.ID, "markdown": md})
			}
			if !raw {
				md = publish.RenderTerminal(md, width, style)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), md)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print plain Markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for styled output")
	cmd.Flags().StringVar(&style, "style", envOr("TASKLIST_MARKDOWN_STYLE", "dark"), "Glamour style (dark|light|notty|ascii)")
	return cmd
}
