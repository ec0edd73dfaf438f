package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	nudge := 0

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show the focus task for the selected day",
		Example: `
weekplan focus
weekplan focus --nudge 5
weekplan focus --nudge -5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			f := focus.Focus{Nudge: nudge, ShowID: io.ShowID, Store: st}
			return f.Do(context.Background())
		},
	}

	cmd.Flags().IntVarP(&nudge, "nudge", "n", 0,
		"Adjust the focus timer by this many minutes, clamped to the task duration.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
