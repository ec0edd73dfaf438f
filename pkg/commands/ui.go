package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive week planner",
		Example: `
weekplan ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			return tui.Run(st)
		},
	}

	topLevel.AddCommand(cmd)
}
