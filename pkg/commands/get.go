package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	dayo := &options.DayOptions{}
	io := &options.IDOptions{}
	week := false
	priority := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the planner",
		Example: `
weekplan get
weekplan get --day 2026-08-31
weekplan get --priority
weekplan get --week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			g := get.Get{
				Day:      dayo.Day,
				Week:     week,
				Priority: priority,
				ShowID:   io.ShowID,
				Store:    st,
			}
			return g.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&week, "week", "w", false, "Show the week summary table.")
	cmd.Flags().BoolVar(&priority, "priority", false, "Group the day by priority instead of bucket.")
	options.AddDayArgs(cmd, dayo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
