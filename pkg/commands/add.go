package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	dayo := &options.DayOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a day",
		Example: `
weekplan add Water the plants
weekplan add Standup --time 09:30 --duration 15 --priority high --bucket morning
weekplan add --interactive
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := do.Draft(strings.Join(args, " "))
			if err != nil {
				return err
			}

			st, err := loadStore()
			if err != nil {
				return err
			}

			day := dayo.Day
			if day == "" {
				day = st.State().SelectedDay
			}

			a := add.Add{
				Draft:       draft,
				Day:         day,
				Interactive: io.Interactive,
				Store:       st,
			}
			return a.Do(context.Background())
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddDayArgs(cmd, dayo)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
