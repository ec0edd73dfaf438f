// Package commands wires the weekplan CLI.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/seed"
	"tableflip.dev/weekplan/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weekplan",
		Short: base.Wrap80("Plan your week: tasks by day, bucket, and urgency, with a focus timer."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addCheck(topLevel)
	addStrike(topLevel)
	addEdit(topLevel)
	addFocus(topLevel)
	addWeek(topLevel)
	addDay(topLevel)
	addView(topLevel)
	addVersion(topLevel)
}

// loadStore opens persistence and builds the planner store, seeding a
// fresh week when nothing usable is stored.
func loadStore() (*planner.Store, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	today := calendar.Today()
	return planner.NewStore(p, planner.Initial(today, seed.Tasks(today))), nil
}
