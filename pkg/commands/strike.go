package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "strike <task-id>",
		Short:   "Delete a task",
		Aliases: []string{"rm", "delete"},
		Example: `
weekplan strike seed-2026-08-31-3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			s := strike.Strike{ID: args[0], ShowID: io.ShowID, Store: st}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
