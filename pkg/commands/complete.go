package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <task-id>",
		Short:   "Toggle a task done",
		Aliases: []string{"done", "x"},
		Example: `
weekplan complete seed-2026-08-31-0
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
			c := complete.Complete{ID: args[0], ShowID: io.ShowID, Store: st}
			return c.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
