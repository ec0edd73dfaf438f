package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "check <task-id> <item-id>",
		Short: "Toggle a checklist item",
		Example: `
weekplan check seed-2026-08-31-0 seed-2026-08-31-0-check-1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("expected a task id and an item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			c := check.Check{TaskID: args[0], ItemID: args[1], ShowID: io.ShowID, Store: st}
			return c.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
