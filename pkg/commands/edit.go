package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/commands/options"
	"tableflip.dev/weekplan/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DraftOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task-id> <title>",
		Short: "Replace the editable fields of a task",
		Example: `
weekplan edit seed-2026-08-31-1 Inbox zero --time 08:30 --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected a task id and a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := do.Draft(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			st, err := loadStore()
			if err != nil {
				return err
			}
			e := edit.Edit{ID: args[0], Draft: draft, Store: st}
			return e.Do(context.Background())
		},
	}

	options.AddDraftArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
