package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekplan/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "week [next|prev]",
		Short:     "Show the week, optionally shifting it",
		ValidArgs: []string{"next", "prev"},
		Example: `
weekplan week
weekplan week next
weekplan week prev
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one of next or prev")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shift := 0
			if len(args) == 1 {
				switch args[0] {
				case "next":
					shift = 1
				case "prev":
					shift = -1
				default:
					return errors.New("expected next or prev")
				}
			}
			st, err := loadStore()
			if err != nil {
				return err
			}
			w := week.Week{Shift: shift, Store: st}
			return w.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "day <iso-date>",
		Short: "Select the working day",
		Example: `
weekplan day 2026-08-31
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one ISO date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			w := week.Week{Day: args[0], Store: st}
			return w.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "view <myday|priority>",
		Short:     "Switch the mobile projection",
		ValidArgs: []string{"myday", "priority"},
		Example: `
weekplan view priority
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected myday or priority")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore()
			if err != nil {
				return err
			}
			w := week.Week{View: args[0], Store: st}
			return w.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
