package options

import (
	"github.com/spf13/cobra"
)

// DayOptions selects the day a command operates on.
type DayOptions struct {
	Day string
}

// AddDayArgs wires the day selection flag.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`ISO date to operate on, example: --day="2026-08-31". Defaults to the selected day.`)
}
