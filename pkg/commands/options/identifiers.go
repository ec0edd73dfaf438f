package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether entity ids are printed.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the show-id flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		`Print task and checklist item ids.`)
}
