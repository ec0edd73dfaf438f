// Package focus provides the runner logic for the focus timer.
package focus

import (
	"context"
	"errors"

	focuspkg "tableflip.dev/weekplan/pkg/focus"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Focus shows the selected day's focus task, optionally nudging its timer
// first.
type Focus struct {
	Nudge  int
	ShowID bool

	Store *planner.Store
}

// Do applies the nudge (when non-zero) to the current focus task and
// prints the focus panel.
func (n *Focus) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not focus, no store")
	}

	if n.Nudge != 0 {
		if t, ok := focuspkg.Select(n.Store.State().DayTasks()); ok {
			if err := n.Store.NudgeFocus(t.ID, n.Nudge); err != nil {
				return err
			}
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Focus(n.Store.State().DayTasks())
	return nil
}
