// Package check provides the runner logic for ticking checklist items.
package check

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Check toggles one checklist item on a task.
type Check struct {
	TaskID string
	ItemID string
	ShowID bool

	Store *planner.Store
}

// Do flips the item and reprints the focus panel for the task's day.
func (n *Check) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not check, no store")
	}

	if err := n.Store.ToggleChecklistItem(n.TaskID, n.ItemID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	state := n.Store.State()
	if t, ok := state.FindTask(n.TaskID); ok {
		pp.Focus(state.TasksOn(t.Day))
	}
	return nil
}
