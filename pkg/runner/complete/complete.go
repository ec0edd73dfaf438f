// Package complete provides the runner logic for toggling tasks done.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Complete toggles the done flag on a task.
type Complete struct {
	ID     string
	ShowID bool

	Store *planner.Store
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}

	if err := n.Store.ToggleDone(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	state := n.Store.State()
	if t, ok := state.FindTask(n.ID); ok {
		pp.Day(t.Day, state.TasksOn(t.Day))
	} else {
		pp.Day(state.SelectedDay, state.DayTasks())
	}
	return nil
}
