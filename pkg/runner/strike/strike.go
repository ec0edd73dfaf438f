// Package strike provides the runner logic for deleting tasks.
package strike

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Strike removes a task from the planner.
type Strike struct {
	ID     string
	ShowID bool

	Store *planner.Store
}

// Do deletes the configured task and reprints its day.
func (n *Strike) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not strike, no store")
	}

	day := ""
	if t, ok := n.Store.State().FindTask(n.ID); ok {
		day = t.Day
	}

	if err := n.Store.DeleteTask(n.ID); err != nil {
		return err
	}

	state := n.Store.State()
	if day == "" {
		day = state.SelectedDay
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Day(day, state.TasksOn(day))
	return nil
}
