// Package edit provides the runner logic for updating tasks.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/task"
)

// Edit replaces the draft-editable fields of a task.
type Edit struct {
	ID    string
	Draft task.Draft

	Store *planner.Store
}

// Do applies the edit and reprints the task's day.
func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}

	if err := n.Store.UpdateTask(n.ID, n.Draft); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	state := n.Store.State()
	if t, ok := state.FindTask(n.ID); ok {
		pp.Day(t.Day, state.TasksOn(t.Day))
	}
	return nil
}
