// Package get provides the runner logic for showing planner views.
package get

import (
	"context"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Get renders a day, priority, or week view of the planner.
type Get struct {
	Day      string
	Week     bool
	Priority bool
	ShowID   bool

	Store *planner.Store
}

// Do prints the requested view.
func (n *Get) Do(ctx context.Context) error {
	state := n.Store.State()
	day := n.Day
	if day == "" {
		day = state.SelectedDay
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	switch {
	case n.Week:
		pp.Week(state.WeekStart, state.Tasks, state.SelectedDay)
	case n.Priority:
		pp.Priorities(day, state.TasksOn(day), state.CollapsedPriority)
	default:
		pp.Day(day, state.TasksOn(day))
	}
	return nil
}
