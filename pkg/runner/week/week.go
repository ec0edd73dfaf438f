// Package week provides the runner logic for planner navigation: shifting
// the visible week, selecting a day, and switching the mobile view.
package week

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Week applies navigation changes and prints the week summary.
type Week struct {
	Shift int    // ±1 weeks, 0 leaves the anchor alone
	Day   string // ISO date to select, empty leaves the selection alone
	View  string // myday or priority, empty leaves the view alone

	Store *planner.Store
}

// Do applies the requested navigation in order: view, day, then shift.
func (n *Week) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not navigate, no store")
	}

	if n.View != "" {
		v, err := planner.ParseView(n.View)
		if err != nil {
			return err
		}
		if err := n.Store.SetMobileView(v); err != nil {
			return err
		}
	}
	if n.Day != "" {
		if err := n.Store.SelectDay(n.Day); err != nil {
			return err
		}
	}
	if n.Shift != 0 {
		if err := n.Store.ShiftWeek(n.Shift); err != nil {
			return err
		}
	}

	state := n.Store.State()
	pp := printers.PrettyPrint{}
	pp.Week(state.WeekStart, state.Tasks, state.SelectedDay)
	return nil
}
