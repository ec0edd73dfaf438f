// Package planner owns the persisted planner state and its mutation
// operations. Every operation is a pure function from old state to new
// state; the Store applies one and saves the whole result, so no partial
// update is ever visible.
package planner

import (
	"fmt"
	"strings"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/task"
)

// View identifies which projection the mobile layout shows.
type View string

const (
	ViewMyDay    View = "myday"
	ViewPriority View = "priority"
)

// AllViews returns the supported mobile views.
func AllViews() []View {
	return []View{ViewMyDay, ViewPriority}
}

// ParseView converts a string to a View. Empty input maps to myday.
func ParseView(raw string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return ViewMyDay, nil
	}
	for _, candidate := range AllViews() {
		if candidate == v {
			return candidate, nil
		}
	}
	return ViewMyDay, fmt.Errorf("planner: unknown view %q", raw)
}

// State is the persisted planner root. Field names are frozen so stored
// blobs stay loadable across releases.
type State struct {
	SelectedDay       string                 `json:"selectedDay"`
	WeekStart         string                 `json:"weekStart"`
	MobileView        View                   `json:"mobileView"`
	CollapsedPriority map[task.Priority]bool `json:"collapsedPriority"`
	Tasks             []task.Task            `json:"tasks"`
}

// Initial assembles the first-run state for the given local date. WeekStart
// is always the Monday-aligned anchor of the week containing today.
func Initial(today string, tasks []task.Task) State {
	collapsed := make(map[task.Priority]bool, len(task.AllPriorities()))
	for _, p := range task.AllPriorities() {
		collapsed[p] = false
	}
	return State{
		SelectedDay:       today,
		WeekStart:         calendar.StartOfWeek(today),
		MobileView:        ViewMyDay,
		CollapsedPriority: collapsed,
		Tasks:             tasks,
	}
}

// DayTasks returns the sorted tasks for the selected day.
func (s State) DayTasks() []task.Task {
	return task.Sort(task.ForDay(s.Tasks, s.SelectedDay))
}

// TasksOn returns the sorted tasks for an arbitrary day.
func (s State) TasksOn(day string) []task.Task {
	return task.Sort(task.ForDay(s.Tasks, day))
}

// WeekDays returns the 7 dates of the visible week.
func (s State) WeekDays() []string {
	return calendar.WeekDays(s.WeekStart)
}

// FindTask looks up a task by id.
func (s State) FindTask(id string) (task.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

func (s State) cloneTasks() []task.Task {
	tasks := make([]task.Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return tasks
}

func (s State) cloneCollapsed() map[task.Priority]bool {
	collapsed := make(map[task.Priority]bool, len(s.CollapsedPriority))
	for p, v := range s.CollapsedPriority {
		collapsed[p] = v
	}
	return collapsed
}
