package planner

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/focus"
	"tableflip.dev/weekplan/pkg/task"
)

// SelectDay sets the selected day without touching the week anchor.
func SelectDay(s State, day string) State {
	s.SelectedDay = day
	return s
}

// ShiftWeek moves the visible week by direction weeks (+1 or -1). When the
// selected day falls outside the shifted week it resets to the new week
// start, so the selection never points outside the visible week.
func ShiftWeek(s State, direction int) State {
	s.WeekStart = calendar.AddDays(s.WeekStart, direction*7)
	inside := false
	for _, day := range calendar.WeekDays(s.WeekStart) {
		if day == s.SelectedDay {
			inside = true
			break
		}
	}
	if !inside {
		s.SelectedDay = s.WeekStart
	}
	return s
}

// SetMobileView switches the mobile projection.
func SetMobileView(s State, v View) State {
	s.MobileView = v
	return s
}

// ToggleCollapsed flips the collapsed flag for a priority section.
func ToggleCollapsed(s State, p task.Priority) State {
	collapsed := s.cloneCollapsed()
	collapsed[p] = !collapsed[p]
	s.CollapsedPriority = collapsed
	return s
}

// CreateTask appends a task built from the draft on the given day. A title
// that is blank after trimming is silently rejected and the state returned
// unchanged.
func CreateTask(s State, d task.Draft, day string) State {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return s
	}
	d = d.Normalize()
	checklist := task.DefaultChecklist(title, uuid.NewString)

	tasks := s.cloneTasks()
	tasks = append(tasks, task.Task{
		ID:        uuid.NewString(),
		Day:       day,
		Title:     title,
		Time:      d.Time,
		Duration:  d.Duration,
		Priority:  d.Priority,
		Bucket:    d.Bucket,
		Icon:      d.Icon,
		Color:     d.Color,
		Checklist: checklist,
	})
	s.Tasks = tasks
	return s
}

// UpdateTask replaces the draft-editable fields of the matching task. ID,
// day, done, and checklist are untouched. The duration floor is re-applied,
// and accumulated focus minutes are re-clamped in case the duration shrank
// below them.
func UpdateTask(s State, id string, d task.Draft) State {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return s
	}
	d = d.Normalize()
	return mapTask(s, id, func(t task.Task) task.Task {
		t.Title = title
		t.Time = d.Time
		t.Duration = d.Duration
		t.Priority = d.Priority
		t.Bucket = d.Bucket
		t.Icon = d.Icon
		t.Color = d.Color
		t.FocusMinutes = focus.ClampMinutes(t.FocusMinutes, t.Duration)
		return t
	})
}

// DeleteTask removes the matching task, a no-op when the id is absent.
func DeleteTask(s State, id string) State {
	tasks := make([]task.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	return s
}

// ToggleDone flips the done flag on the matching task.
func ToggleDone(s State, id string) State {
	return mapTask(s, id, func(t task.Task) task.Task {
		t.Done = !t.Done
		return t
	})
}

// ToggleChecklistItem flips one checklist item's done flag. Unknown task or
// item ids are silent no-ops.
func ToggleChecklistItem(s State, taskID, itemID string) State {
	return mapTask(s, taskID, func(t task.Task) task.Task {
		checklist := make([]task.ChecklistItem, len(t.Checklist))
		copy(checklist, t.Checklist)
		for i, item := range checklist {
			if item.ID == itemID {
				checklist[i].Done = !item.Done
			}
		}
		t.Checklist = checklist
		return t
	})
}

// NudgeFocus adjusts the focus timer by delta minutes, clamped to
// [0, duration] whatever the delta's magnitude or sign.
func NudgeFocus(s State, id string, delta int) State {
	return mapTask(s, id, func(t task.Task) task.Task {
		t.FocusMinutes = focus.ClampMinutes(t.FocusMinutes+delta, t.Duration)
		return t
	})
}

// mapTask rewrites the task with the given id through fn on a cloned task
// slice. The prior snapshot is never mutated.
func mapTask(s State, id string, fn func(task.Task) task.Task) State {
	tasks := s.cloneTasks()
	for i, t := range tasks {
		if t.ID == id {
			tasks[i] = fn(t)
			break
		}
	}
	s.Tasks = tasks
	return s
}
