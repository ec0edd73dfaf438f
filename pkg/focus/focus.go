// Package focus selects the active focus task and computes timer progress.
package focus

import (
	"math"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/task"
)

// Select picks the focus task from the given day's tasks: the incomplete
// task with the lowest (priority rank, minutes-from-time) key. The second
// return is false when every task is done and there is nothing to focus on.
func Select(tasks []task.Task) (task.Task, bool) {
	best := task.Task{}
	found := false
	for _, t := range tasks {
		if t.Done {
			continue
		}
		if !found || less(t, best) {
			best = t
			found = true
		}
	}
	return best, found
}

func less(a, b task.Task) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	return calendar.MinutesFromTime(a.Time) < calendar.MinutesFromTime(b.Time)
}

// Progress returns the focus completion percentage for display, clamped to
// [0,100]. The stored FocusMinutes value itself is never clamped here.
func Progress(t task.Task) int {
	duration := t.Duration
	if duration < 1 {
		duration = 1
	}
	pct := int(math.Round(float64(t.FocusMinutes) / float64(duration) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining returns the minutes left on the focus timer, never negative.
func Remaining(t task.Task) int {
	if r := t.Duration - t.FocusMinutes; r > 0 {
		return r
	}
	return 0
}

// ClampMinutes bounds a focus-minute value to [0, duration]. The nudge
// operation is the sole enforcement point for FocusMinutes <= Duration.
func ClampMinutes(minutes, duration int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > duration {
		return duration
	}
	return minutes
}
