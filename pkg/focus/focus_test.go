package focus

import (
	"testing"

	"tableflip.dev/weekplan/pkg/task"
)

func TestSelectPriorityBeatsTime(t *testing.T) {
	tasks := []task.Task{
		{ID: "early-low", Priority: task.PriorityLow, Time: "08:00"},
		{ID: "late-high", Priority: task.PriorityHigh, Time: "20:00"},
	}
	got, ok := Select(tasks)
	if !ok {
		t.Fatalf("expected a selection")
	}
	if got.ID != "late-high" {
		t.Fatalf("expected high priority to win despite later time, got %s", got.ID)
	}
}

func TestSelectEarlierTimeBreaksTies(t *testing.T) {
	tasks := []task.Task{
		{ID: "later", Priority: task.PriorityHigh, Time: "14:00"},
		{ID: "earlier", Priority: task.PriorityHigh, Time: "09:00"},
	}
	got, ok := Select(tasks)
	if !ok || got.ID != "earlier" {
		t.Fatalf("expected earlier task, got %+v (%v)", got, ok)
	}
}

func TestSelectSkipsDone(t *testing.T) {
	tasks := []task.Task{
		{ID: "done-high", Priority: task.PriorityHigh, Time: "08:00", Done: true},
		{ID: "open-low", Priority: task.PriorityLow, Time: "18:00"},
	}
	got, ok := Select(tasks)
	if !ok || got.ID != "open-low" {
		t.Fatalf("expected the open task, got %+v (%v)", got, ok)
	}
}

func TestSelectEmptyWhenAllDone(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Done: true},
		{ID: "b", Done: true},
	}
	if _, ok := Select(tasks); ok {
		t.Fatalf("expected no selection when everything is done")
	}
	if _, ok := Select(nil); ok {
		t.Fatalf("expected no selection for empty input")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		focus    int
		duration int
		want     int
	}{
		{0, 60, 0},
		{30, 60, 50},
		{20, 30, 67}, // rounds
		{60, 60, 100},
		{90, 60, 100}, // display clamp when invariant was violated
		{10, 0, 100},  // duration floor of 1 avoids dividing by zero
	}
	for _, tc := range tests {
		got := Progress(task.Task{FocusMinutes: tc.focus, Duration: tc.duration})
		if got != tc.want {
			t.Fatalf("Progress(%d/%d): expected %d, got %d", tc.focus, tc.duration, tc.want, got)
		}
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(task.Task{Duration: 60, FocusMinutes: 45}); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	if got := Remaining(task.Task{Duration: 30, FocusMinutes: 45}); got != 0 {
		t.Fatalf("expected remaining never negative, got %d", got)
	}
}

func TestClampMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		duration int
		want     int
	}{
		{-5, 60, 0},
		{0, 60, 0},
		{30, 60, 30},
		{60, 60, 60},
		{1000, 60, 60},
	}
	for _, tc := range tests {
		if got := ClampMinutes(tc.minutes, tc.duration); got != tc.want {
			t.Fatalf("ClampMinutes(%d, %d): expected %d, got %d", tc.minutes, tc.duration, tc.want, got)
		}
	}
}
