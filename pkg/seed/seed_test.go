package seed

import (
	"reflect"
	"testing"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/task"
)

const today = "2024-01-03" // a Wednesday; week runs 2024-01-01..2024-01-07

func TestTasksDeterministic(t *testing.T) {
	first := Tasks(today)
	second := Tasks(today)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for repeated seeding")
	}
}

func TestTasksCount(t *testing.T) {
	tasks := Tasks(today)
	// 5 per day across 7 days, plus the Friday extra.
	if len(tasks) != 36 {
		t.Fatalf("expected 36 tasks, got %d", len(tasks))
	}
}

func TestTasksCoverTheWholeWeek(t *testing.T) {
	tasks := Tasks(today)
	days := calendar.WeekDays(calendar.StartOfWeek(today))
	perDay := map[string]int{}
	for _, tk := range tasks {
		perDay[tk.Day]++
	}
	for i, day := range days {
		want := 5
		if i == 4 {
			want = 6
		}
		if perDay[day] != want {
			t.Fatalf("day %s: expected %d tasks, got %d", day, want, perDay[day])
		}
	}
}

func TestFirstTaskTodayIsDone(t *testing.T) {
	for _, tk := range Tasks(today) {
		if tk.Day == today && tk.ID == "seed-"+today+"-0" {
			if !tk.Done {
				t.Fatalf("expected today's first template pre-marked done")
			}
			return
		}
	}
	t.Fatalf("did not find today's first template task")
}

func TestOtherTasksStartOpen(t *testing.T) {
	for _, tk := range Tasks(today) {
		if tk.ID == "seed-"+today+"-0" {
			continue
		}
		if tk.Done {
			t.Fatalf("expected %s to start open", tk.ID)
		}
	}
}

func TestIDsDeterministicAndUnique(t *testing.T) {
	tasks := Tasks(today)
	seen := map[string]bool{}
	for _, tk := range tasks {
		if tk.ID == "" {
			t.Fatalf("missing id on %q", tk.Title)
		}
		if seen[tk.ID] {
			t.Fatalf("duplicate id %s", tk.ID)
		}
		seen[tk.ID] = true
	}
	if !seen["seed-2024-01-05-5"] {
		t.Fatalf("expected the Friday extra task id")
	}
}

func TestSeedTasksAreValid(t *testing.T) {
	for _, tk := range Tasks(today) {
		if tk.Duration < task.MinDuration {
			t.Fatalf("%s: duration below floor", tk.ID)
		}
		if tk.FocusMinutes != 0 {
			t.Fatalf("%s: expected zero focus minutes", tk.ID)
		}
		if len(tk.Checklist) != 3 {
			t.Fatalf("%s: expected 3 checklist items, got %d", tk.ID, len(tk.Checklist))
		}
	}
}
