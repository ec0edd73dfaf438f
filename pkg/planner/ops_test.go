package planner

import (
	"strings"
	"testing"

	"tableflip.dev/weekplan/pkg/task"
)

func baseState() State {
	return Initial("2024-01-03", []task.Task{
		{ID: "t1", Day: "2024-01-03", Title: "Write report", Duration: 60, Priority: task.PriorityHigh, Bucket: task.BucketDay,
			Checklist: []task.ChecklistItem{{ID: "c1", Label: "outline"}, {ID: "c2", Label: "draft"}}},
		{ID: "t2", Day: "2024-01-03", Title: "Walk", Duration: 20, Priority: task.PriorityLow, Bucket: task.BucketAnytime},
	})
}

func TestInitialAnchorsWeek(t *testing.T) {
	s := Initial("2024-01-03", nil)
	if s.WeekStart != "2024-01-01" {
		t.Fatalf("expected Monday anchor, got %s", s.WeekStart)
	}
	if s.SelectedDay != "2024-01-03" {
		t.Fatalf("expected selected day preserved, got %s", s.SelectedDay)
	}
	if s.MobileView != ViewMyDay {
		t.Fatalf("expected myday view, got %s", s.MobileView)
	}
	for _, p := range task.AllPriorities() {
		if s.CollapsedPriority[p] {
			t.Fatalf("expected %s expanded by default", p)
		}
	}
}

func TestSelectDayLeavesWeekStart(t *testing.T) {
	s := SelectDay(baseState(), "2024-02-20")
	if s.SelectedDay != "2024-02-20" {
		t.Fatalf("expected selection moved, got %s", s.SelectedDay)
	}
	if s.WeekStart != "2024-01-01" {
		t.Fatalf("expected week anchor untouched, got %s", s.WeekStart)
	}
}

func TestShiftWeekResetsOutOfRangeSelection(t *testing.T) {
	s := baseState() // weekStart 2024-01-01, selectedDay 2024-01-03
	s = ShiftWeek(s, 1)
	if s.WeekStart != "2024-01-08" {
		t.Fatalf("expected week start 2024-01-08, got %s", s.WeekStart)
	}
	if s.SelectedDay != "2024-01-08" {
		t.Fatalf("expected selection reset to new week start, got %s", s.SelectedDay)
	}
}

func TestShiftWeekPreservesInRangeSelection(t *testing.T) {
	s := baseState()
	s.SelectedDay = "2024-01-10" // inside the next week
	s = ShiftWeek(s, 1)
	if s.SelectedDay != "2024-01-10" {
		t.Fatalf("expected in-range selection preserved, got %s", s.SelectedDay)
	}
}

func TestShiftWeekBackAndForth(t *testing.T) {
	s := baseState()
	s = ShiftWeek(ShiftWeek(s, 1), -1)
	if s.WeekStart != "2024-01-01" {
		t.Fatalf("expected original anchor, got %s", s.WeekStart)
	}
}

func TestToggleCollapsed(t *testing.T) {
	before := baseState()
	after := ToggleCollapsed(before, task.PriorityHigh)
	if !after.CollapsedPriority[task.PriorityHigh] {
		t.Fatalf("expected high collapsed")
	}
	if before.CollapsedPriority[task.PriorityHigh] {
		t.Fatalf("prior snapshot was mutated")
	}
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	before := baseState()
	after := CreateTask(before, task.Draft{Title: "  "}, "2024-01-03")
	if len(after.Tasks) != len(before.Tasks) {
		t.Fatalf("expected whitespace title rejected, got %d tasks", len(after.Tasks))
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	s := CreateTask(baseState(), task.Draft{Title: "  Call Mom ", Duration: 1}, "2024-01-04")
	created := s.Tasks[len(s.Tasks)-1]
	if created.Title != "Call Mom" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Day != "2024-01-04" {
		t.Fatalf("expected day set, got %s", created.Day)
	}
	if created.Duration != task.MinDuration {
		t.Fatalf("expected duration clamped to %d, got %d", task.MinDuration, created.Duration)
	}
	if created.Done || created.FocusMinutes != 0 {
		t.Fatalf("expected fresh done/focus state, got %+v", created)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if len(created.Checklist) != 3 {
		t.Fatalf("expected 3 default checklist items, got %d", len(created.Checklist))
	}
	for _, item := range created.Checklist {
		if !strings.Contains(item.Label, "call mom") {
			t.Fatalf("expected lower-cased title in checklist label, got %q", item.Label)
		}
	}
}

func TestCreateTaskGeneratesUniqueIDs(t *testing.T) {
	s := baseState()
	s = CreateTask(s, task.Draft{Title: "one"}, "2024-01-03")
	s = CreateTask(s, task.Draft{Title: "two"}, "2024-01-03")
	seen := map[string]bool{}
	for _, tk := range s.Tasks {
		if seen[tk.ID] {
			t.Fatalf("duplicate id %s", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestUpdateTaskReplacesDraftFieldsOnly(t *testing.T) {
	s := baseState()
	s = ToggleDone(s, "t1")
	s = UpdateTask(s, "t1", task.Draft{Title: "Rewrite report", Time: "11:00", Duration: 45, Priority: task.PriorityLow, Bucket: task.BucketEvening})

	updated, ok := s.FindTask("t1")
	if !ok {
		t.Fatalf("task disappeared")
	}
	if updated.Title != "Rewrite report" || updated.Time != "11:00" || updated.Duration != 45 {
		t.Fatalf("draft fields not applied: %+v", updated)
	}
	if updated.Priority != task.PriorityLow || updated.Bucket != task.BucketEvening {
		t.Fatalf("enum fields not applied: %+v", updated)
	}
	if !updated.Done {
		t.Fatalf("expected done flag untouched")
	}
	if updated.Day != "2024-01-03" {
		t.Fatalf("expected day untouched, got %s", updated.Day)
	}
	if len(updated.Checklist) != 2 {
		t.Fatalf("expected checklist untouched, got %d items", len(updated.Checklist))
	}
}

func TestUpdateTaskReclampsFocusMinutes(t *testing.T) {
	s := baseState()
	s = NudgeFocus(s, "t1", 50) // focus 50 of 60
	s = UpdateTask(s, "t1", task.Draft{Title: "Write report", Duration: 30})

	updated, _ := s.FindTask("t1")
	if updated.FocusMinutes != 30 {
		t.Fatalf("expected focus re-clamped to shrunk duration, got %d", updated.FocusMinutes)
	}
}

func TestUpdateTaskUnknownIDNoOp(t *testing.T) {
	before := baseState()
	after := UpdateTask(before, "missing", task.Draft{Title: "anything"})
	if len(after.Tasks) != len(before.Tasks) {
		t.Fatalf("expected no-op for unknown id")
	}
}

func TestDeleteTask(t *testing.T) {
	s := DeleteTask(baseState(), "t1")
	if _, ok := s.FindTask("t1"); ok {
		t.Fatalf("expected task removed")
	}
	if len(s.Tasks) != 1 {
		t.Fatalf("expected 1 task left, got %d", len(s.Tasks))
	}

	again := DeleteTask(s, "t1")
	if len(again.Tasks) != 1 {
		t.Fatalf("expected delete of absent id to be a no-op")
	}
}

func TestToggleDonePure(t *testing.T) {
	before := baseState()
	after := ToggleDone(before, "t1")

	if got, _ := after.FindTask("t1"); !got.Done {
		t.Fatalf("expected done flipped")
	}
	if got, _ := before.FindTask("t1"); got.Done {
		t.Fatalf("prior snapshot was mutated")
	}
}

func TestToggleChecklistItem(t *testing.T) {
	before := baseState()
	after := ToggleChecklistItem(before, "t1", "c2")

	got, _ := after.FindTask("t1")
	if !got.Checklist[1].Done || got.Checklist[0].Done {
		t.Fatalf("expected only c2 flipped: %+v", got.Checklist)
	}

	prior, _ := before.FindTask("t1")
	if prior.Checklist[1].Done {
		t.Fatalf("prior snapshot's checklist was mutated")
	}

	// Unknown ids are silent no-ops.
	same := ToggleChecklistItem(after, "t1", "missing")
	gotSame, _ := same.FindTask("t1")
	if !gotSame.Checklist[1].Done || gotSame.Checklist[0].Done {
		t.Fatalf("expected unknown item id to change nothing")
	}
	_ = ToggleChecklistItem(after, "missing", "c1")
}

func TestNudgeFocusBounds(t *testing.T) {
	s := baseState() // t1 duration 60, focus 0

	for _, delta := range []int{-1000, -5, 0, 5, 1000} {
		next := NudgeFocus(s, "t1", delta)
		got, _ := next.FindTask("t1")
		if got.FocusMinutes < 0 || got.FocusMinutes > got.Duration {
			t.Fatalf("delta %d produced out-of-range focus %d", delta, got.FocusMinutes)
		}
	}

	s = NudgeFocus(s, "t1", 5)
	if got, _ := s.FindTask("t1"); got.FocusMinutes != 5 {
		t.Fatalf("expected 5 focus minutes, got %d", got.FocusMinutes)
	}
	s = NudgeFocus(s, "t1", 500)
	if got, _ := s.FindTask("t1"); got.FocusMinutes != 60 {
		t.Fatalf("expected clamp at duration, got %d", got.FocusMinutes)
	}
	s = NudgeFocus(s, "t1", -500)
	if got, _ := s.FindTask("t1"); got.FocusMinutes != 0 {
		t.Fatalf("expected clamp at zero, got %d", got.FocusMinutes)
	}
}

func TestParseView(t *testing.T) {
	if v, err := ParseView("PRIORITY"); err != nil || v != ViewPriority {
		t.Fatalf("expected priority, got %s (%v)", v, err)
	}
	if v, err := ParseView(""); err != nil || v != ViewMyDay {
		t.Fatalf("expected myday default, got %s (%v)", v, err)
	}
	if _, err := ParseView("desktop"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}
