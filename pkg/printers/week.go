package printers

import (
	"fmt"

	"github.com/gosuri/uitable"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/focus"
	"tableflip.dev/weekplan/pkg/task"
)

// Week prints a summary table of the visible week: per-day task counts,
// open work, and the day's focus pick.
func (pp *PrettyPrint) Week(weekStart string, tasks []task.Task, selectedDay string) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("DAY", "TASKS", "OPEN", "FOCUS")

	for _, day := range calendar.WeekDays(weekStart) {
		dayTasks := task.ForDay(tasks, day)
		open := 0
		for _, t := range dayTasks {
			if !t.Done {
				open++
			}
		}
		label := calendar.FormatDay(day)
		if day == selectedDay {
			label = "» " + label
		}
		focusTitle := ""
		if t, ok := focus.Select(dayTasks); ok {
			focusTitle = t.Title
		}
		table.AddRow(label, len(dayTasks), open, focusTitle)
	}

	fmt.Println(table)
	fmt.Println("")
}
