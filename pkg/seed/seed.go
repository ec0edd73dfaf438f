// Package seed generates the deterministic first-run task set. It runs
// only when no persisted state exists; ids are derived from the day and
// template index so re-seeding is idempotent and diffable.
package seed

import (
	"fmt"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/task"
)

type template struct {
	title    string
	time     string
	duration int
	priority task.Priority
	bucket   task.Bucket
	icon     task.Icon
	color    task.Color
}

var dayTemplates = []template{
	{"Morning stretch", "07:30", 15, task.PriorityMedium, task.BucketMorning, task.IconHeart, task.ColorMint},
	{"Inbox sweep", "09:00", 30, task.PriorityHigh, task.BucketMorning, task.IconBolt, task.ColorSky},
	{"Deep work block", "10:30", 90, task.PriorityHigh, task.BucketDay, task.IconBriefcase, task.ColorViolet},
	{"Walk outside", "", 20, task.PriorityLow, task.BucketAnytime, task.IconDot, task.ColorAmber},
	{"Read a chapter", "20:00", 30, task.PriorityLow, task.BucketEvening, task.IconBook, task.ColorRose},
}

var fridayExtra = template{
	"Week review", "16:00", 45, task.PriorityMedium, task.BucketDay, task.IconStar, task.ColorSky,
}

// Tasks builds the seed tasks for the week containing today. Each of the 7
// days gets the fixed template set, Friday gets one extra, and the first
// template on today itself is pre-marked done.
func Tasks(today string) []task.Task {
	weekStart := calendar.StartOfWeek(today)
	days := calendar.WeekDays(weekStart)

	tasks := make([]task.Task, 0, len(days)*len(dayTemplates)+1)
	for dayIndex, day := range days {
		for i, tmpl := range dayTemplates {
			t := build(day, i, tmpl)
			if day == today && i == 0 {
				t.Done = true
			}
			tasks = append(tasks, t)
		}
		if dayIndex == 4 {
			tasks = append(tasks, build(day, len(dayTemplates), fridayExtra))
		}
	}
	return tasks
}

func build(day string, index int, tmpl template) task.Task {
	id := fmt.Sprintf("seed-%s-%d", day, index)
	checkIndex := 0
	checklist := task.DefaultChecklist(tmpl.title, func() string {
		checkIndex++
		return fmt.Sprintf("%s-check-%d", id, checkIndex)
	})
	return task.Task{
		ID:        id,
		Day:       day,
		Title:     tmpl.title,
		Time:      tmpl.time,
		Duration:  tmpl.duration,
		Priority:  tmpl.priority,
		Bucket:    tmpl.bucket,
		Icon:      tmpl.icon,
		Color:     tmpl.color,
		Checklist: checklist,
	}
}
