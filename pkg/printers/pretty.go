// Package printers renders planner views for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/focus"
	"tableflip.dev/weekplan/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))

	iconSymbols = map[task.Icon]string{
		task.IconDot:       "●",
		task.IconStar:      "✷",
		task.IconBolt:      "⚡",
		task.IconBook:      "▤",
		task.IconHeart:     "♥",
		task.IconBriefcase: "▣",
	}

	colorAttrs = map[task.Color]color.Attribute{
		task.ColorSky:    color.FgCyan,
		task.ColorMint:   color.FgGreen,
		task.ColorAmber:  color.FgYellow,
		task.ColorRose:   color.FgRed,
		task.ColorViolet: color.FgMagenta,
	}
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Day prints one day's tasks grouped into time-of-day buckets.
func (pp *PrettyPrint) Day(day string, tasks []task.Task) {
	pp.Title(calendar.FormatDay(day))
	groups := task.ByBucket(task.Sort(tasks), task.AllBuckets())
	for _, b := range task.AllBuckets() {
		pp.section(heading(string(b)), groups[b])
	}
}

// Priorities prints one day's tasks grouped by urgency, honoring collapsed
// sections.
func (pp *PrettyPrint) Priorities(day string, tasks []task.Task, collapsed map[task.Priority]bool) {
	pp.Title(calendar.FormatDay(day))
	groups := task.ByPriority(task.Sort(tasks), task.AllPriorities())
	for _, p := range task.AllPriorities() {
		if collapsed[p] {
			f := color.New(color.Faint)
			_, _ = f.Printf("%s (collapsed, %d)\n", heading(string(p)), len(groups[p]))
			continue
		}
		pp.section(heading(string(p)), groups[p])
	}
}

func (pp *PrettyPrint) section(heading string, tasks []task.Task) {
	h := color.New(color.Faint, color.Underline)
	_, _ = h.Println(heading)
	pp.Tasks(tasks...)
}

// Tasks prints a flat task list.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, t := range tasks {
		if pp.ShowID {
			_, _ = y.Print(t.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(t.ID))))
		}
		line := color.New(colorAttr(t.Color))
		mark := " "
		if t.Done {
			mark = "✘"
			line = color.New(color.Faint, color.CrossedOut)
		}
		_, _ = line.Printf("%s %s %s  %s (%dm, %s)\n",
			mark, iconSymbol(t.Icon), calendar.FormatTime(t.Time), t.Title, t.Duration, t.Priority)
	}
	fmt.Println("")
}

// Focus prints the focus panel: the selected task, its checklist, and the
// timer progress bar, or the all-caught-up state.
func (pp *PrettyPrint) Focus(tasks []task.Task) {
	t, ok := focus.Select(tasks)
	if !ok {
		c := color.New(color.FgGreen, color.Bold)
		_, _ = c.Println("All caught up ✔")
		return
	}

	pp.Title(t.Title)
	f := color.New(color.Faint)
	_, _ = f.Printf("%s · %dm · %s priority\n\n", calendar.FormatTime(t.Time), t.Duration, t.Priority)

	for _, item := range t.Checklist {
		mark := "[ ]"
		c := color.New()
		if item.Done {
			mark = "[x]"
			c = color.New(color.Faint, color.CrossedOut)
		}
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Printf("%s  ", item.ID)
		}
		_, _ = c.Printf("%s %s\n", mark, item.Label)
	}

	fmt.Println("")
	pp.progressBar(focus.Progress(t), focus.Remaining(t))
}

func (pp *PrettyPrint) progressBar(pct, remaining int) {
	const width = 30
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	c := color.New(color.FgCyan)
	_, _ = c.Printf("%s %3d%%  %dm left\n", bar, pct, remaining)
}

func iconSymbol(i task.Icon) string {
	if s, ok := iconSymbols[i]; ok {
		return s
	}
	return iconSymbols[task.DefaultIcon]
}

func colorAttr(c task.Color) color.Attribute {
	if a, ok := colorAttrs[c]; ok {
		return a
	}
	return colorAttrs[task.DefaultColor]
}

func heading(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
