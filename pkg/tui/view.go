package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/focus"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/task"
)

var (
	selectedDayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	dayStyle         = lipgloss.NewStyle().Faint(true)
	headingStyle     = lipgloss.NewStyle().Faint(true).Underline(true)
	cursorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	doneStyle        = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	focusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// View renders the planner screen.
func (m *Model) View() string {
	state := m.store.State()

	var b strings.Builder
	b.WriteString(m.weekStrip(state))
	b.WriteString("\n\n")

	if state.MobileView == planner.ViewPriority {
		b.WriteString(m.priorityList(state))
	} else {
		b.WriteString(m.bucketList(state))
	}

	b.WriteString("\n")
	b.WriteString(m.focusPanel(state))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		help := "h/l day · [/] week · j/k move · space done · x delete · +/- nudge · tab view · a add · q quit"
		if m.width > 0 {
			help = wordwrap.String(help, m.width)
		}
		b.WriteString(helpStyle.Render(help))
	}
	return b.String()
}

func (m *Model) weekStrip(state planner.State) string {
	cells := make([]string, 0, 7)
	for _, day := range state.WeekDays() {
		label := calendar.FormatDay(day)
		if day == state.SelectedDay {
			cells = append(cells, selectedDayStyle.Render(label))
		} else {
			cells = append(cells, dayStyle.Render(label))
		}
	}
	return strings.Join(cells, "  ")
}

func (m *Model) bucketList(state planner.State) string {
	tasks := state.DayTasks()
	groups := task.ByBucket(tasks, task.AllBuckets())

	var b strings.Builder
	row := 0
	for _, bucket := range task.AllBuckets() {
		if len(groups[bucket]) == 0 {
			continue
		}
		b.WriteString(headingStyle.Render(string(bucket)))
		b.WriteString("\n")
		for _, t := range groups[bucket] {
			b.WriteString(m.taskLine(t, rowIndex(tasks, t)))
			b.WriteString("\n")
			row++
		}
	}
	if row == 0 {
		b.WriteString(helpStyle.Render("no tasks today"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) priorityList(state planner.State) string {
	tasks := state.DayTasks()
	groups := task.ByPriority(tasks, task.AllPriorities())

	var b strings.Builder
	for _, p := range task.AllPriorities() {
		if state.CollapsedPriority[p] {
			b.WriteString(headingStyle.Render(fmt.Sprintf("%s (collapsed, %d)", p, len(groups[p]))))
			b.WriteString("\n")
			continue
		}
		b.WriteString(headingStyle.Render(string(p)))
		b.WriteString("\n")
		for _, t := range groups[p] {
			b.WriteString(m.taskLine(t, rowIndex(tasks, t)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) taskLine(t task.Task, index int) string {
	pointer := "  "
	if index == m.cursor {
		pointer = cursorStyle.Render("» ")
	}
	mark := "[ ]"
	line := fmt.Sprintf("%s %s  %s (%dm)", mark, calendar.FormatTime(t.Time), t.Title, t.Duration)
	if t.Done {
		line = doneStyle.Render(fmt.Sprintf("[x] %s  %s (%dm)", calendar.FormatTime(t.Time), t.Title, t.Duration))
	}
	return pointer + line
}

func (m *Model) focusPanel(state planner.State) string {
	t, ok := focus.Select(state.DayTasks())
	if !ok {
		return focusStyle.Render("All caught up ✔")
	}

	const width = 24
	pct := focus.Progress(t)
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	line := fmt.Sprintf("focus: %s  %s %d%%  %dm left", t.Title, bar, pct, focus.Remaining(t))
	if m.width > 0 {
		line = wordwrap.String(line, m.width)
	}
	return focusStyle.Render(line)
}

// rowIndex maps a task back to its position in the sorted day list, which
// is the coordinate space the cursor moves in.
func rowIndex(tasks []task.Task, t task.Task) int {
	for i, candidate := range tasks {
		if candidate.ID == t.ID {
			return i
		}
	}
	return -1
}
