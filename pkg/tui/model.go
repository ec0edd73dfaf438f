// Package tui renders the interactive week planner.
package tui

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/weekplan/pkg/calendar"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/task"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

// Model drives the planner screen: a week strip, the selected day's tasks,
// and the focus panel. All task state lives in the planner store; the
// model only holds view state.
type Model struct {
	store *planner.Store

	mode   mode
	cursor int
	input  textinput.Model

	width  int
	height int
}

// New constructs the planner screen bound to the given store.
func New(store *planner.Store) *Model {
	input := textinput.New()
	input.Placeholder = "New task title…"
	input.Prompt = "› "
	return &Model{
		store: store,
		input: input,
	}
}

// Run launches the planner UI.
func Run(store *planner.Store) error {
	p := tea.NewProgram(New(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m, m.handleAddKey(msg)
		}
		return m, m.handleBrowseKey(msg)
	}
	return m, nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	state := m.store.State()
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "left", "h":
		_ = m.store.SelectDay(calendar.AddDays(state.SelectedDay, -1))
		m.cursor = 0
	case "right", "l":
		_ = m.store.SelectDay(calendar.AddDays(state.SelectedDay, 1))
		m.cursor = 0
	case "[":
		_ = m.store.ShiftWeek(-1)
		m.cursor = 0
	case "]":
		_ = m.store.ShiftWeek(1)
		m.cursor = 0
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(state.DayTasks()))
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(state.DayTasks()))
	case "space":
		if t, ok := taskAt(state.DayTasks(), m.cursor); ok {
			_ = m.store.ToggleDone(t.ID)
		}
	case "x":
		if t, ok := taskAt(state.DayTasks(), m.cursor); ok {
			_ = m.store.DeleteTask(t.ID)
			m.cursor = clampCursor(m.cursor, len(m.store.State().DayTasks()))
		}
	case "+", "=":
		if t, ok := taskAt(state.DayTasks(), m.cursor); ok {
			_ = m.store.NudgeFocus(t.ID, 5)
		}
	case "-":
		if t, ok := taskAt(state.DayTasks(), m.cursor); ok {
			_ = m.store.NudgeFocus(t.ID, -5)
		}
	case "tab":
		next := planner.ViewPriority
		if state.MobileView == planner.ViewPriority {
			next = planner.ViewMyDay
		}
		_ = m.store.SetMobileView(next)
	case "1":
		_ = m.store.ToggleCollapsed(task.PriorityHigh)
	case "2":
		_ = m.store.ToggleCollapsed(task.PriorityMedium)
	case "3":
		_ = m.store.ToggleCollapsed(task.PriorityLow)
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		return m.input.Focus()
	}
	return nil
}

func (m *Model) handleAddKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return nil
	case "enter":
		// Blank titles are silently rejected by the store, matching the
		// create operation's validation.
		_ = m.store.CreateTask(task.Draft{Title: m.input.Value()}, m.store.State().SelectedDay)
		m.mode = modeBrowse
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func clampCursor(cursor, count int) int {
	if count == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

func taskAt(tasks []task.Task, cursor int) (task.Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[cursor], true
}
