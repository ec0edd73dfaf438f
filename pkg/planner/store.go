package planner

import (
	"tableflip.dev/weekplan/pkg/task"
)

// Persistence is the scoped get/set contract the store persists through.
// Implementations hold the whole serialized State under a single key.
type Persistence interface {
	Load() (State, error)
	Save(State) error
}

// Store is the single source of truth for planner state. All mutations go
// through it: each applies a pure reducer to the current snapshot and
// writes the whole replacement back, so readers only ever observe complete
// states.
type Store struct {
	persistence Persistence
	state       State
}

// NewStore loads persisted state, falling back to the provided initial
// state when nothing is stored or the stored blob does not parse. The
// fallback is written back so the next load succeeds.
func NewStore(p Persistence, fallback State) *Store {
	s := &Store{persistence: p, state: fallback}
	if p == nil {
		return s
	}
	loaded, err := p.Load()
	if err != nil {
		_ = p.Save(fallback)
		return s
	}
	s.state = normalize(loaded)
	return s
}

// normalize repairs structural gaps in loaded state so the rest of the
// planner never sees nil maps or an unanchored week.
func normalize(s State) State {
	if s.CollapsedPriority == nil {
		s.CollapsedPriority = make(map[task.Priority]bool, len(task.AllPriorities()))
	}
	if s.MobileView == "" {
		s.MobileView = ViewMyDay
	}
	if s.Tasks == nil {
		s.Tasks = []task.Task{}
	}
	return s
}

// State returns the current snapshot.
func (st *Store) State() State {
	return st.state
}

func (st *Store) apply(next State) error {
	st.state = next
	if st.persistence == nil {
		return nil
	}
	return st.persistence.Save(next)
}

// SelectDay sets the selected day.
func (st *Store) SelectDay(day string) error {
	return st.apply(SelectDay(st.state, day))
}

// ShiftWeek moves the visible week forward or back.
func (st *Store) ShiftWeek(direction int) error {
	return st.apply(ShiftWeek(st.state, direction))
}

// SetMobileView switches the mobile projection.
func (st *Store) SetMobileView(v View) error {
	return st.apply(SetMobileView(st.state, v))
}

// ToggleCollapsed flips a priority section's collapsed flag.
func (st *Store) ToggleCollapsed(p task.Priority) error {
	return st.apply(ToggleCollapsed(st.state, p))
}

// CreateTask adds a task from the draft on the given day.
func (st *Store) CreateTask(d task.Draft, day string) error {
	return st.apply(CreateTask(st.state, d, day))
}

// UpdateTask replaces the draft-editable fields of a task.
func (st *Store) UpdateTask(id string, d task.Draft) error {
	return st.apply(UpdateTask(st.state, id, d))
}

// DeleteTask removes a task.
func (st *Store) DeleteTask(id string) error {
	return st.apply(DeleteTask(st.state, id))
}

// ToggleDone flips a task's done flag.
func (st *Store) ToggleDone(id string) error {
	return st.apply(ToggleDone(st.state, id))
}

// ToggleChecklistItem flips one checklist item.
func (st *Store) ToggleChecklistItem(taskID, itemID string) error {
	return st.apply(ToggleChecklistItem(st.state, taskID, itemID))
}

// NudgeFocus adjusts a task's focus timer by delta minutes.
func (st *Store) NudgeFocus(id string, delta int) error {
	return st.apply(NudgeFocus(st.state, id, delta))
}
