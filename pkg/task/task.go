// Package task defines the planner task model and its pure derivations.
package task

import (
	"fmt"
	"strings"
)

// Priority identifies how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns the supported priorities in rank order.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Rank returns the sort rank for a priority, high first. Unknown values
// rank after low so they never shadow a real priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority converts a string to a Priority. Empty input maps to medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if candidate == p {
			return candidate, nil
		}
	}
	return PriorityMedium, fmt.Errorf("task: unknown priority %q", raw)
}

// Bucket is the time-of-day section a task is filed under, independent of
// its exact time field.
type Bucket string

const (
	BucketAnytime Bucket = "anytime"
	BucketMorning Bucket = "morning"
	BucketDay     Bucket = "day"
	BucketEvening Bucket = "evening"
)

// AllBuckets returns the supported buckets in display order.
func AllBuckets() []Bucket {
	return []Bucket{BucketAnytime, BucketMorning, BucketDay, BucketEvening}
}

// ParseBucket converts a string to a Bucket. Empty input maps to anytime.
func ParseBucket(raw string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(raw)))
	if b == "" {
		return BucketAnytime, nil
	}
	for _, candidate := range AllBuckets() {
		if candidate == b {
			return candidate, nil
		}
	}
	return BucketAnytime, fmt.Errorf("task: unknown bucket %q", raw)
}

// Icon is an opaque token naming the glyph a task renders with. The
// planner core never interprets it beyond equality.
type Icon string

const (
	IconDot       Icon = "dot"
	IconStar      Icon = "star"
	IconBolt      Icon = "bolt"
	IconBook      Icon = "book"
	IconHeart     Icon = "heart"
	IconBriefcase Icon = "briefcase"
)

// DefaultIcon is used when a draft leaves the icon unset.
const DefaultIcon = IconDot

// Color is an opaque palette token.
type Color string

const (
	ColorSky    Color = "sky"
	ColorMint   Color = "mint"
	ColorAmber  Color = "amber"
	ColorRose   Color = "rose"
	ColorViolet Color = "violet"
)

// DefaultColor is used when a draft leaves the color unset.
const DefaultColor = ColorSky

// ChecklistItem is a single step inside a task's checklist. Items are owned
// by their parent task and never shared.
type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Task is a scheduled planner entry. Field names are frozen: previously
// stored blobs must stay loadable.
type Task struct {
	ID           string          `json:"id"`
	Day          string          `json:"day"`
	Title        string          `json:"title"`
	Time         string          `json:"time"`
	Duration     int             `json:"duration"`
	Priority     Priority        `json:"priority"`
	Bucket       Bucket          `json:"bucket"`
	Icon         Icon            `json:"icon"`
	Color        Color           `json:"color"`
	Done         bool            `json:"done"`
	Checklist    []ChecklistItem `json:"checklist"`
	FocusMinutes int             `json:"focusMinutes"`
}

// MinDuration is the floor for task durations in minutes. Durations below
// it are clamped at create/edit time, never rejected.
const MinDuration = 5

// Draft holds the subset of task fields editable through the create/edit
// form. It exists only while an edit session is open.
type Draft struct {
	Title    string
	Time     string
	Duration int
	Priority Priority
	Bucket   Bucket
	Icon     Icon
	Color    Color
}

// Default checklist steps seeded on every created task, templated on the
// lower-cased title.
var checklistTemplates = []string{
	"plan out %s",
	"work on %s",
	"wrap up %s",
}

// DefaultChecklist builds the three starter checklist items for a new
// task. Item ids come from newID so callers control determinism.
func DefaultChecklist(title string, newID func() string) []ChecklistItem {
	lower := strings.ToLower(strings.TrimSpace(title))
	items := make([]ChecklistItem, 0, len(checklistTemplates))
	for _, tmpl := range checklistTemplates {
		items = append(items, ChecklistItem{
			ID:    newID(),
			Label: fmt.Sprintf(tmpl, lower),
		})
	}
	return items
}

// Normalize fills draft defaults and clamps the duration floor.
func (d Draft) Normalize() Draft {
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Bucket == "" {
		d.Bucket = BucketAnytime
	}
	if d.Icon == "" {
		d.Icon = DefaultIcon
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	if d.Duration < MinDuration {
		d.Duration = MinDuration
	}
	return d
}
