// Package calendar provides ISO-date string arithmetic in the local calendar.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// ToISO formats a time as an ISO calendar date, dropping the time of day.
func ToISO(t time.Time) string {
	return t.Format(layoutISO)
}

// FromISO parses an ISO calendar date in the local location. The result
// always sits at local midnight so day arithmetic never drifts across a
// date boundary.
func FromISO(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, iso, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// Today returns the current local calendar date.
func Today() string {
	now := time.Now()
	return ToISO(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local))
}

// AddDays shifts an ISO date by n calendar days, n may be negative.
// AddDate handles month, year and DST rolls. Malformed input is returned
// unchanged.
func AddDays(iso string, n int) string {
	t, err := FromISO(iso)
	if err != nil {
		return iso
	}
	return ToISO(t.AddDate(0, 0, n))
}

// StartOfWeek returns the Monday of the week containing iso.
func StartOfWeek(iso string) string {
	t, err := FromISO(iso)
	if err != nil {
		return iso
	}
	// Weekday is Sunday=0; Monday-based offset puts Sunday at 6.
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(iso, -offset)
}

// WeekDays returns the 7 consecutive dates starting at weekStart.
func WeekDays(weekStart string) []string {
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, AddDays(weekStart, i))
	}
	return days
}

// MinutesFromTime parses "HH:MM" into minutes since midnight. Missing or
// malformed components read as zero rather than failing.
func MinutesFromTime(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h := 0
	m := 0
	if len(parts) > 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			h = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			m = v
		}
	}
	return h*60 + m
}

// FormatTime renders an "HH:MM" value for display. An empty time means the
// task is unscheduled.
func FormatTime(hhmm string) string {
	if hhmm == "" {
		return "Anytime"
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format(time.Kitchen)
}

// FormatDay renders an ISO date as a short human label, e.g. "Mon Jan 2".
func FormatDay(iso string) string {
	t, err := FromISO(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s %s %d", t.Format("Mon"), t.Format("Jan"), t.Day())
}
