// Package window computes time-window membership for task post dates.
//
// Post dates are "YYYY-MM-DD" strings. Month membership is a deliberate
// string-prefix test against "YYYY-MM": no parsing, no timezone conversion.
// Day and week windows parse the post date in local time and test an
// inclusive [start, end] range.
package window

import (
	"strings"
	"time"
)

// Mode selects the filtering basis.
type Mode string

const (
	Month Mode = "month"
	Week  Mode = "week"
	Day   Mode = "day"
)

// Window is a selected time window.
//
// For Month mode, MonthKey holds "YYYY-MM" and Anchor is unused.
// For Day and Week modes, Anchor is the selected day.
type Window struct {
	Mode     Mode
	MonthKey string
	Anchor   time.Time
}

// ForMonth returns a month window for the given "YYYY-MM" key.
func ForMonth(key string) Window { return Window{Mode: Month, MonthKey: key} }

// ForDay returns a single-day window anchored at d.
func ForDay(d time.Time) Window { return Window{Mode: Day, Anchor: d} }

// ForWeek returns the Monday–Sunday week window containing d.
// Sunday is treated as day 7 of the prior week, not day 0 of the next.
func ForWeek(d time.Time) Window { return Window{Mode: Week, Anchor: d} }

// Contains reports whether a task with the given post date falls inside w.
// An unparsable post date is never a member of a day or week window.
func (w Window) Contains(postDate string) bool {
	switch w.Mode {
	case Month:
		return w.MonthKey != "" && strings.HasPrefix(postDate, w.MonthKey)
	case Day:
		d, ok := parseLocalDate(postDate)
		if !ok {
			return false
		}
		anchor := truncateToDay(w.Anchor)
		return d.Equal(anchor)
	case Week:
		d, ok := parseLocalDate(postDate)
		if !ok {
			return false
		}
		start, end := weekBounds(w.Anchor)
		return !d.Before(start) && !d.After(end)
	}
	return false
}

// Bounds returns the inclusive [start, end] day range for day and week
// windows. For month windows it returns zero times; callers should use the
// prefix test instead.
func (w Window) Bounds() (start, end time.Time) {
	switch w.Mode {
	case Day:
		d := truncateToDay(w.Anchor)
		return d, d
	case Week:
		return weekBounds(w.Anchor)
	}
	return time.Time{}, time.Time{}
}

// weekBounds computes the Monday–Sunday range containing d.
func weekBounds(d time.Time) (start, end time.Time) {
	day := truncateToDay(d)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started six days earlier
	}
	start = day.AddDate(0, 0, -(wd - 1))
	end = start.AddDate(0, 0, 6)
	return start, end
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseLocalDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
