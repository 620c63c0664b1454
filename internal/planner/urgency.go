// Package planner holds the scheduling logic of the app: due-date urgency,
// task list ordering, month calendar aggregation and study analytics. All
// functions are pure and take "today" as an argument so callers inject the
// clock.
package planner

import "time"

// Urgency classifies how close a task's due date is to today.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "due_today"
	UrgencyTomorrow Urgency = "due_tomorrow"
	UrgencyNone     Urgency = "none"
)

// ClassifyUrgency buckets a due date relative to today. A missing due date
// is UrgencyNone. Comparison is on calendar dates, time of day is ignored.
func ClassifyUrgency(due *time.Time, today time.Time) Urgency {
	if due == nil {
		return UrgencyNone
	}

	d := DateOnly(*due)
	t := DateOnly(today)

	switch {
	case d.Before(t):
		return UrgencyOverdue
	case d.Equal(t):
		return UrgencyToday
	case d.Equal(t.AddDate(0, 0, 1)):
		return UrgencyTomorrow
	default:
		return UrgencyNone
	}
}

// Rank orders urgencies for sorting: overdue first, no due date last.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyOverdue:
		return 1
	case UrgencyToday:
		return 2
	case UrgencyTomorrow:
		return 3
	default:
		return 4
	}
}

// DateOnly truncates t to midnight UTC so calendar dates compare cleanly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD value. Malformed input degrades to nil
// rather than an error: a task with an unreadable date is treated as having
// no due date.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
