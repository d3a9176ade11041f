package expense

import (
	"fmt"
	"time"

	"gitlab.com/yelinaung/expense-tracker/internal/models"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Window names a calendar period relative to now.
type Window string

// Supported windows.
const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow validates a window name. Empty means WindowAll.
func ParseWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case "":
		return WindowAll, nil
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return w, nil
	default:
		return "", fmt.Errorf("unknown window %q", s)
	}
}

// Label is the human readable name of w.
func (w Window) Label() string {
	switch w {
	case WindowToday:
		return "Today"
	case WindowWeek:
		return "This Week"
	case WindowMonth:
		return "This Month"
	default:
		return "All Time"
	}
}

// Range returns the inclusive date range of w at the clock's current instant,
// with calendar boundaries computed in loc. WindowAll returns nil.
// Weeks start on Monday, so any instant within a week yields the same range.
func (w Window) Range(clock Clock, loc *time.Location) *models.DateRange {
	if loc == nil {
		loc = time.UTC
	}
	now := clock.Now().In(loc)
	var start, next time.Time

	switch w {
	case WindowToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 1)
	case WindowWeek:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = time.Date(now.Year(), now.Month(), now.Day()-weekday+1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 7)
	case WindowMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	default:
		return nil
	}

	return &models.DateRange{Start: start, End: next.Add(-time.Nanosecond)}
}
