// Package dateutil holds the calendar arithmetic shared by the streak and
// analytics code. Days are canonicalized to midnight UTC so that two dates
// compare equal iff they name the same calendar day.
package dateutil

import "time"

// Day truncates t to midnight UTC, the canonical representation of a
// calendar day throughout the engine.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsConsecutiveDay reports whether current is exactly the calendar day
// after last. Month and year boundaries are handled by time.AddDate.
func IsConsecutiveDay(last, current time.Time) bool {
	return Day(last).AddDate(0, 0, 1).Equal(Day(current))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Weekday maps t's weekday to Monday=0 .. Sunday=6.
func Weekday(t time.Time) int {
	return (int(Day(t).Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return Weekday(t) >= 5
}
