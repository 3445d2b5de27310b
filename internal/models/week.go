package models

import "time"

const dateLayout = "2006-01-02"

// MondayOf returns the ISO date of the Monday of t's week. Weeks start on
// Monday throughout the UI.
func MondayOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset).Format(dateLayout)
}

// AddWeeks shifts an ISO week-start date by n weeks. Invalid input is
// returned unchanged.
func AddWeeks(weekStart string, n int) string {
	t, err := time.ParseInLocation(dateLayout, weekStart, time.Local)
	if err != nil {
		return weekStart
	}
	return t.AddDate(0, 0, 7*n).Format(dateLayout)
}

// IsMonday reports whether an ISO date falls on a Monday.
func IsMonday(date string) bool {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}
