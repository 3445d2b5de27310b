package models

import "time"

// DayKey identifies a day of the scheduling week. Keys double as the JSON
// field names used by the backend's capacity maps.
type DayKey string

const (
	DayMon DayKey = "mon"
	DayTue DayKey = "tue"
	DayWed DayKey = "wed"
	DayThu DayKey = "thu"
	DayFri DayKey = "fri"
	DaySat DayKey = "sat"
	DaySun DayKey = "sun"
)

// WeekDays returns all seven day keys in Monday→Sunday order.
func WeekDays() []DayKey {
	return []DayKey{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}
}

// Workdays returns the Monday→Friday subset, in order.
func Workdays() []DayKey {
	return []DayKey{DayMon, DayTue, DayWed, DayThu, DayFri}
}

// DayFromWeekday maps time.Weekday (0=Sunday) onto a DayKey.
func DayFromWeekday(wd time.Weekday) DayKey {
	switch wd {
	case time.Monday:
		return DayMon
	case time.Tuesday:
		return DayTue
	case time.Wednesday:
		return DayWed
	case time.Thursday:
		return DayThu
	case time.Friday:
		return DayFri
	case time.Saturday:
		return DaySat
	default:
		return DaySun
	}
}

func (d DayKey) Valid() bool {
	switch d {
	case DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun:
		return true
	default:
		return false
	}
}

// Label returns a short display name ("Mon", "Tue", ...).
func (d DayKey) Label() string {
	if !d.Valid() {
		return "?"
	}
	s := string(d)
	return string(s[0]-'a'+'A') + s[1:]
}

// DayCapacityMap is the backend's per-office default capacity payload.
type DayCapacityMap map[DayKey]int
