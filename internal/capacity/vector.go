// Package capacity holds the canonical seven-day slot allocation for a
// scheduling week and its two edit operations.
package capacity

import "github.com/rmoreau/loanboard/internal/models"

const (
	// MaxPerDay is the UI ceiling for a single day's slots.
	MaxPerDay = 50
	// MaxWeekTotal is the UI ceiling for the weekly total.
	MaxWeekTotal = 350
)

// Vector maps each day of the week to a slot count. Every DayKey is always
// present; a zero value means the day is disabled. Edit operations return a
// new Vector and never mutate the receiver.
type Vector struct {
	days map[models.DayKey]int
}

// New returns an all-zero vector.
func New() Vector {
	v := Vector{days: make(map[models.DayKey]int, 7)}
	for _, d := range models.WeekDays() {
		v.days[d] = 0
	}
	return v
}

// FromMap builds a vector from a backend capacity map. Missing days are
// treated as 0, and each value is clamped to [0, MaxPerDay].
func FromMap(m models.DayCapacityMap) Vector {
	v := New()
	for _, d := range models.WeekDays() {
		v.days[d] = clamp(m[d], 0, MaxPerDay)
	}
	return v
}

// Day returns the slot count for a single day.
func (v Vector) Day(d models.DayKey) int {
	return v.days[d]
}

// Total returns the sum over all seven days.
func (v Vector) Total() int {
	sum := 0
	for _, d := range models.WeekDays() {
		sum += v.days[d]
	}
	return sum
}

// SetTotal redistributes a new weekly total evenly across the five
// workdays. The total is clamped to [0, MaxWeekTotal]; Saturday and Sunday
// are forced to 0. The remainder after integer division goes to the
// earliest weekdays, Monday first, one extra slot each.
func (v Vector) SetTotal(newTotal int) Vector {
	newTotal = clamp(newTotal, 0, MaxWeekTotal)
	out := New()

	workdays := models.Workdays()
	perDay := newTotal / len(workdays)
	remainder := newTotal % len(workdays)
	for i, d := range workdays {
		slots := perDay
		if i < remainder {
			slots++
		}
		out.days[d] = slots
	}
	return out
}

// SetDay sets a single day's slot count, clamped to [0, MaxPerDay]. No
// other day changes.
func (v Vector) SetDay(day models.DayKey, value int) Vector {
	out := v.clone()
	if !day.Valid() {
		return out
	}
	out.days[day] = clamp(value, 0, MaxPerDay)
	return out
}

// Map returns the vector as a plain day→slots map, suitable for the
// daily_capacities request field.
func (v Vector) Map() models.DayCapacityMap {
	m := make(models.DayCapacityMap, 7)
	for _, d := range models.WeekDays() {
		m[d] = v.days[d]
	}
	return m
}

func (v Vector) clone() Vector {
	out := Vector{days: make(map[models.DayKey]int, 7)}
	for _, d := range models.WeekDays() {
		out.days[d] = v.days[d]
	}
	return out
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
