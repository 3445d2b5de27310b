// Package assignments answers day, text, and ordering queries over a run
// result's assignment list. Every operation returns a fresh slice; the
// input list belongs to the RunResult and is never mutated.
package assignments

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rmoreau/loanboard/internal/models"
)

// ByDay keeps only assignments whose start_day falls on the given day of
// week. An empty day means no filter. start_day is parsed as a calendar
// date at local midnight; the weekday comes from the date itself, not from
// the string. Records with unparseable dates never match a day filter.
func ByDay(day models.DayKey, recs []models.AssignmentRecord) []models.AssignmentRecord {
	if day == "" {
		return append([]models.AssignmentRecord(nil), recs...)
	}
	out := make([]models.AssignmentRecord, 0, len(recs))
	for _, r := range recs {
		d, ok := startDayKey(r.StartDay)
		if ok && d == day {
			out = append(out, r)
		}
	}
	return out
}

// ByText keeps assignments whose vin, partner name, make, model, or
// decimal person id contains the query, case-insensitively. An empty
// query keeps everything.
func ByText(query string, recs []models.AssignmentRecord) []models.AssignmentRecord {
	if query == "" {
		return append([]models.AssignmentRecord(nil), recs...)
	}
	q := strings.ToLower(query)
	out := make([]models.AssignmentRecord, 0, len(recs))
	for _, r := range recs {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Sorted orders assignments by start_day ascending, then score descending.
// ISO dates compare correctly as strings. The sort is stable for full ties.
func Sorted(recs []models.AssignmentRecord) []models.AssignmentRecord {
	out := append([]models.AssignmentRecord(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartDay != out[j].StartDay {
			return out[i].StartDay < out[j].StartDay
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// Query is the composite filter the UI uses: day and text filters are
// independent predicates, and ordering is always applied last.
func Query(day models.DayKey, text string, recs []models.AssignmentRecord) []models.AssignmentRecord {
	return Sorted(ByText(text, ByDay(day, recs)))
}

func matches(r models.AssignmentRecord, q string) bool {
	return strings.Contains(strings.ToLower(r.VIN), q) ||
		strings.Contains(strings.ToLower(r.PartnerName), q) ||
		strings.Contains(strings.ToLower(r.Make), q) ||
		strings.Contains(strings.ToLower(r.Model), q) ||
		strings.Contains(strconv.FormatInt(r.PersonID, 10), q)
}

func startDayKey(startDay string) (models.DayKey, bool) {
	t, err := time.ParseInLocation("2006-01-02", startDay, time.Local)
	if err != nil {
		return "", false
	}
	return models.DayFromWeekday(t.Weekday()), true
}
