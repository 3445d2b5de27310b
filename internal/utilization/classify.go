// Package utilization derives per-day status from a capacity vector and a
// run's starts-by-day counts. Purely presentational; nothing here feeds
// back into optimizer requests.
package utilization

import (
	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/models"
)

type Status string

const (
	StatusDisabled     Status = "disabled"
	StatusAvailable    Status = "available"
	StatusNearCapacity Status = "near_capacity"
	StatusFull         Status = "full"
)

// nearCapacityRatio is the fraction of used slots above which a day is
// flagged before it is actually full.
const nearCapacityRatio = 0.8

// DayUtilization is recomputed on every render pass, never stored.
type DayUtilization struct {
	Day        models.DayKey
	TotalSlots int
	UsedSlots  int
	Status     Status
}

// Classify derives a single day's status.
func Classify(totalSlots, usedSlots int) Status {
	switch {
	case totalSlots == 0:
		return StatusDisabled
	case usedSlots >= totalSlots:
		return StatusFull
	case float64(usedSlots) > nearCapacityRatio*float64(totalSlots):
		return StatusNearCapacity
	default:
		return StatusAvailable
	}
}

// ClassifyWeek combines a capacity vector with a run's starts-by-day
// counts. startsByDay may be nil (no run yet), in which case every used
// count is 0 and all enabled days report available.
func ClassifyWeek(vec capacity.Vector, startsByDay map[models.DayKey]int) []DayUtilization {
	out := make([]DayUtilization, 0, 7)
	for _, d := range models.WeekDays() {
		total := vec.Day(d)
		used := 0
		if startsByDay != nil {
			used = startsByDay[d]
		}
		out = append(out, DayUtilization{
			Day:        d,
			TotalSlots: total,
			UsedSlots:  used,
			Status:     Classify(total, used),
		})
	}
	return out
}
