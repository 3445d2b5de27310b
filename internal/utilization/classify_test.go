package utilization

import (
	"testing"

	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		total int
		used  int
		want  Status
	}{
		{"zero slots is disabled", 0, 0, StatusDisabled},
		{"zero slots with phantom usage still disabled", 0, 3, StatusDisabled},
		{"used equals total is full", 10, 10, StatusFull},
		{"used above total is full", 10, 12, StatusFull},
		{"just above 80 percent is near capacity", 10, 9, StatusNearCapacity},
		{"exactly 80 percent is available", 10, 8, StatusAvailable},
		{"half used is available", 10, 5, StatusAvailable},
		{"untouched day is available", 10, 0, StatusAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.total, tc.used); got != tc.want {
				t.Errorf("Classify(%d, %d) = %s, want %s", tc.total, tc.used, got, tc.want)
			}
		})
	}
}

func TestClassifyWeek_NoRunMeansAllEnabledDaysAvailable(t *testing.T) {
	vec := capacity.New().SetTotal(50)

	week := ClassifyWeek(vec, nil)
	if len(week) != 7 {
		t.Fatalf("ClassifyWeek returned %d days, want 7", len(week))
	}
	for _, du := range week {
		switch du.Day {
		case models.DaySat, models.DaySun:
			if du.Status != StatusDisabled {
				t.Errorf("%s status = %s, want disabled", du.Day, du.Status)
			}
		default:
			if du.Status != StatusAvailable {
				t.Errorf("%s status = %s, want available", du.Day, du.Status)
			}
			if du.UsedSlots != 0 {
				t.Errorf("%s used = %d, want 0", du.Day, du.UsedSlots)
			}
		}
	}
}

func TestClassifyWeek_CombinesStartsWithCapacity(t *testing.T) {
	vec := capacity.New().SetTotal(50) // 10 per workday
	starts := map[models.DayKey]int{
		models.DayMon: 10,
		models.DayTue: 9,
		models.DayWed: 4,
	}

	week := ClassifyWeek(vec, starts)
	byDay := make(map[models.DayKey]DayUtilization, len(week))
	for _, du := range week {
		byDay[du.Day] = du
	}

	if byDay[models.DayMon].Status != StatusFull {
		t.Errorf("mon = %s, want full", byDay[models.DayMon].Status)
	}
	if byDay[models.DayTue].Status != StatusNearCapacity {
		t.Errorf("tue = %s, want near_capacity", byDay[models.DayTue].Status)
	}
	if byDay[models.DayWed].Status != StatusAvailable {
		t.Errorf("wed = %s, want available", byDay[models.DayWed].Status)
	}
	if byDay[models.DaySun].Status != StatusDisabled {
		t.Errorf("sun = %s, want disabled", byDay[models.DaySun].Status)
	}
}
