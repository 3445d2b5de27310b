package capacity

import (
	"testing"

	"github.com/rmoreau/loanboard/internal/models"
)

func TestSetTotal_SpreadsRemainderToEarliestWeekdays(t *testing.T) {
	v := New().SetTotal(17)

	// 17 = 5*3 + 2, so Monday and Tuesday each get the extra slot.
	want := map[models.DayKey]int{
		models.DayMon: 4,
		models.DayTue: 4,
		models.DayWed: 3,
		models.DayThu: 3,
		models.DayFri: 3,
	}
	for day, slots := range want {
		if got := v.Day(day); got != slots {
			t.Errorf("Day(%s) = %d, want %d", day, got, slots)
		}
	}
	if v.Day(models.DaySat) != 0 || v.Day(models.DaySun) != 0 {
		t.Errorf("expected weekend zeroed, got sat=%d sun=%d", v.Day(models.DaySat), v.Day(models.DaySun))
	}
}

func TestSetTotal_TotalRoundTripsForFullRange(t *testing.T) {
	for total := 0; total <= MaxWeekTotal; total++ {
		v := New().SetTotal(total)
		if v.Total() != total {
			t.Fatalf("SetTotal(%d).Total() = %d", total, v.Total())
		}
		if v.Day(models.DaySat) != 0 || v.Day(models.DaySun) != 0 {
			t.Fatalf("SetTotal(%d) left weekend slots", total)
		}
	}
}

func TestSetTotal_ClampsOutOfRangeInput(t *testing.T) {
	if got := New().SetTotal(-10).Total(); got != 0 {
		t.Errorf("SetTotal(-10).Total() = %d, want 0", got)
	}
	if got := New().SetTotal(1000).Total(); got != MaxWeekTotal {
		t.Errorf("SetTotal(1000).Total() = %d, want %d", got, MaxWeekTotal)
	}
}

func TestSetTotal_ZeroDisablesEveryDay(t *testing.T) {
	v := New().SetTotal(75).SetTotal(0)
	for _, d := range models.WeekDays() {
		if v.Day(d) != 0 {
			t.Errorf("Day(%s) = %d, want 0", d, v.Day(d))
		}
	}
}

func TestSetDay_ClampsAndOnlyTouchesNamedDay(t *testing.T) {
	v := New().SetTotal(25)

	edited := v.SetDay(models.DaySat, 60)
	if got := edited.Day(models.DaySat); got != MaxPerDay {
		t.Errorf("SetDay(sat, 60) = %d, want %d", got, MaxPerDay)
	}

	edited = edited.SetDay(models.DayMon, -5)
	if got := edited.Day(models.DayMon); got != 0 {
		t.Errorf("SetDay(mon, -5) = %d, want 0", got)
	}

	// Other days keep their redistributed values.
	for _, d := range []models.DayKey{models.DayTue, models.DayWed, models.DayThu, models.DayFri} {
		if edited.Day(d) != v.Day(d) {
			t.Errorf("Day(%s) changed from %d to %d", d, v.Day(d), edited.Day(d))
		}
	}
}

func TestSetDay_DoesNotMutateReceiver(t *testing.T) {
	v := New().SetTotal(10)
	before := v.Day(models.DayWed)

	_ = v.SetDay(models.DayWed, 49)

	if v.Day(models.DayWed) != before {
		t.Errorf("receiver mutated: Day(wed) = %d, want %d", v.Day(models.DayWed), before)
	}
}

func TestFromMap_FillsMissingDaysAndClamps(t *testing.T) {
	v := FromMap(models.DayCapacityMap{
		models.DayMon: 12,
		models.DayTue: 99,
	})

	if got := v.Day(models.DayMon); got != 12 {
		t.Errorf("Day(mon) = %d, want 12", got)
	}
	if got := v.Day(models.DayTue); got != MaxPerDay {
		t.Errorf("Day(tue) = %d, want %d", got, MaxPerDay)
	}
	for _, d := range []models.DayKey{models.DayWed, models.DayThu, models.DayFri, models.DaySat, models.DaySun} {
		if v.Day(d) != 0 {
			t.Errorf("Day(%s) = %d, want 0", d, v.Day(d))
		}
	}
}

func TestMap_ContainsAllSevenDays(t *testing.T) {
	m := New().SetTotal(75).Map()
	if len(m) != 7 {
		t.Fatalf("Map() has %d keys, want 7", len(m))
	}
	for _, d := range models.Workdays() {
		if m[d] != 15 {
			t.Errorf("Map()[%s] = %d, want 15", d, m[d])
		}
	}
}
