package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreau/loanboard/internal/bus"
	"github.com/rmoreau/loanboard/internal/cache"
	"github.com/rmoreau/loanboard/internal/models"
	"github.com/rmoreau/loanboard/internal/utilization"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	return New(cache.NewMemoryStore(), nil, nil)
}

func selectWeek(c *Controller, office string) {
	c.SetOffice(office)
	c.SetWeek("2025-10-20")
}

func someMetrics() *models.Metrics {
	return &models.Metrics{
		Vehicles:     models.VehicleCounts{Available: 8, Total: 30},
		MakesInScope: 5,
		BudgetStatus: "ok",
	}
}

func someRun() *models.RunResult {
	return &models.RunResult{
		Status: "optimal",
		Assignments: []models.AssignmentRecord{
			{VIN: "vin-1", PersonID: 1, PartnerName: "Rivera Media", Make: "Honda", StartDay: "2025-10-20", Score: 5},
			{VIN: "vin-2", PersonID: 2, PartnerName: "North Films", Make: "Toyota", StartDay: "2025-10-20", Score: 15},
			{VIN: "vin-3", PersonID: 3, PartnerName: "Castillo Reviews", Make: "Toyota", StartDay: "2025-10-23", Score: 40},
		},
		StartsByDay: map[models.DayKey]int{models.DayMon: 2, models.DayThu: 1},
	}
}

func TestLifecycle_IdleToMetricsToRunComplete(t *testing.T) {
	c := newController(t)
	assert.Equal(t, StateIdle, c.State())

	selectWeek(c, "Atlanta")
	tok, err := c.BeginOverview()
	require.NoError(t, err)
	require.True(t, c.ApplyOverview(tok, someMetrics(), nil))
	assert.Equal(t, StateMetricsLoaded, c.State())

	c.SetCapacityTotal(75)
	runTok, req, err := c.BeginRun()
	require.NoError(t, err)
	assert.Equal(t, StateRunInFlight, c.State())
	assert.Equal(t, "Atlanta", req.Office)
	assert.Equal(t, 42, req.Seed)
	assert.Equal(t, 15, req.DailyCapacities[models.DayMon])
	assert.Equal(t, 0, req.DailyCapacities[models.DaySat])

	require.True(t, c.ApplyRun(runTok, someRun(), nil))
	assert.Equal(t, StateRunComplete, c.State())
	require.NotNil(t, c.RunResult())
}

func TestBeginOverview_RequiresSelection(t *testing.T) {
	c := newController(t)
	_, err := c.BeginOverview()
	assert.Error(t, err)

	c.SetOffice("Atlanta")
	_, err = c.BeginOverview()
	assert.Error(t, err, "week still missing")
}

func TestApplyOverview_DropsResponseForSupersededOffice(t *testing.T) {
	c := newController(t)
	selectWeek(c, "LA")

	laTok, err := c.BeginOverview()
	require.NoError(t, err)

	// Office changes before the LA response lands.
	c.SetOffice("Atlanta")

	applied := c.ApplyOverview(laTok, someMetrics(), nil)
	assert.False(t, applied, "LA response must not replace the Atlanta-pending state")
	assert.Nil(t, c.Metrics())
	assert.Equal(t, StateIdle, c.State())
}

func TestApplyOverview_DropsSupersededSequence(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	first, err := c.BeginOverview()
	require.NoError(t, err)
	second, err := c.BeginOverview()
	require.NoError(t, err)

	assert.False(t, c.ApplyOverview(first, someMetrics(), nil), "older request must be superseded")
	assert.True(t, c.ApplyOverview(second, someMetrics(), nil))
}

func TestApplyOverview_FailureKeepsExistingMetrics(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	tok, _ := c.BeginOverview()
	require.True(t, c.ApplyOverview(tok, someMetrics(), nil))

	tok, _ = c.BeginOverview()
	c.ApplyOverview(tok, nil, errors.New("backend unreachable"))

	assert.Equal(t, StateMetricsLoaded, c.State())
	require.NotNil(t, c.Metrics(), "a failed refresh must not clear displayed metrics")
	assert.Equal(t, "backend unreachable", c.ErrorMessage())
}

func TestBeginRun_ValidationFailureNeverLeavesIdle(t *testing.T) {
	c := newController(t)

	_, _, err := c.BeginRun()
	require.Error(t, err, "missing office and week must be caught before dispatch")
	assert.Equal(t, StateIdle, c.State())
	assert.NotEmpty(t, c.ErrorMessage())
}

func TestBeginRun_RejectsSecondConcurrentRun(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")
	c.SetCapacityTotal(50)

	_, _, err := c.BeginRun()
	require.NoError(t, err)

	_, _, err = c.BeginRun()
	assert.Error(t, err)
}

func TestApplyRun_FailureRevertsToPriorStableState(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	tok, _ := c.BeginOverview()
	require.True(t, c.ApplyOverview(tok, someMetrics(), nil))

	runTok, _, err := c.BeginRun()
	require.NoError(t, err)
	c.ApplyRun(runTok, nil, errors.New("solver exploded"))

	assert.Equal(t, StateMetricsLoaded, c.State())
	assert.Nil(t, c.RunResult(), "a failed run never partially applies a result")
	assert.Equal(t, "solver exploded", c.ErrorMessage())
	require.NotNil(t, c.Metrics())
}

func TestApplyRun_StaleAfterSelectionChangeIsDiscarded(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	runTok, _, err := c.BeginRun()
	require.NoError(t, err)

	c.SetWeek("2025-10-27")
	assert.Equal(t, StateIdle, c.State(), "selection change resets the session")

	assert.False(t, c.ApplyRun(runTok, someRun(), nil))
	assert.Nil(t, c.RunResult())
}

func TestApplyDefaultCapacity_GuardsAgainstOutOfOrderOffices(t *testing.T) {
	c := newController(t)
	c.SetOffice("LA")

	laTok, err := c.BeginDefaultCapacity()
	require.NoError(t, err)

	c.SetOffice("Atlanta")
	atlTok, err := c.BeginDefaultCapacity()
	require.NoError(t, err)

	atlMap := models.DayCapacityMap{models.DayMon: 20}
	laMap := models.DayCapacityMap{models.DayMon: 3}

	require.True(t, c.ApplyDefaultCapacity(atlTok, atlMap, nil))
	assert.False(t, c.ApplyDefaultCapacity(laTok, laMap, nil), "late LA capacity must not clobber Atlanta's")
	assert.Equal(t, 20, c.Capacity().Day(models.DayMon))
}

func TestSelectionChange_DiscardsRunResult(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	runTok, _, err := c.BeginRun()
	require.NoError(t, err)
	require.True(t, c.ApplyRun(runTok, someRun(), nil))
	require.NotNil(t, c.RunResult())

	c.SetOffice("Los Angeles")
	assert.Nil(t, c.RunResult(), "stale results must never show against a new office")
	assert.Nil(t, c.Metrics())
	assert.Equal(t, StateIdle, c.State())
}

func TestSelectionChange_RestoresCachedSnapshots(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.SetMetrics("Atlanta", "2025-10-20", someMetrics()))
	require.NoError(t, store.SetRunResult("Atlanta", "2025-10-20", someRun()))

	c := New(store, nil, nil)
	selectWeek(c, "Atlanta")

	assert.Equal(t, StateRunComplete, c.State())
	require.NotNil(t, c.Metrics())
	require.NotNil(t, c.RunResult())
	assert.Len(t, c.RunResult().Assignments, 3)
}

func TestVisibleAssignments_AppliesDayTextAndOrder(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")

	runTok, _, err := c.BeginRun()
	require.NoError(t, err)
	require.True(t, c.ApplyRun(runTok, someRun(), nil))

	c.SelectDay(models.DayMon)
	c.SetTextFilter("toy")

	got := c.VisibleAssignments()
	require.Len(t, got, 1)
	assert.Equal(t, "vin-2", got[0].VIN)

	c.SelectDay("")
	c.SetTextFilter("")
	got = c.VisibleAssignments()
	require.Len(t, got, 3)
	// Chronological, then score descending inside Monday.
	assert.Equal(t, []string{"vin-2", "vin-1", "vin-3"}, []string{got[0].VIN, got[1].VIN, got[2].VIN})
}

func TestWeekUtilization_BeforeAnyRunEnabledDaysAreAvailable(t *testing.T) {
	c := newController(t)
	selectWeek(c, "Atlanta")
	c.SetCapacityTotal(50)

	for _, du := range c.WeekUtilization() {
		switch du.Day {
		case models.DaySat, models.DaySun:
			assert.Equal(t, utilization.StatusDisabled, du.Status)
		default:
			assert.Equal(t, utilization.StatusAvailable, du.Status)
		}
	}
}

func TestCalendarEvent_InvalidatesMatchingOfficeOnly(t *testing.T) {
	store := cache.NewMemoryStore()
	events := bus.New()
	c := New(store, events, nil)
	selectWeek(c, "Atlanta")

	tok, _ := c.BeginOverview()
	require.True(t, c.ApplyOverview(tok, someMetrics(), nil))

	// Another view deletes an assignment in a different office.
	events.Publish(models.CalendarEvent{Office: "Los Angeles", Action: models.ActionAssignmentDeleted, Count: 1})
	assert.NotNil(t, c.Metrics(), "other offices' events must not touch local state")

	events.Publish(models.CalendarEvent{Office: "Atlanta", Action: models.ActionAssignmentDeleted, VIN: "vin-1", Count: 1})
	assert.Nil(t, c.Metrics())
	assert.Nil(t, c.RunResult())
	assert.Equal(t, StateIdle, c.State())

	_, ok, err := store.GetMetrics("Atlanta", "2025-10-20")
	require.NoError(t, err)
	assert.False(t, ok, "cached Atlanta snapshots must be invalidated")
}

func TestCalendarEvent_RunCompletedIsIgnored(t *testing.T) {
	store := cache.NewMemoryStore()
	events := bus.New()
	c := New(store, events, nil)
	selectWeek(c, "Atlanta")

	tok, _ := c.BeginOverview()
	require.True(t, c.ApplyOverview(tok, someMetrics(), nil))

	events.Publish(models.CalendarEvent{Office: "Atlanta", Action: models.ActionRunCompleted})
	assert.NotNil(t, c.Metrics())
	assert.Equal(t, StateMetricsLoaded, c.State())
}
