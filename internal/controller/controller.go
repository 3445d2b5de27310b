// Package controller sequences the lifecycle of a scheduling page session:
// selection changes, collaborator calls, and the derived state the
// rendering layer consumes. It is rendering-agnostic; the TUI (or a CLI
// command) performs the actual network calls and feeds responses back in
// through the Apply methods.
package controller

import (
	"fmt"

	"github.com/rmoreau/loanboard/internal/assignments"
	"github.com/rmoreau/loanboard/internal/bus"
	"github.com/rmoreau/loanboard/internal/cache"
	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/logging"
	"github.com/rmoreau/loanboard/internal/models"
	"github.com/rmoreau/loanboard/internal/request"
	"github.com/rmoreau/loanboard/internal/utilization"
)

// State is the session lifecycle stage. Values are ordered, so stage
// progress is compared with integer ranks, never strings.
type State int

const (
	StateIdle State = iota
	StateMetricsLoaded
	StateRunInFlight
	StateRunComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMetricsLoaded:
		return "metrics_loaded"
	case StateRunInFlight:
		return "run_in_flight"
	case StateRunComplete:
		return "run_complete"
	default:
		return "unknown"
	}
}

// DefaultMinDays is the default minimum loan length used by overview
// queries.
const DefaultMinDays = 3

// Token ties an in-flight collaborator call to the selection that issued
// it. A response is applied only while its token is still current.
type Token struct {
	Seq       uint64
	Office    string
	WeekStart string
}

type Controller struct {
	builder *request.Builder
	store   cache.Store
	log     *logging.Logger

	state     State
	office    string
	weekStart string
	minDays   int

	policy   models.PolicyConfig
	capacity capacity.Vector

	metrics *models.Metrics
	run     *models.RunResult
	errMsg  string

	selectedDay models.DayKey
	textFilter  string

	overviewSeq uint64
	capacitySeq uint64
	runSeq      uint64
}

// New builds a controller around an injected snapshot cache. If events is
// non-nil the controller subscribes and invalidates its own state and the
// cache whenever another view changes the calendar for an office.
func New(store cache.Store, events *bus.Bus, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	c := &Controller{
		builder:  request.NewBuilder(),
		store:    store,
		log:      log,
		minDays:  DefaultMinDays,
		policy:   models.DefaultPolicy(),
		capacity: capacity.New(),
	}
	if events != nil {
		events.Subscribe(c.onCalendarEvent)
	}
	return c
}

func (c *Controller) State() State                 { return c.state }
func (c *Controller) Office() string               { return c.office }
func (c *Controller) WeekStart() string            { return c.weekStart }
func (c *Controller) MinDays() int                 { return c.minDays }
func (c *Controller) Policy() models.PolicyConfig  { return c.policy }
func (c *Controller) Capacity() capacity.Vector    { return c.capacity }
func (c *Controller) Metrics() *models.Metrics     { return c.metrics }
func (c *Controller) RunResult() *models.RunResult { return c.run }
func (c *Controller) ErrorMessage() string         { return c.errMsg }
func (c *Controller) SelectedDay() models.DayKey   { return c.selectedDay }
func (c *Controller) TextFilter() string           { return c.textFilter }

// ReportError surfaces a failure from an auxiliary call (deletes, office
// listing) as the display-only error message.
func (c *Controller) ReportError(err error) {
	if err != nil {
		c.errMsg = err.Error()
	}
}

// ClearError dismisses the displayed error message.
func (c *Controller) ClearError() {
	c.errMsg = ""
}

// SetOffice switches the selected office. Any metrics or run result from
// the previous selection are discarded immediately; stale results must
// never render against a new office. Cached snapshots for the new
// selection are restored if present.
func (c *Controller) SetOffice(office string) {
	if office == c.office {
		return
	}
	c.office = office
	c.resetSelection()
}

// SetWeek switches the selected week (a Monday, by UI convention).
func (c *Controller) SetWeek(weekStart string) {
	if weekStart == c.weekStart {
		return
	}
	c.weekStart = weekStart
	c.resetSelection()
}

func (c *Controller) SetMinDays(minDays int) {
	if minDays > 0 {
		c.minDays = minDays
	}
}

func (c *Controller) SetPolicy(p models.PolicyConfig) {
	c.policy = p
}

// SetCapacityTotal redistributes a new weekly total across workdays.
func (c *Controller) SetCapacityTotal(total int) {
	c.capacity = c.capacity.SetTotal(total)
}

// SetCapacityDay edits one day's slots directly.
func (c *Controller) SetCapacityDay(day models.DayKey, value int) {
	c.capacity = c.capacity.SetDay(day, value)
}

// SelectDay sets the day filter for the assignment view. Empty clears it.
func (c *Controller) SelectDay(day models.DayKey) {
	c.selectedDay = day
}

// SetTextFilter sets the free-text filter for the assignment view.
func (c *Controller) SetTextFilter(q string) {
	c.textFilter = q
}

// VisibleAssignments runs the composite day/text/sort query over the
// current run result. Nil-safe: no run means no rows.
func (c *Controller) VisibleAssignments() []models.AssignmentRecord {
	if c.run == nil {
		return nil
	}
	return assignments.Query(c.selectedDay, c.textFilter, c.run.Assignments)
}

// WeekUtilization classifies each day from the capacity vector and the
// current run's start counts. Before any run, every enabled day is
// available.
func (c *Controller) WeekUtilization() []utilization.DayUtilization {
	var starts map[models.DayKey]int
	if c.run != nil {
		starts = c.run.StartsByDay
	}
	return utilization.ClassifyWeek(c.capacity, starts)
}

// BeginOverview registers an outbound overview call and returns its token
// plus the query parameters. It fails when office or week is unset.
func (c *Controller) BeginOverview() (Token, error) {
	if c.office == "" || c.weekStart == "" {
		return Token{}, fmt.Errorf("select an office and week before loading the overview")
	}
	c.overviewSeq++
	c.errMsg = ""
	return c.token(c.overviewSeq), nil
}

// ApplyOverview applies an overview response. Late responses whose token
// no longer matches the current selection are dropped silently. Failures
// surface as a display-only message and leave existing metrics untouched.
// Reports whether the response was applied.
func (c *Controller) ApplyOverview(tok Token, m *models.Metrics, err error) bool {
	if tok.Seq != c.overviewSeq || !c.tokenCurrent(tok) {
		c.log.Debug("dropping stale overview response", "office", tok.Office, "week", tok.WeekStart, "seq", tok.Seq)
		return false
	}
	if err != nil {
		c.errMsg = err.Error()
		return false
	}
	c.metrics = m
	c.errMsg = ""
	if c.state < StateMetricsLoaded {
		c.state = StateMetricsLoaded
	}
	if c.store != nil {
		if cerr := c.store.SetMetrics(c.office, c.weekStart, m); cerr != nil {
			c.log.Warn("failed to cache metrics", "error", cerr)
		}
	}
	return true
}

// BeginDefaultCapacity registers an outbound office-default capacity call.
func (c *Controller) BeginDefaultCapacity() (Token, error) {
	if c.office == "" {
		return Token{}, fmt.Errorf("select an office before loading default capacity")
	}
	c.capacitySeq++
	return c.token(c.capacitySeq), nil
}

// ApplyDefaultCapacity installs the office's default capacity, but only
// if the response is the most recent request for the currently-selected
// office. Rapid office switching can deliver responses out of order.
func (c *Controller) ApplyDefaultCapacity(tok Token, m models.DayCapacityMap, err error) bool {
	if tok.Seq != c.capacitySeq || tok.Office != c.office {
		c.log.Debug("dropping stale capacity response", "office", tok.Office, "seq", tok.Seq)
		return false
	}
	if err != nil {
		c.errMsg = err.Error()
		return false
	}
	c.capacity = capacity.FromMap(m)
	return true
}

// ResetCapacityToDefaults zeroes the working vector; callers follow up
// with a fresh BeginDefaultCapacity round trip.
func (c *Controller) ResetCapacityToDefaults() {
	c.capacity = capacity.New()
}

// BeginRun validates and assembles the optimizer request, then moves the
// session to RunInFlight. Validation failures never reach the network.
func (c *Controller) BeginRun() (Token, models.RunRequest, error) {
	if c.state == StateRunInFlight {
		return Token{}, models.RunRequest{}, fmt.Errorf("a run is already in flight")
	}
	req, err := c.builder.Build(c.office, c.weekStart, c.policy, c.capacity)
	if err != nil {
		c.errMsg = err.Error()
		return Token{}, models.RunRequest{}, err
	}
	c.runSeq++
	c.errMsg = ""
	c.state = StateRunInFlight
	return c.token(c.runSeq), req, nil
}

// ApplyRun completes a run. A failed run reverts to the prior stable
// state and never partially applies a result; a stale response is
// discarded without touching state.
func (c *Controller) ApplyRun(tok Token, res *models.RunResult, err error) bool {
	if tok.Seq != c.runSeq || !c.tokenCurrent(tok) {
		c.log.Debug("dropping stale run response", "office", tok.Office, "week", tok.WeekStart, "seq", tok.Seq)
		return false
	}
	if err != nil {
		c.errMsg = err.Error()
		c.state = c.stableState()
		return false
	}
	c.run = res
	c.errMsg = ""
	c.state = StateRunComplete
	if c.store != nil {
		if cerr := c.store.SetRunResult(c.office, c.weekStart, res); cerr != nil {
			c.log.Warn("failed to cache run result", "error", cerr)
		}
	}
	return true
}

func (c *Controller) onCalendarEvent(ev models.CalendarEvent) {
	if ev.Action == models.ActionRunCompleted {
		return
	}
	if c.store != nil {
		if err := c.store.Invalidate(ev.Office); err != nil {
			c.log.Warn("failed to invalidate cache", "office", ev.Office, "error", err)
		}
	}
	if ev.Office != c.office {
		return
	}
	// The calendar changed under us; drop derived state so the next
	// render refetches.
	c.metrics = nil
	c.run = nil
	if c.state != StateRunInFlight {
		c.state = StateIdle
	}
	c.log.Info("calendar changed, local state invalidated", "office", ev.Office, "action", ev.Action, "count", ev.Count)
}

// resetSelection discards per-selection state after an office or week
// change, then restores cached snapshots for the new selection.
func (c *Controller) resetSelection() {
	c.metrics = nil
	c.run = nil
	c.errMsg = ""
	c.selectedDay = ""
	c.textFilter = ""
	c.state = StateIdle

	// Orphan any in-flight responses.
	c.overviewSeq++
	c.capacitySeq++
	c.runSeq++

	c.restoreFromCache()
}

func (c *Controller) restoreFromCache() {
	if c.store == nil || c.office == "" || c.weekStart == "" {
		return
	}
	if m, ok, err := c.store.GetMetrics(c.office, c.weekStart); err == nil && ok {
		c.metrics = m
		c.state = StateMetricsLoaded
	}
	if r, ok, err := c.store.GetRunResult(c.office, c.weekStart); err == nil && ok {
		c.run = r
		c.state = StateRunComplete
	}
}

func (c *Controller) stableState() State {
	if c.metrics != nil {
		return StateMetricsLoaded
	}
	return StateIdle
}

func (c *Controller) token(seq uint64) Token {
	return Token{Seq: seq, Office: c.office, WeekStart: c.weekStart}
}

func (c *Controller) tokenCurrent(tok Token) bool {
	return tok.Office == c.office && tok.WeekStart == c.weekStart
}
