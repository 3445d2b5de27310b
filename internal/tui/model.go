package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rmoreau/loanboard/internal/api"
	"github.com/rmoreau/loanboard/internal/bus"
	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/logging"
	"github.com/rmoreau/loanboard/internal/tui/components/assignmenttable"
	"github.com/rmoreau/loanboard/internal/tui/components/calendar"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateAssignments
	StateMetrics
	StateEditingPolicy
	StateEditingTotal
	StateFiltering
	StateConfirmDelete
)

// tabCount is the number of top-level tabs the tab key cycles through.
const tabCount = 3

type Model struct {
	ctrl   *controller.Controller
	client *api.Client
	events *bus.Bus
	log    *logging.Logger

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	spin          spinner.Model
	filterInput   textinput.Model
	calendarView  calendar.Model
	tableView     assignmenttable.Model

	form       *huh.Form
	policyForm *PolicyFormModel
	totalForm  *TotalFormModel

	offices   []string
	officeIdx int

	pendingDelete string // VIN of the assignment awaiting confirmation

	quitting bool
	width    int
	height   int
}

// Options carries the collaborators the TUI needs.
type Options struct {
	Controller *controller.Controller
	Client     *api.Client
	Events     *bus.Bus
	Logger     *logging.Logger
	Office     string
	WeekStart  string
}

func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	filter := textinput.New()
	filter.Placeholder = "vin, partner, make..."
	filter.CharLimit = 40

	m := Model{
		ctrl:         opts.Controller,
		client:       opts.Client,
		events:       opts.Events,
		log:          log,
		state:        StateCalendar,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spin:         sp,
		filterInput:  filter,
		calendarView: calendar.New(),
		tableView:    assignmenttable.New(),
	}

	if opts.Office != "" {
		m.ctrl.SetOffice(opts.Office)
	}
	if opts.WeekStart != "" {
		m.ctrl.SetWeek(opts.WeekStart)
	}

	m.refreshDerived()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchOfficesCmd(), m.spin.Tick}
	if m.ctrl.Office() != "" && m.ctrl.WeekStart() != "" {
		cmds = append(cmds, m.loadSelectionCmds()...)
	}
	return tea.Batch(cmds...)
}

// loadSelectionCmds issues the overview and default-capacity calls for
// the current selection.
func (m *Model) loadSelectionCmds() []tea.Cmd {
	var cmds []tea.Cmd
	if tok, err := m.ctrl.BeginOverview(); err == nil {
		cmds = append(cmds, m.fetchOverviewCmd(tok, m.ctrl.MinDays()))
	}
	if tok, err := m.ctrl.BeginDefaultCapacity(); err == nil {
		cmds = append(cmds, m.fetchCapacityCmd(tok))
	}
	return cmds
}

// refreshDerived recomputes the view-model slices the components render
// from. Called after anything that can change controller state.
func (m *Model) refreshDerived() {
	m.calendarView.SetWeek(m.ctrl.WeekUtilization())
	m.calendarView.SetFiltered(m.ctrl.SelectedDay())
	m.tableView.SetRecords(m.ctrl.VisibleAssignments())
}

// currentOfficeIdx locates the controller's office in the fetched office
// list, so cycling starts from the right place.
func (m *Model) currentOfficeIdx() int {
	for i, office := range m.offices {
		if office == m.ctrl.Office() {
			return i
		}
	}
	return 0
}
