package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rmoreau/loanboard/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.tableView.SetHeight(msg.Height - 10)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case officesMsg:
		if msg.err != nil {
			m.ctrl.ReportError(msg.err)
			return m, nil
		}
		m.offices = msg.offices
		m.officeIdx = m.currentOfficeIdx()
		if m.ctrl.Office() == "" && len(m.offices) > 0 {
			m.ctrl.SetOffice(m.offices[0])
			if m.ctrl.WeekStart() != "" {
				m.refreshDerived()
				return m, tea.Batch(m.loadSelectionCmds()...)
			}
		}
		return m, nil

	case overviewMsg:
		m.ctrl.ApplyOverview(msg.tok, msg.metrics, msg.err)
		m.refreshDerived()
		return m, nil

	case capacityMsg:
		m.ctrl.ApplyDefaultCapacity(msg.tok, msg.caps, msg.err)
		m.refreshDerived()
		return m, nil

	case runMsg:
		applied := m.ctrl.ApplyRun(msg.tok, msg.res, msg.err)
		m.refreshDerived()
		if applied && msg.err == nil && m.state == StateCalendar {
			m.state = StateAssignments
		}
		return m, nil

	case deleteMsg:
		if msg.err != nil {
			m.ctrl.ReportError(msg.err)
			return m, nil
		}
		// The bus fans this out; the controller invalidates its own
		// state and cache, then we refetch the selection.
		m.events.Publish(models.CalendarEvent{
			Office:   msg.office,
			VIN:      msg.vin,
			PersonID: msg.personID,
			Action:   models.ActionAssignmentDeleted,
			Count:    msg.count,
		})
		m.refreshDerived()
		return m, tea.Batch(m.loadSelectionCmds()...)
	}

	switch m.state {
	case StateEditingPolicy, StateEditingTotal:
		return m.updateForm(msg)
	case StateFiltering:
		return m.updateFiltering(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil

	case key.Matches(keyMsg, m.keys.NextOffice):
		return m.cycleOffice(1)

	case key.Matches(keyMsg, m.keys.PrevOffice):
		return m.cycleOffice(-1)

	case key.Matches(keyMsg, m.keys.NextWeek):
		return m.shiftWeek(1)

	case key.Matches(keyMsg, m.keys.PrevWeek):
		return m.shiftWeek(-1)

	case key.Matches(keyMsg, m.keys.Refresh):
		return m, tea.Batch(m.loadSelectionCmds()...)

	case key.Matches(keyMsg, m.keys.Run):
		tok, req, err := m.ctrl.BeginRun()
		if err != nil {
			return m, nil // message already surfaced by the controller
		}
		m.log.Info("optimizer run requested", "office", req.Office, "week", req.WeekStart)
		return m, tea.Batch(m.runOptimizerCmd(tok, req), m.spin.Tick)

	case key.Matches(keyMsg, m.keys.Policy):
		m.previousState = m.state
		m.policyForm = policyFormFrom(m.ctrl.Policy())
		m.form = newPolicyForm(m.policyForm)
		m.state = StateEditingPolicy
		return m, m.form.Init()
	}

	switch m.state {
	case StateCalendar:
		return m.updateCalendar(keyMsg)
	case StateAssignments:
		return m.updateAssignments(keyMsg)
	}
	return m, nil
}

func (m Model) updateCalendar(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.calendarView.MoveLeft()

	case key.Matches(keyMsg, m.keys.Right):
		m.calendarView.MoveRight()

	case key.Matches(keyMsg, m.keys.IncSlots):
		day := m.calendarView.CursorDay()
		m.ctrl.SetCapacityDay(day, m.ctrl.Capacity().Day(day)+1)
		m.refreshDerived()

	case key.Matches(keyMsg, m.keys.DecSlots):
		day := m.calendarView.CursorDay()
		m.ctrl.SetCapacityDay(day, m.ctrl.Capacity().Day(day)-1)
		m.refreshDerived()

	case key.Matches(keyMsg, m.keys.EditTotal):
		m.previousState = m.state
		m.totalForm = &TotalFormModel{}
		m.form = newTotalForm(m.totalForm)
		m.state = StateEditingTotal
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.ResetCaps):
		m.ctrl.ResetCapacityToDefaults()
		m.refreshDerived()
		if tok, err := m.ctrl.BeginDefaultCapacity(); err == nil {
			return m, m.fetchCapacityCmd(tok)
		}

	case key.Matches(keyMsg, m.keys.FilterDay):
		// Toggle the day filter to the day under the cursor.
		day := m.calendarView.CursorDay()
		if m.ctrl.SelectedDay() == day {
			m.ctrl.SelectDay("")
		} else {
			m.ctrl.SelectDay(day)
		}
		m.refreshDerived()
	}
	return m, nil
}

func (m Model) updateAssignments(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Filter):
		m.previousState = m.state
		m.filterInput.SetValue(m.ctrl.TextFilter())
		m.filterInput.Focus()
		m.state = StateFiltering
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		if rec, ok := m.tableView.Selected(); ok {
			m.pendingDelete = rec.VIN
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tableView, cmd = m.tableView.Update(keyMsg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case StateEditingPolicy:
			m.ctrl.SetPolicy(m.policyForm.toPolicy())
		case StateEditingTotal:
			if fm := m.totalForm; fm != nil {
				m.ctrl.SetCapacityTotal(atoiOrZero(fm.Total))
			}
		}
		m.form = nil
		m.state = m.previousState
		m.refreshDerived()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateFiltering(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.filterInput.Blur()
			m.state = m.previousState
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.ctrl.SetTextFilter(m.filterInput.Value())
	m.refreshDerived()
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		rec, ok := m.tableView.Selected()
		m.state = m.previousState
		m.pendingDelete = ""
		if !ok {
			return m, nil
		}
		return m, m.deleteAssignmentCmd(m.ctrl.Office(), rec)
	case "n", "N", "esc", "q":
		m.pendingDelete = ""
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) cycleOffice(dir int) (tea.Model, tea.Cmd) {
	if len(m.offices) == 0 {
		return m, nil
	}
	m.officeIdx = (m.officeIdx + dir + len(m.offices)) % len(m.offices)
	m.ctrl.SetOffice(m.offices[m.officeIdx])
	m.refreshDerived()
	return m, tea.Batch(m.loadSelectionCmds()...)
}

func (m Model) shiftWeek(weeks int) (tea.Model, tea.Cmd) {
	current := m.ctrl.WeekStart()
	if current == "" {
		return m, nil
	}
	m.ctrl.SetWeek(models.AddWeeks(current, weeks))
	m.refreshDerived()
	return m, tea.Batch(m.loadSelectionCmds()...)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
