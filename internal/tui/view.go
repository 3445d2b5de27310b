package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreau/loanboard/internal/controller"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCalendar:
		content = m.viewCalendar()
	case StateAssignments:
		content = m.viewAssignments()
	case StateMetrics:
		content = m.viewMetrics()
	case StateEditingPolicy, StateEditingTotal:
		content = m.form.View()
	case StateFiltering:
		content = m.viewAssignments() + "\n" + m.filterInput.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatusBar(),
		docStyle.Render(content),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Calendar", "Assignments", "Metrics"} {
		if m.tabState() == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// tabState maps overlay states back onto the tab they were opened from.
func (m Model) tabState() SessionState {
	if m.state < tabCount {
		return m.state
	}
	return m.previousState
}

func (m Model) viewStatusBar() string {
	office := m.ctrl.Office()
	if office == "" {
		office = "(no office)"
	}
	week := m.ctrl.WeekStart()
	if week == "" {
		week = "(no week)"
	}

	status := fmt.Sprintf("%s · week of %s · %s", office, week, m.ctrl.State())
	if m.ctrl.State() == controller.StateRunInFlight {
		status += " " + m.spin.View()
	}
	bar := statusBarStyle.Render(status)

	if msg := m.ctrl.ErrorMessage(); msg != "" {
		bar += " " + errorStyle.Render(msg)
	}
	return bar
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Weekly capacity"))
	b.WriteString("\n\n")
	b.WriteString(m.calendarView.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("weekly total: %d slots", m.ctrl.Capacity().Total()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("+/- edit day · t set total · R reset · enter filter day · g run"))
	return b.String()
}

func (m Model) viewAssignments() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Assignments"))

	var filters []string
	if day := m.ctrl.SelectedDay(); day != "" {
		filters = append(filters, "day="+string(day))
	}
	if q := m.ctrl.TextFilter(); q != "" {
		filters = append(filters, "text="+q)
	}
	if len(filters) > 0 {
		b.WriteString("  " + mutedStyle.Render(strings.Join(filters, " ")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.tableView.View())
	return b.String()
}

func (m Model) viewMetrics() string {
	metrics := m.ctrl.Metrics()
	if metrics == nil {
		return "no overview loaded yet, press r to refresh"
	}

	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Office overview"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("vehicles     %d available / %d total\n", metrics.Vehicles.Available, metrics.Vehicles.Total))
	b.WriteString(fmt.Sprintf("partners     %d eligible / %d total\n", metrics.Partners.Eligible, metrics.Partners.Total))
	b.WriteString(fmt.Sprintf("makes        %d in scope\n", metrics.MakesInScope))
	b.WriteString(fmt.Sprintf("triples      %d pre-cooldown / %d post-cooldown (%d removed)\n",
		metrics.FeasibleTriplesPreCooldown, metrics.FeasibleTriplesPostCooldown, metrics.CooldownRemovedTriples))
	b.WriteString(fmt.Sprintf("budget       %s\n", metrics.BudgetStatus))

	if run := m.ctrl.RunResult(); run != nil {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render("Last run"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("status       %s · %d assignments\n", run.Status, len(run.Assignments)))
		b.WriteString(fmt.Sprintf("fairness     gini %.3f\n", run.Fairness.Gini))
		b.WriteString(fmt.Sprintf("caps         %d at day cap / %d at week cap\n", run.Caps.PartnersAtDayCap, run.Caps.PartnersAtWeekCap))
		b.WriteString(fmt.Sprintf("budget       %s (%.0f of %.0f)\n", run.Budget.Status, run.Budget.Used, run.Budget.Limit))
		if len(run.ObjectiveBreakdown) > 0 {
			b.WriteString("objective   ")
			for name, val := range run.ObjectiveBreakdown {
				b.WriteString(fmt.Sprintf(" %s=%.1f", name, val))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewAssignments(),
		"",
		errorStyle.Render(fmt.Sprintf("Delete assignment for %s? [y/N]", m.pendingDelete)),
	)
}
