// Package calendar renders the seven-day capacity strip with per-day
// utilization status and a movable cursor for capacity edits.
package calendar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreau/loanboard/internal/models"
	"github.com/rmoreau/loanboard/internal/utilization"
)

var (
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Margin(0, 1).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder())

	cursorStyle = cellStyle.
			BorderForeground(lipgloss.Color("205")).
			Bold(true)

	statusColors = map[utilization.Status]lipgloss.Color{
		utilization.StatusDisabled:     lipgloss.Color("240"),
		utilization.StatusAvailable:    lipgloss.Color("42"),
		utilization.StatusNearCapacity: lipgloss.Color("214"),
		utilization.StatusFull:         lipgloss.Color("196"),
	}

	filterMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

type Model struct {
	week     []utilization.DayUtilization
	cursor   int
	filtered models.DayKey
}

func New() Model {
	return Model{}
}

// SetWeek replaces the rendered utilization data.
func (m *Model) SetWeek(week []utilization.DayUtilization) {
	m.week = week
	if m.cursor >= len(week) {
		m.cursor = 0
	}
}

// SetFiltered marks the day currently used as the assignment filter.
func (m *Model) SetFiltered(day models.DayKey) {
	m.filtered = day
}

func (m *Model) MoveLeft() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveRight() {
	if m.cursor < len(m.week)-1 {
		m.cursor++
	}
}

// CursorDay returns the day under the cursor.
func (m *Model) CursorDay() models.DayKey {
	if len(m.week) == 0 {
		return models.DayMon
	}
	return m.week[m.cursor].Day
}

func (m Model) View() string {
	if len(m.week) == 0 {
		return "no capacity loaded"
	}

	cells := make([]string, 0, len(m.week))
	for i, du := range m.week {
		label := du.Day.Label()
		if du.Day == m.filtered {
			label = filterMarkStyle.Render("*") + label
		}
		body := fmt.Sprintf("%s\n%d/%d\n%s", label, du.UsedSlots, du.TotalSlots, du.Status)

		style := cellStyle
		if i == m.cursor {
			style = cursorStyle
		}
		cells = append(cells, style.Foreground(statusColors[du.Status]).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
