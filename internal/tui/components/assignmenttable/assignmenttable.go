// Package assignmenttable wraps the bubbles table for the filtered,
// sorted assignment view.
package assignmenttable

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreau/loanboard/internal/models"
)

type Model struct {
	table table.Model
	recs  []models.AssignmentRecord
}

func New() Model {
	columns := []table.Column{
		{Title: "Start", Width: 10},
		{Title: "VIN", Width: 17},
		{Title: "Partner", Width: 22},
		{Title: "Vehicle", Width: 18},
		{Title: "Score", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{table: t}
}

// SetRecords replaces the visible rows. The slice is already filtered and
// ordered by the caller.
func (m *Model) SetRecords(recs []models.AssignmentRecord) {
	m.recs = recs
	rows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, table.Row{
			r.StartDay,
			r.VIN,
			r.PartnerName,
			fmt.Sprintf("%s %s", r.Make, r.Model),
			fmt.Sprintf("%.1f", r.Score),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the record under the cursor.
func (m *Model) Selected() (models.AssignmentRecord, bool) {
	if len(m.recs) == 0 {
		return models.AssignmentRecord{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.recs) {
		return models.AssignmentRecord{}, false
	}
	return m.recs[cursor], true
}

func (m *Model) SetHeight(h int) {
	if h > 3 {
		m.table.SetHeight(h)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.recs) == 0 {
		return "no assignments to show"
	}
	return m.table.View()
}
