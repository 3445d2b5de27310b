package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/models"
)

// All collaborator calls run as commands so the update loop stays
// single-threaded: a call's completion arrives as a message and nothing
// else mutates model state in between.

func (m Model) fetchOfficesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		offices, err := client.Offices(context.Background())
		return officesMsg{offices: offices, err: err}
	}
}

func (m Model) fetchOverviewCmd(tok controller.Token, minDays int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		metrics, err := client.Overview(context.Background(), tok.Office, tok.WeekStart, minDays)
		return overviewMsg{tok: tok, metrics: metrics, err: err}
	}
}

func (m Model) fetchCapacityCmd(tok controller.Token) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		caps, err := client.DefaultCapacity(context.Background(), tok.Office)
		return capacityMsg{tok: tok, caps: caps, err: err}
	}
}

func (m Model) runOptimizerCmd(tok controller.Token, req models.RunRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		res, err := client.RunOptimizer(context.Background(), req)
		return runMsg{tok: tok, res: res, err: err}
	}
}

func (m Model) deleteAssignmentCmd(office string, rec models.AssignmentRecord) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		count, err := client.DeleteAssignment(context.Background(), office, rec.VIN, rec.PersonID)
		return deleteMsg{office: office, vin: rec.VIN, personID: rec.PersonID, count: count, err: err}
	}
}
