package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/tui"
)

type TuiCmd struct {
	Office string `help:"Office to open with." short:"o"`
	Week   string `help:"Week to open with (YYYY-MM-DD or 'current')." default:"current"`
}

func (c *TuiCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		// The TUI can still start; the office list is fetched on boot.
		office = ""
	}
	week, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	ctrl := controller.New(ctx.Store, ctx.Events, ctx.Log)
	model := tui.NewModel(tui.Options{
		Controller: ctrl,
		Client:     ctx.Client,
		Events:     ctx.Events,
		Logger:     ctx.Log,
		Office:     office,
		WeekStart:  week,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
