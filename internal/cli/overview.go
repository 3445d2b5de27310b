package cli

import (
	"context"
	"fmt"

	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/models"
)

type OverviewCmd struct {
	Office  string `help:"Office to inspect." short:"o"`
	Week    string `help:"Week to inspect (YYYY-MM-DD or 'current')." default:"current"`
	MinDays int    `help:"Minimum loan length in days." default:"3"`
}

func (c *OverviewCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		return err
	}
	week, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	ctrl := controller.New(ctx.Store, ctx.Events, ctx.Log)
	ctrl.SetOffice(office)
	ctrl.SetWeek(week)
	ctrl.SetMinDays(c.MinDays)

	m := ctrl.Metrics()
	if m == nil {
		tok, err := ctrl.BeginOverview()
		if err != nil {
			return err
		}
		fetched, err := ctx.Client.Overview(context.Background(), office, week, c.MinDays)
		if !ctrl.ApplyOverview(tok, fetched, err) {
			return fmt.Errorf("failed to load overview: %s", ctrl.ErrorMessage())
		}
		m = ctrl.Metrics()
	}

	fmt.Printf("Overview for %s, week of %s (min %d days)\n\n", office, week, c.MinDays)
	fmt.Printf("  Vehicles:  %d available / %d total\n", m.Vehicles.Available, m.Vehicles.Total)
	fmt.Printf("  Partners:  %d eligible / %d total\n", m.Partners.Eligible, m.Partners.Total)
	fmt.Printf("  Makes in scope: %d\n", m.MakesInScope)
	fmt.Printf("  Feasible triples: %d pre-cooldown, %d post-cooldown (%d removed)\n",
		m.FeasibleTriplesPreCooldown, m.FeasibleTriplesPostCooldown, m.CooldownRemovedTriples)
	fmt.Printf("  Budget: %s\n", m.BudgetStatus)

	if len(m.Capacity) > 0 {
		fmt.Println("\n  Capacity:")
		for _, d := range models.WeekDays() {
			note, ok := m.Capacity[d]
			if !ok {
				continue
			}
			line := fmt.Sprintf("    %s  %2d slots", d.Label(), note.Slots)
			if note.Notes != "" {
				line += "  (" + note.Notes + ")"
			}
			fmt.Println(line)
		}
	}
	return nil
}
