package cli

import (
	"context"
	"fmt"

	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/models"
)

type RunCmd struct {
	Office string `help:"Office to schedule." short:"o"`
	Week   string `help:"Week to schedule (YYYY-MM-DD or 'current')." default:"current"`
	Total  int    `help:"Weekly capacity total; spread over Mon-Fri. -1 uses office defaults." default:"-1"`

	RankWeight float64 `help:"Partner rank weight (0.0-1.0)." default:"0.5"`
	GeoMatch   int     `help:"Geographic match weight (0-10)." default:"5"`
	PubRate    int     `help:"Publication rate weight (0-10)." default:"5"`
	Engagement int     `help:"Engagement priority (0-10)." default:"5"`
	MaxDay     int     `help:"Max loans per partner per day." default:"1"`
	MaxWeek    int     `help:"Max loans per partner per week." default:"2"`
	Cooldown   int     `help:"Cooldown days between repeat model/partner loans." default:"30"`
	HardBudget bool    `help:"Treat budget as a hard constraint."`
}

func (c *RunCmd) Run(ctx *Context) error {
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
	ctrl.SetPolicy(models.PolicyConfig{
		RankWeight:         c.RankWeight,
		GeoMatch:           c.GeoMatch,
		PubRate:            c.PubRate,
		EngagementPriority: c.Engagement,
		MaxPerPartnerDay:   c.MaxDay,
		MaxPerPartnerWeek:  c.MaxWeek,
		CooldownDays:       c.Cooldown,
		PreferNormalDays:   true,
		EnforceBudgetHard:  c.HardBudget,
	})

	if c.Total >= 0 {
		ctrl.SetCapacityTotal(c.Total)
	} else {
		tok, err := ctrl.BeginDefaultCapacity()
		if err != nil {
			return err
		}
		caps, err := ctx.Client.DefaultCapacity(context.Background(), office)
		if !ctrl.ApplyDefaultCapacity(tok, caps, err) {
			return fmt.Errorf("failed to load office defaults: %w", err)
		}
	}

	tok, req, err := ctrl.BeginRun()
	if err != nil {
		return err
	}

	fmt.Printf("Running optimizer for %s, week of %s (seed %d)...\n", office, week, req.Seed)
	res, err := ctx.Client.RunOptimizer(context.Background(), req)
	if !ctrl.ApplyRun(tok, res, err) {
		return fmt.Errorf("run failed: %s", ctrl.ErrorMessage())
	}

	fmt.Printf("\nStatus: %s, %d assignments\n\n", res.Status, len(res.Assignments))
	fmt.Print(formatAssignmentRows(ctrl.VisibleAssignments()))

	fmt.Println("\nDay utilization:")
	for _, du := range ctrl.WeekUtilization() {
		fmt.Printf("  %s  %2d/%2d  %s\n", du.Day.Label(), du.UsedSlots, du.TotalSlots, du.Status)
	}

	fmt.Printf("\nFairness gini: %.3f | caps: %d at day cap, %d at week cap | budget: %s\n",
		res.Fairness.Gini, res.Caps.PartnersAtDayCap, res.Caps.PartnersAtWeekCap, res.Budget.Status)
	return nil
}
