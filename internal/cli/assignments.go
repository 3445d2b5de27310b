package cli

import (
	"fmt"

	"github.com/rmoreau/loanboard/internal/assignments"
	"github.com/rmoreau/loanboard/internal/models"
)

type AssignmentsCmd struct {
	Office string `help:"Office whose cached run to query." short:"o"`
	Week   string `help:"Week to query (YYYY-MM-DD or 'current')." default:"current"`
	Day    string `help:"Limit to one day (mon..sun)."`
	Filter string `help:"Case-insensitive text filter." short:"f"`
}

func (c *AssignmentsCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		return err
	}
	week, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	day := models.DayKey(c.Day)
	if c.Day != "" && !day.Valid() {
		return fmt.Errorf("invalid day %q, use mon..sun", c.Day)
	}

	res, ok, err := ctx.Store.GetRunResult(office, week)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no cached run for %s, week of %s: run 'loanboard run' first", office, week)
	}

	recs := assignments.Query(day, c.Filter, res.Assignments)
	fmt.Printf("Assignments for %s, week of %s (%d of %d shown)\n\n",
		office, week, len(recs), len(res.Assignments))
	fmt.Print(formatAssignmentRows(recs))
	return nil
}
