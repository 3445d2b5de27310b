package cli

import (
	"context"
	"fmt"

	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/models"
	"github.com/rmoreau/loanboard/internal/utilization"
)

type CapacityCmd struct {
	Office string `help:"Office whose defaults to show." short:"o"`
	Total  int    `help:"Preview redistributing this weekly total over Mon-Fri instead." default:"-1"`
}

func (c *CapacityCmd) Run(ctx *Context) error {
	var vec capacity.Vector
	var header string

	if c.Total >= 0 {
		vec = capacity.New().SetTotal(c.Total)
		header = fmt.Sprintf("Weekly total %d spread over workdays:", vec.Total())
	} else {
		office, err := ctx.resolveOffice(c.Office)
		if err != nil {
			return err
		}
		caps, err := ctx.Client.DefaultCapacity(context.Background(), office)
		if err != nil {
			return err
		}
		vec = capacity.FromMap(caps)
		header = fmt.Sprintf("Default capacity for %s:", office)
	}

	fmt.Println(header)
	for _, d := range models.WeekDays() {
		slots := vec.Day(d)
		fmt.Printf("  %s  %2d  %s\n", d.Label(), slots, utilization.Classify(slots, 0))
	}
	fmt.Printf("  Total %d\n", vec.Total())
	return nil
}
