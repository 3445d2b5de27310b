package cli

import (
	"context"
	"fmt"
	"strings"
)

type RatesCmd struct {
	Office string `help:"Office whose publication rates to show." short:"o"`
	Make   string `help:"Limit to one vehicle make."`
}

func (c *RatesCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		return err
	}

	rates, err := ctx.Client.PublicationRates(context.Background(), office)
	if err != nil {
		return err
	}

	fmt.Printf("Publication rates for %s\n\n", office)
	fmt.Printf("  %-22s  %-14s  %6s  %7s\n", "PARTNER", "MAKE", "RATE", "SAMPLES")
	shown := 0
	for _, r := range rates {
		if c.Make != "" && !strings.EqualFold(r.Make, c.Make) {
			continue
		}
		fmt.Printf("  %-22s  %-14s  %5.0f%%  %7d\n", r.PartnerName, r.Make, r.Rate*100, r.SampleSize)
		shown++
	}
	if shown == 0 {
		fmt.Println("  (none)")
	}
	return nil
}
