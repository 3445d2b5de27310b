package cli

import (
	"context"
	"fmt"
	"strings"
)

type VehicleCmd struct {
	VIN    string `arg:"" help:"Vehicle to inspect."`
	Office string `help:"Office the vehicle belongs to." short:"o"`
}

func (c *VehicleCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		return err
	}

	vc, err := ctx.Client.VehicleContext(context.Background(), office, c.VIN)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", vc.Make, vc.Model, vc.VIN)
	fmt.Printf("  Tier: %s\n", vc.Tier)
	if len(vc.RecentPartners) > 0 {
		fmt.Printf("  Recent partners: %s\n", strings.Join(vc.RecentPartners, ", "))
	}
	if len(vc.Upcoming) > 0 {
		fmt.Println("\n  Upcoming loans:")
		fmt.Print(formatAssignmentRows(vc.Upcoming))
	}
	return nil
}
