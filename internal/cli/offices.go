package cli

import (
	"context"
	"fmt"
)

type OfficesCmd struct{}

func (c *OfficesCmd) Run(ctx *Context) error {
	offices, err := ctx.Client.Offices(context.Background())
	if err != nil {
		return err
	}
	if len(offices) == 0 {
		fmt.Println("No offices configured on the backend.")
		return nil
	}
	for _, o := range offices {
		marker := " "
		if o == ctx.Config.DefaultOffice {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, o)
	}
	return nil
}
