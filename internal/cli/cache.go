package cli

import "fmt"

type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Drop all cached overview and run snapshots."`
}

type CacheClearCmd struct {
	Office string `help:"Only drop snapshots for this office." short:"o"`
}

func (c *CacheClearCmd) Run(ctx *Context) error {
	if c.Office != "" {
		if err := ctx.Store.Invalidate(c.Office); err != nil {
			return err
		}
		fmt.Printf("Cleared cached snapshots for %s.\n", c.Office)
		return nil
	}
	if err := ctx.Store.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared all cached snapshots.")
	return nil
}
