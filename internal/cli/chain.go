package cli

import (
	"context"
	"fmt"

	"github.com/rmoreau/loanboard/internal/request"
)

type ChainCmd struct {
	Person int64  `help:"Partner to build a chain for." required:""`
	Start  string `help:"First loan start date (YYYY-MM-DD)." required:""`
	Length int    `help:"Number of back-to-back loans." default:"3"`
	MaxGap int    `help:"Max idle days between consecutive loans." default:"2"`
	Office string `help:"Office to search within." short:"o"`
}

func (c *ChainCmd) Run(ctx *Context) error {
	office, err := ctx.resolveOffice(c.Office)
	if err != nil {
		return err
	}

	req, err := request.NewBuilder().BuildChain(office, c.Person, c.Start, c.Length, c.MaxGap)
	if err != nil {
		return err
	}

	sug, err := ctx.Client.SuggestChain(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("Chain %s for partner %d (total score %.1f)\n\n", sug.ChainID, c.Person, sug.TotalScore)
	fmt.Print(formatAssignmentRows(sug.Links))
	return nil
}
