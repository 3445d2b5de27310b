package tui

import (
	"github.com/rmoreau/loanboard/internal/controller"
	"github.com/rmoreau/loanboard/internal/models"
)

// Messages produced by collaborator calls. Each carries the token of the
// request that issued it so the controller can discard late arrivals.

type officesMsg struct {
	offices []string
	err     error
}

type overviewMsg struct {
	tok     controller.Token
	metrics *models.Metrics
	err     error
}

type capacityMsg struct {
	tok  controller.Token
	caps models.DayCapacityMap
	err  error
}

type runMsg struct {
	tok controller.Token
	res *models.RunResult
	err error
}

type deleteMsg struct {
	office   string
	vin      string
	personID int64
	count    int
	err      error
}
