// Package cli implements the loanboard commands. Each command runs
// against a shared Context wired up in main.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmoreau/loanboard/internal/api"
	"github.com/rmoreau/loanboard/internal/bus"
	"github.com/rmoreau/loanboard/internal/cache"
	"github.com/rmoreau/loanboard/internal/config"
	"github.com/rmoreau/loanboard/internal/logging"
	"github.com/rmoreau/loanboard/internal/models"
)

type Context struct {
	Config *config.Config
	Store  cache.Store
	Client *api.Client
	Events *bus.Bus
	Log    *logging.Logger
}

// resolveOffice picks the office from a flag, falling back to the
// configured default.
func (ctx *Context) resolveOffice(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if ctx.Config.DefaultOffice != "" {
		return ctx.Config.DefaultOffice, nil
	}
	return "", fmt.Errorf("no office selected: pass --office or set LOANBOARD_OFFICE")
}

// resolveWeek turns a week argument into the ISO Monday of that week.
// "current" (or empty) means this week; any other date snaps back to its
// Monday.
func resolveWeek(arg string) (string, error) {
	if arg == "" || arg == "current" {
		return models.MondayOf(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid week date, use YYYY-MM-DD or 'current': %w", err)
	}
	return models.MondayOf(t), nil
}

func formatAssignmentRows(recs []models.AssignmentRecord) string {
	if len(recs) == 0 {
		return "  (none)\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-10s  %-17s  %-22s  %-18s  %7s\n", "START", "VIN", "PARTNER", "VEHICLE", "SCORE"))
	for _, r := range recs {
		b.WriteString(fmt.Sprintf("  %-10s  %-17s  %-22s  %-18s  %7.1f\n",
			r.StartDay, r.VIN, r.PartnerName, r.Make+" "+r.Model, r.Score))
	}
	return b.String()
}
