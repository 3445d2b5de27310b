package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rmoreau/loanboard/internal/api"
	"github.com/rmoreau/loanboard/internal/bus"
	"github.com/rmoreau/loanboard/internal/cache"
	"github.com/rmoreau/loanboard/internal/cli"
	"github.com/rmoreau/loanboard/internal/config"
	"github.com/rmoreau/loanboard/internal/logging"
)

var CLI struct {
	Version kong.VersionFlag

	Tui         cli.TuiCmd         `cmd:"" help:"Launch the interactive planning board." default:"1"`
	Run         cli.RunCmd         `cmd:"" help:"Run the optimizer for one office and week."`
	Overview    cli.OverviewCmd    `cmd:"" help:"Show the office overview for a week."`
	Offices     cli.OfficesCmd     `cmd:"" help:"List offices known to the backend."`
	Capacity    cli.CapacityCmd    `cmd:"" help:"Show or preview weekly capacity."`
	Assignments cli.AssignmentsCmd `cmd:"" help:"Query the cached run for an office and week."`
	Chain       cli.ChainCmd       `cmd:"" help:"Suggest a back-to-back loan chain for a partner."`
	Rates       cli.RatesCmd       `cmd:"" help:"Show partner publication rates."`
	Vehicle     cli.VehicleCmd     `cmd:"" help:"Inspect a single vehicle."`
	Cache       cli.CacheCmd       `cmd:"" help:"Manage the local snapshot cache."`
	Doctor      cli.DoctorCmd      `cmd:"" help:"Check config, backend, and cache health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("loanboard"),
		kong.Description("Weekly capacity and assignment board for vehicle loan scheduling"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so its logs go to a file instead.
	var log *logging.Logger
	if ctx.Command() == "tui" {
		log, err = logging.NewFile(cfg.LogPath, cfg.LogLevel)
	} else {
		log, err = logging.New(cfg.LogLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store := cache.NewSQLiteStore(cfg.CachePath)
	if err := store.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Config: cfg,
		Store:  store,
		Client: api.NewClient(cfg.BaseURL, cfg.RequestTimeout, log),
		Events: bus.New(),
		Log:    log,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
