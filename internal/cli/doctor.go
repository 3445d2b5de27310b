package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"
)

type DoctorCmd struct{}

// Run checks the local setup: config, backend reachability, the cache
// database, and whether another loanboard process already holds it.
func (c *DoctorCmd) Run(ctx *Context) error {
	failures := 0
	check := func(name string, err error) {
		if err != nil {
			failures++
			fmt.Printf("  ✗ %-20s %v\n", name, err)
			return
		}
		fmt.Printf("  ✓ %s\n", name)
	}

	fmt.Println("loanboard doctor")

	check("config", ctx.Config.Validate())

	reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := ctx.Client.Offices(reqCtx)
	check(fmt.Sprintf("backend (%s)", ctx.Config.BaseURL), err)

	check("cache database", func() error {
		_, _, err := ctx.Store.GetMetrics("doctor", "1970-01-05")
		return err
	}())

	check("single instance", otherInstance())

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

// otherInstance reports an error when a second loanboard process is
// running, since concurrent writers corrupt the sqlite cache.
func otherInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %w", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), "loanboard") {
			return fmt.Errorf("another loanboard process is running (pid %d)", p.Pid())
		}
	}
	return nil
}
