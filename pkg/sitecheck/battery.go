// Package sitecheck probes the demo app's DOM for the elements and
// behaviors the page is expected to ship. Every check is an independent
// predicate over a browser.Driver; absence of an expected element is a
// reported failure, never an error. Errors mean the driver faulted.
package sitecheck

import (
	"context"
	"fmt"
	"strings"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
)

// Func is the uniform shape of every check in the battery.
type Func func(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error)

// Check pairs a battery entry with its report name.
type Check struct {
	Name string
	Run  Func
}

// Battery returns the checks in their fixed execution order. The order
// carries no semantics but is preserved so reports are reproducible.
func Battery() []Check {
	return []Check{
		{Name: "card-presence", Run: Cards},
		{Name: "refresh-recenter", Run: RefreshRecenter},
		{Name: "readability", Run: Readability},
		{Name: "advanced-search", Run: AdvancedSearch},
		{Name: "navbar-photo-transition", Run: NavbarPhoto},
		{Name: "documentation-anchors", Run: DocAnchors},
		{Name: "versions-nav", Run: VersionsNav},
		{Name: "access-chart", Run: AccessChart},
		{Name: "donate-anti-bot", Run: DonateAntiBot},
	}
}

// Names returns the battery check names in execution order.
func Names() []string {
	battery := Battery()
	names := make([]string, len(battery))
	for i, c := range battery {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a battery check by name.
func Lookup(name string) (Check, bool) {
	for _, c := range Battery() {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// RunAll executes the whole battery in order and folds the results into
// one report. A driver fault inside any check aborts the battery and
// propagates; no partial report is produced.
func RunAll(ctx context.Context, d browser.Driver, cfg config.Config) (*check.Report, error) {
	cfg = cfg.WithDefaults()

	if err := ensurePage(ctx, d, cfg); err != nil {
		return nil, err
	}

	rep := check.NewReport()
	for _, c := range Battery() {
		result, err := c.Run(ctx, d, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		rep.Add(c.Name, result)
	}
	return rep, nil
}

// RunOne executes a single battery check by name, applying the same
// blank-page navigation guard as RunAll.
func RunOne(ctx context.Context, d browser.Driver, cfg config.Config, name string) (check.Result, error) {
	c, ok := Lookup(name)
	if !ok {
		return check.Result{}, fmt.Errorf("unknown check %q", name)
	}
	cfg = cfg.WithDefaults()
	if err := ensurePage(ctx, d, cfg); err != nil {
		return check.Result{}, err
	}
	return c.Run(ctx, d, cfg)
}

// ensurePage navigates to the configured URL only when the driver is
// still on a blank page. An already-loaded page is left alone so checks
// compose against whatever state a prior check left behind.
func ensurePage(ctx context.Context, d browser.Driver, cfg config.Config) error {
	loc, err := d.Location(ctx)
	if err != nil {
		return fmt.Errorf("reading page location: %w", err)
	}
	if loc == "" || loc == "about:blank" || strings.HasPrefix(loc, "chrome://") {
		return d.Navigate(ctx, cfg.URL)
	}
	return nil
}
