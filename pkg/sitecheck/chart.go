package sitecheck

import (
	"context"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// AccessChart locates the access chart container and requires at least
// one bar, day, or progress element inside it.
func AccessChart(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "access-chart"}

	chartSel, found, err := selector.First(ctx, d, cfg.Selector(config.RoleChart))
	if err != nil {
		return result, err
	}
	if !found {
		return result.Fail("access chart container not found"), nil
	}

	total := 0
	for _, barSel := range cfg.Selector(config.RoleChartBar) {
		counts, err := d.CountIn(ctx, chartSel, barSel)
		if err != nil {
			return result, err
		}
		for _, n := range counts {
			total += n
		}
		if total > 0 {
			break
		}
	}
	result.Detail("elements", total)
	if total == 0 {
		return result.Fail("access chart has no bar elements"), nil
	}
	return result.Pass(), nil
}
