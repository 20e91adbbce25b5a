package sitecheck

import (
	"context"
	"strings"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// VersionsNav looks for a navbar entry labelled with any of the known
// versions-page label variants.
func VersionsNav(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "versions-nav"}

	navSel, found, err := selector.First(ctx, d, cfg.Selector(config.RoleNavbarItem))
	if err != nil {
		return result, err
	}
	if !found {
		return result.Fail("no navbar items found"), nil
	}

	texts, err := d.Texts(ctx, navSel)
	if err != nil {
		return result, err
	}
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, label := range cfg.VersionsLabels {
			if strings.Contains(lower, strings.ToLower(label)) {
				result.Detail("entry", text)
				return result.Pass(), nil
			}
		}
	}
	return result.Failf("no navbar entry matches any of %v", cfg.VersionsLabels), nil
}
