package sitecheck

import (
	"context"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// Readability verifies that every user card carries at least one
// heading-like element and one text-like element.
func Readability(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "readability"}

	cardSel, count, err := selector.CountFirst(ctx, d, cfg.Selector(config.RoleCard))
	if err != nil {
		return result, err
	}
	result.Detail("count", count)
	if count == 0 {
		return result.Fail("no user cards found"), nil
	}

	headings, err := countsWithin(ctx, d, cardSel, cfg.Selector(config.RoleHeading), count)
	if err != nil {
		return result, err
	}
	texts, err := countsWithin(ctx, d, cardSel, cfg.Selector(config.RoleText), count)
	if err != nil {
		return result, err
	}

	for i := 0; i < count; i++ {
		if headings[i] == 0 {
			result.Detail("card", i)
			return result.Failf("card %d has no heading element", i), nil
		}
		if texts[i] == 0 {
			result.Detail("card", i)
			return result.Failf("card %d has no text element", i), nil
		}
	}
	return result.Pass(), nil
}
