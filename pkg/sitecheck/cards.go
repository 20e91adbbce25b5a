package sitecheck

import (
	"context"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// Cards verifies that at least one user card is rendered and that every
// card carries name, email, and nationality sub-elements.
func Cards(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "card-presence"}

	cardSel, count, err := selector.CountFirst(ctx, d, cfg.Selector(config.RoleCard))
	if err != nil {
		return result, err
	}
	result.Detail("count", count)
	if count == 0 {
		return result.Fail("no user cards found"), nil
	}

	parts := []struct {
		label string
		role  string
	}{
		{"name", config.RoleCardName},
		{"email", config.RoleCardEmail},
		{"nationality", config.RoleCardNationality},
	}
	for _, part := range parts {
		counts, err := countsWithin(ctx, d, cardSel, cfg.Selector(part.role), count)
		if err != nil {
			return result, err
		}
		for i, n := range counts {
			if n == 0 {
				result.Detail("missing", part.label)
				result.Detail("card", i)
				return result.Failf("card %d has no %s element", i, part.label), nil
			}
		}
	}

	return result.Pass(), nil
}
