package sitecheck

import (
	"context"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/selector"
)

// countsWithin returns, for each of the n elements matching parent, the
// best child match count across the fallback candidates. A card with a
// `.user-name` child and another with an `h2` both count as having a
// name element even though different candidates matched.
func countsWithin(ctx context.Context, d browser.Driver, parent string, candidates selector.List, n int) ([]int, error) {
	best := make([]int, n)
	for _, child := range candidates {
		counts, err := d.CountIn(ctx, parent, child)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(counts) && i < n; i++ {
			if counts[i] > best[i] {
				best[i] = counts[i]
			}
		}
	}
	return best, nil
}
