// Package selector implements prioritized selector fallback lists.
// Pages under test vary in markup, so each logical element role maps
// to several candidate selectors tried in order.
package selector

import (
	"context"

	"pagecheck/pkg/browser"
)

// List is an ordered set of candidate selectors for one element role.
type List []string

// First returns the first selector in the list with at least one match,
// and found=false when none match. An engine fault stops the scan.
func First(ctx context.Context, d browser.Driver, list List) (string, bool, error) {
	for _, sel := range list {
		n, err := d.Count(ctx, sel)
		if err != nil {
			return "", false, err
		}
		if n > 0 {
			return sel, true, nil
		}
	}
	return "", false, nil
}

// CountFirst returns the match count of the first selector that matches
// anything, or 0 when none do.
func CountFirst(ctx context.Context, d browser.Driver, list List) (string, int, error) {
	for _, sel := range list {
		n, err := d.Count(ctx, sel)
		if err != nil {
			return "", 0, err
		}
		if n > 0 {
			return sel, n, nil
		}
	}
	return "", 0, nil
}

// Fill fills the first present element in the list with value.
// Reports false when no candidate is present.
func Fill(ctx context.Context, d browser.Driver, list List, value string) (bool, error) {
	sel, found, err := First(ctx, d, list)
	if err != nil || !found {
		return false, err
	}
	if err := d.Fill(ctx, sel, value); err != nil {
		return false, err
	}
	return true, nil
}

// Click clicks the first present element in the list.
// Reports false when no candidate is present.
func Click(ctx context.Context, d browser.Driver, list List) (bool, error) {
	sel, found, err := First(ctx, d, list)
	if err != nil || !found {
		return false, err
	}
	if err := d.Click(ctx, sel); err != nil {
		return false, err
	}
	return true, nil
}
