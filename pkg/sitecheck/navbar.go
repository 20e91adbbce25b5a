package sitecheck

import (
	"context"
	"strconv"
	"strings"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// NavbarPhoto clicks the second navbar item and samples the opacity of
// the first photo before and after a settle delay. The transition is
// considered healthy when opacity does not decrease, or when the photo
// declares a CSS transition at all.
func NavbarPhoto(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "navbar-photo-transition"}

	clicked, err := selector.Click(ctx, d, cfg.Selector(config.RoleNavbarSecond))
	if err != nil {
		return result, err
	}
	result.Detail("navbarClicked", clicked)

	photoSel, count, err := selector.CountFirst(ctx, d, cfg.Selector(config.RolePhoto))
	if err != nil {
		return result, err
	}
	result.Detail("photos", count)
	if count == 0 {
		return result.Fail("no photo elements found"), nil
	}

	before, err := d.Style(ctx, photoSel, "opacity")
	if err != nil {
		return result, err
	}
	if err := d.Sleep(ctx, cfg.SettleDelay); err != nil {
		return result, err
	}
	after, err := d.Style(ctx, photoSel, "opacity")
	if err != nil {
		return result, err
	}
	transition, err := d.Style(ctx, photoSel, "transition")
	if err != nil {
		return result, err
	}

	result.Detail("opacityBefore", before)
	result.Detail("opacityAfter", after)
	result.Detail("transition", transition)

	if parseOpacity(after) >= parseOpacity(before) || transitionDeclared(transition) {
		return result.Pass(), nil
	}
	return result.Fail("photo opacity decreased and no transition is declared"), nil
}

// parseOpacity reads a computed opacity value, treating anything
// unparsable as fully opaque.
func parseOpacity(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return f
}

// transitionDeclared filters out the computed values browsers report
// when no transition is set.
func transitionDeclared(transition string) bool {
	t := strings.TrimSpace(transition)
	if t == "" || t == "none" {
		return false
	}
	// "all 0s ease 0s" is the computed default, not a declaration.
	return !strings.HasPrefix(t, "all 0s")
}
