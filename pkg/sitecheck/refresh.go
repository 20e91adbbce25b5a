package sitecheck

import (
	"context"
	"math"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// centerTolerance is the accepted offset of a card's center from the
// viewport center, as a fraction of the viewport on each axis.
const centerTolerance = 0.25

// RefreshRecenter clicks the refresh control when present, then checks
// that the first user card sits near the center of the viewport.
func RefreshRecenter(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "refresh-recenter"}

	clicked, err := selector.Click(ctx, d, cfg.Selector(config.RoleRefresh))
	if err != nil {
		return result, err
	}
	result.Detail("refreshClicked", clicked)

	cardSel, found, err := selector.First(ctx, d, cfg.Selector(config.RoleCard))
	if err != nil {
		return result, err
	}
	if !found {
		return result.Fail("no user card to measure"), nil
	}

	box, ok, err := d.BoundingBox(ctx, cardSel)
	if err != nil {
		return result, err
	}
	if !ok {
		return result.Fail("card bounding box unavailable"), nil
	}

	vp, err := d.Viewport(ctx)
	if err != nil {
		return result, err
	}
	if vp.Width == 0 || vp.Height == 0 {
		return result.Fail("viewport size unavailable"), nil
	}

	dx := math.Abs(box.CenterX() - float64(vp.Width)/2)
	dy := math.Abs(box.CenterY() - float64(vp.Height)/2)
	result.Detail("offsetX", dx)
	result.Detail("offsetY", dy)

	if dx >= centerTolerance*float64(vp.Width) || dy >= centerTolerance*float64(vp.Height) {
		return result.Failf("card center is off by %.0fx%.0f px in a %dx%d viewport", dx, dy, vp.Width, vp.Height), nil
	}
	return result.Pass(), nil
}
