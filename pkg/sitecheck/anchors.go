package sitecheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
)

// DocAnchors verifies that the documentation section's internal anchor
// links all resolve to an element id somewhere on the page. The page is
// snapshotted once and inspected offline, so link collection and id
// resolution see one consistent DOM.
func DocAnchors(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "documentation-anchors"}

	html, err := d.HTML(ctx)
	if err != nil {
		return result, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result, fmt.Errorf("parsing page snapshot: %w", err)
	}

	var section *goquery.Selection
	for _, sel := range cfg.Selector(config.RoleDocSection) {
		if s := doc.Find(sel); s.Length() > 0 {
			section = s.First()
			break
		}
	}
	if section == nil {
		return result.Fail("documentation section not found"), nil
	}

	var hrefs []string
	section.Find("a[href^='#']").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href != "" && href != "#" {
			hrefs = append(hrefs, href)
		}
	})
	result.Detail("anchors", len(hrefs))
	if len(hrefs) == 0 {
		return result.Fail("documentation section has no internal anchors"), nil
	}

	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, el *goquery.Selection) {
		if id, ok := el.Attr("id"); ok {
			ids[id] = true
		}
	})

	for _, href := range hrefs {
		target := strings.TrimPrefix(href, "#")
		if !ids[target] {
			result.Detail("missingTarget", target)
			return result.Failf("anchor target #%s does not exist on the page", target), nil
		}
	}
	return result.Pass(), nil
}
