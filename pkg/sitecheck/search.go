package sitecheck

import (
	"context"
	"strings"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// AdvancedSearch probes for the advanced search controls: result
// navigation buttons, a results slider, gender radios, and nationality
// checkboxes.
func AdvancedSearch(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "advanced-search"}

	_, nextFound, err := selector.First(ctx, d, cfg.Selector(config.RoleNextButton))
	if err != nil {
		return result, err
	}
	_, prevFound, err := selector.First(ctx, d, cfg.Selector(config.RolePrevButton))
	if err != nil {
		return result, err
	}
	_, sliderFound, err := selector.First(ctx, d, cfg.Selector(config.RoleSlider))
	if err != nil {
		return result, err
	}
	_, radios, err := selector.CountFirst(ctx, d, cfg.Selector(config.RoleGenderRadio))
	if err != nil {
		return result, err
	}
	_, checkboxes, err := selector.CountFirst(ctx, d, cfg.Selector(config.RoleNationalityCheckbox))
	if err != nil {
		return result, err
	}

	result.Detail("next", nextFound)
	result.Detail("prev", prevFound)
	result.Detail("slider", sliderFound)
	result.Detail("genderRadios", radios)
	result.Detail("nationalityCheckboxes", checkboxes)

	var missing []string
	if !nextFound && !prevFound {
		missing = append(missing, "navigation buttons")
	}
	if !sliderFound {
		missing = append(missing, "results slider")
	}
	if radios < 2 {
		missing = append(missing, "gender radios")
	}
	if checkboxes < 1 {
		missing = append(missing, "nationality checkboxes")
	}
	if len(missing) > 0 {
		return result.Failf("missing controls: %s", strings.Join(missing, ", ")), nil
	}
	return result.Pass(), nil
}
