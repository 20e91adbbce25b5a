package sitecheck

import (
	"context"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/config"
	"pagecheck/pkg/selector"
)

// DonateAntiBot verifies the donate section carries some anti-bot
// control: a robot checkbox or a CAPTCHA iframe.
func DonateAntiBot(ctx context.Context, d browser.Driver, cfg config.Config) (check.Result, error) {
	cfg = cfg.WithDefaults()
	result := check.Result{Name: "donate-anti-bot"}

	_, found, err := selector.First(ctx, d, cfg.Selector(config.RoleDonateSection))
	if err != nil {
		return result, err
	}
	if !found {
		return result.Fail("donate section not found"), nil
	}

	_, robot, err := selector.First(ctx, d, cfg.Selector(config.RoleRobotCheckbox))
	if err != nil {
		return result, err
	}
	_, captcha, err := selector.First(ctx, d, cfg.Selector(config.RoleCaptchaFrame))
	if err != nil {
		return result, err
	}

	result.Detail("robotCheckbox", robot)
	result.Detail("captchaFrame", captcha)
	if !robot && !captcha {
		return result.Fail("donate section has no anti-bot control"), nil
	}
	return result.Pass(), nil
}
