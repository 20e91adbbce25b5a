// Package logincheck exercises a login form: it fills the credential
// fields through selector fallbacks, submits, and watches for a success
// or error indicator. It shares the battery's result shape but none of
// its checks; the target is a different page entirely.
package logincheck

import (
	"context"
	"strings"
	"time"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/check"
	"pagecheck/pkg/selector"
)

// Check drives a login flow against a login page.
type Check struct {
	Driver   browser.Driver
	URL      string
	Username string
	Password string

	// WaitTimeout bounds the wait for a success or error indicator
	// after submit (default 3s). Expiry is a failed check, not a fault.
	WaitTimeout time.Duration

	UsernameSelectors selector.List
	PasswordSelectors selector.List
	SubmitSelectors   selector.List
	SuccessSelectors  selector.List
	ErrorSelectors    selector.List
}

// Run executes the login flow.
func (c *Check) Run(ctx context.Context) (check.Result, error) {
	result := check.Result{Name: "login"}
	d := c.Driver

	timeout := c.WaitTimeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	c.applySelectorDefaults()

	if c.URL != "" {
		loc, err := d.Location(ctx)
		if err != nil {
			return result, err
		}
		if loc == "" || loc == "about:blank" {
			if err := d.Navigate(ctx, c.URL); err != nil {
				return result, err
			}
		}
	}

	filled, err := selector.Fill(ctx, d, c.UsernameSelectors, c.Username)
	if err != nil {
		return result, err
	}
	if !filled {
		return result.Fail("username field not found"), nil
	}
	filled, err = selector.Fill(ctx, d, c.PasswordSelectors, c.Password)
	if err != nil {
		return result, err
	}
	if !filled {
		return result.Fail("password field not found"), nil
	}

	clicked, err := selector.Click(ctx, d, c.SubmitSelectors)
	if err != nil {
		return result, err
	}
	if !clicked {
		return result.Fail("submit control not found"), nil
	}

	// One combined wait covers all success candidates; the error
	// indicators are only consulted once it expires.
	ok, err := d.WaitVisible(ctx, strings.Join(c.SuccessSelectors, ", "), timeout)
	if err != nil {
		return result, err
	}
	if ok {
		result.Detail("indicator", "success")
		return result.Pass(), nil
	}

	_, errorShown, err := selector.First(ctx, d, c.ErrorSelectors)
	if err != nil {
		return result, err
	}
	if errorShown {
		result.Detail("indicator", "error")
		return result.Fail("login error indicator shown"), nil
	}
	return result.Fail("no success or error indicator appeared"), nil
}

func (c *Check) applySelectorDefaults() {
	if c.UsernameSelectors == nil {
		c.UsernameSelectors = selector.List{
			"input[name='username']", "input[name='email']", "#username", "input[type='email']",
		}
	}
	if c.PasswordSelectors == nil {
		c.PasswordSelectors = selector.List{
			"input[name='password']", "#password", "input[type='password']",
		}
	}
	if c.SubmitSelectors == nil {
		c.SubmitSelectors = selector.List{
			"button[type='submit']", "input[type='submit']", "#login", "form button",
		}
	}
	if c.SuccessSelectors == nil {
		c.SuccessSelectors = selector.List{
			".login-success", ".welcome", "#logout", "[data-login='success']",
		}
	}
	if c.ErrorSelectors == nil {
		c.ErrorSelectors = selector.List{
			".login-error", ".error", ".alert-danger", "[data-login='error']",
		}
	}
}
