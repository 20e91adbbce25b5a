// Package config holds the check battery configuration: the target URL,
// wait tuning, and the selector map keyed by logical element role.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pagecheck/pkg/selector"
)

// EnvURL overrides the default target URL when set.
const EnvURL = "PAGECHECK_URL"

// Config configures the check battery. The zero value means "use
// defaults" for every field.
type Config struct {
	URL            string                   `yaml:"url"`
	WaitTimeout    time.Duration            `yaml:"wait_timeout"`
	SettleDelay    time.Duration            `yaml:"settle_delay"`
	VersionsLabels []string                 `yaml:"versions_labels"`
	Selectors      map[string]selector.List `yaml:"selectors"`
}

// Selector roles used by the battery.
const (
	RoleCard                = "card"
	RoleCardName            = "cardName"
	RoleCardEmail           = "cardEmail"
	RoleCardNationality     = "cardNationality"
	RoleRefresh             = "refresh"
	RoleHeading             = "heading"
	RoleText                = "text"
	RoleNextButton          = "nextButton"
	RolePrevButton          = "prevButton"
	RoleSlider              = "slider"
	RoleGenderRadio         = "genderRadio"
	RoleNationalityCheckbox = "nationalityCheckbox"
	RoleNavbarItem          = "navbarItem"
	RoleNavbarSecond        = "navbarSecond"
	RolePhoto               = "photo"
	RoleDocSection          = "docSection"
	RoleChart               = "chart"
	RoleChartBar            = "chartBar"
	RoleDonateSection       = "donateSection"
	RoleRobotCheckbox       = "robotCheckbox"
	RoleCaptchaFrame        = "captchaFrame"
)

// Default returns the built-in configuration for the demo app.
func Default() Config {
	return Config{
		URL:            "http://localhost:3000",
		WaitTimeout:    3 * time.Second,
		SettleDelay:    500 * time.Millisecond,
		VersionsLabels: []string{"versions", "version", "releases", "changelog"},
		Selectors: map[string]selector.List{
			RoleCard:                {".user-card", ".card", "[data-testid='user-card']"},
			RoleCardName:            {".user-name", ".name", "h2", "h3"},
			RoleCardEmail:           {".user-email", ".email", "a[href^='mailto:']"},
			RoleCardNationality:     {".user-nationality", ".nationality", ".nat", ".flag"},
			RoleRefresh:             {"#refresh", ".refresh-btn", "button.refresh", "[data-action='refresh']"},
			RoleHeading:             {"h1", "h2", "h3", "h4", ".title", ".user-name"},
			RoleText:                {"p", "span", ".text", ".user-email"},
			RoleNextButton:          {"#next", ".next", "button[aria-label='next']", "[data-action='next']"},
			RolePrevButton:          {"#prev", ".prev", "button[aria-label='previous']", "[data-action='prev']"},
			RoleSlider:              {"input[type='range']", ".slider input", "#results-slider"},
			RoleGenderRadio:         {"input[type='radio'][name='gender']", ".gender input[type='radio']"},
			RoleNationalityCheckbox: {"input[type='checkbox'][name='nationality']", ".nationality input[type='checkbox']"},
			RoleNavbarItem:          {"nav a", ".navbar a", ".nav-item", "header nav li"},
			RoleNavbarSecond:        {"nav a:nth-of-type(2)", ".navbar a:nth-child(2)", ".nav-item:nth-child(2)"},
			RolePhoto:               {".photo img", ".user-photo", ".gallery img", "img.avatar"},
			RoleDocSection:          {"#documentation", ".documentation", "section.docs", "[data-section='docs']"},
			RoleChart:               {"#access-chart", ".access-chart", ".chart", "[data-chart]"},
			RoleChartBar:            {".bar", ".day", "progress", "[data-bar]"},
			RoleDonateSection:       {"#donate", ".donate", "section.donate", "[data-section='donate']"},
			RoleRobotCheckbox:       {"input[type='checkbox'][name='robot']", ".robot-check input", "#not-a-robot"},
			RoleCaptchaFrame:        {"iframe[src*='captcha']", "iframe[src*='recaptcha']", ".g-recaptcha iframe"},
		},
	}
}

// Merge layers override on top of base, one top-level field at a time.
// A supplied Selectors map replaces the base map wholesale; it is not
// patched key by key. Partial selector overrides therefore drop every
// default role not restated. Callers rely on this shallow semantic.
func Merge(base, override Config) Config {
	merged := base
	if override.URL != "" {
		merged.URL = override.URL
	}
	if override.WaitTimeout > 0 {
		merged.WaitTimeout = override.WaitTimeout
	}
	if override.SettleDelay > 0 {
		merged.SettleDelay = override.SettleDelay
	}
	if override.VersionsLabels != nil {
		merged.VersionsLabels = override.VersionsLabels
	}
	if override.Selectors != nil {
		merged.Selectors = override.Selectors
	}
	return merged
}

// WithDefaults layers c on top of the built-in defaults.
func (c Config) WithDefaults() Config {
	return Merge(Default(), c)
}

// Selector returns the fallback list for a role, empty when the role is
// not configured.
func (c Config) Selector(role string) selector.List {
	return c.Selectors[role]
}

// FromEnv returns c with the target URL replaced by the environment
// override, when present.
func FromEnv(c Config) Config {
	if url := os.Getenv(EnvURL); url != "" {
		c.URL = url
	}
	return c
}

// LoadFile reads a YAML override file.
func LoadFile(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return c, nil
}

// duration wraps time.Duration to allow YAML unmarshalling from strings.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting durations as
// strings like "3s" or "500ms".
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		URL            string                   `yaml:"url"`
		WaitTimeout    duration                 `yaml:"wait_timeout"`
		SettleDelay    duration                 `yaml:"settle_delay"`
		VersionsLabels []string                 `yaml:"versions_labels"`
		Selectors      map[string]selector.List `yaml:"selectors"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.URL = raw.URL
	c.WaitTimeout = raw.WaitTimeout.Duration
	c.SettleDelay = raw.SettleDelay.Duration
	c.VersionsLabels = raw.VersionsLabels
	c.Selectors = raw.Selectors
	return nil
}
