package testutil

import (
	"context"
	"strings"
	"time"

	"pagecheck/pkg/browser"
)

// MockDriver is a test double for browser.Driver. Each method delegates
// to the corresponding func field; nil fields return benign zero values
// so tests only wire what they probe.
type MockDriver struct {
	NavigateFunc    func(ctx context.Context, url string) error
	LocationFunc    func(ctx context.Context) (string, error)
	ViewportFunc    func(ctx context.Context) (browser.Size, error)
	CountFunc       func(ctx context.Context, sel string) (int, error)
	CountInFunc     func(ctx context.Context, parent, child string) ([]int, error)
	TextsFunc       func(ctx context.Context, sel string) ([]string, error)
	ClickFunc       func(ctx context.Context, sel string) error
	FillFunc        func(ctx context.Context, sel, value string) error
	WaitVisibleFunc func(ctx context.Context, sel string, timeout time.Duration) (bool, error)
	BoundingBoxFunc func(ctx context.Context, sel string) (browser.Box, bool, error)
	StyleFunc       func(ctx context.Context, sel, property string) (string, error)
	HTMLFunc        func(ctx context.Context) (string, error)

	// Clicked records every selector passed to Click, in order.
	Clicked []string
	// Navigated records every URL passed to Navigate, in order.
	Navigated []string
	// Filled records "selector=value" for every Fill call, in order.
	Filled []string
}

var _ browser.Driver = (*MockDriver)(nil)

func (m *MockDriver) Navigate(ctx context.Context, url string) error {
	m.Navigated = append(m.Navigated, url)
	if m.NavigateFunc != nil {
		return m.NavigateFunc(ctx, url)
	}
	return nil
}

func (m *MockDriver) Location(ctx context.Context) (string, error) {
	if m.LocationFunc != nil {
		return m.LocationFunc(ctx)
	}
	return "about:blank", nil
}

func (m *MockDriver) Viewport(ctx context.Context) (browser.Size, error) {
	if m.ViewportFunc != nil {
		return m.ViewportFunc(ctx)
	}
	return browser.Size{Width: 1024, Height: 768}, nil
}

func (m *MockDriver) Count(ctx context.Context, sel string) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, sel)
	}
	return 0, nil
}

func (m *MockDriver) CountIn(ctx context.Context, parent, child string) ([]int, error) {
	if m.CountInFunc != nil {
		return m.CountInFunc(ctx, parent, child)
	}
	return nil, nil
}

func (m *MockDriver) Texts(ctx context.Context, sel string) ([]string, error) {
	if m.TextsFunc != nil {
		return m.TextsFunc(ctx, sel)
	}
	return nil, nil
}

func (m *MockDriver) Click(ctx context.Context, sel string) error {
	m.Clicked = append(m.Clicked, sel)
	if m.ClickFunc != nil {
		return m.ClickFunc(ctx, sel)
	}
	return nil
}

func (m *MockDriver) Fill(ctx context.Context, sel, value string) error {
	m.Filled = append(m.Filled, sel+"="+value)
	if m.FillFunc != nil {
		return m.FillFunc(ctx, sel, value)
	}
	return nil
}

func (m *MockDriver) WaitVisible(ctx context.Context, sel string, timeout time.Duration) (bool, error) {
	if m.WaitVisibleFunc != nil {
		return m.WaitVisibleFunc(ctx, sel, timeout)
	}
	return false, nil
}

func (m *MockDriver) BoundingBox(ctx context.Context, sel string) (browser.Box, bool, error) {
	if m.BoundingBoxFunc != nil {
		return m.BoundingBoxFunc(ctx, sel)
	}
	return browser.Box{}, false, nil
}

func (m *MockDriver) Style(ctx context.Context, sel, property string) (string, error) {
	if m.StyleFunc != nil {
		return m.StyleFunc(ctx, sel, property)
	}
	return "", nil
}

func (m *MockDriver) HTML(ctx context.Context) (string, error) {
	if m.HTMLFunc != nil {
		return m.HTMLFunc(ctx)
	}
	return "<html></html>", nil
}

func (m *MockDriver) Sleep(ctx context.Context, d time.Duration) error {
	return nil
}

// CountBySelector builds a CountFunc from a selector-to-count table.
// Selectors absent from the table count zero.
func CountBySelector(counts map[string]int) func(ctx context.Context, sel string) (int, error) {
	return func(ctx context.Context, sel string) (int, error) {
		return counts[sel], nil
	}
}

// ContainsClick reports whether any recorded click matches the selector.
func (m *MockDriver) ContainsClick(sel string) bool {
	for _, c := range m.Clicked {
		if c == sel {
			return true
		}
	}
	return false
}

// ContainsFill reports whether any recorded fill entry contains substr.
func (m *MockDriver) ContainsFill(substr string) bool {
	for _, f := range m.Filled {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}
