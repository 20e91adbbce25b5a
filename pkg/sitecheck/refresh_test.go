package sitecheck

import (
	"context"
	"testing"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/config"
	"pagecheck/pkg/testutil"
)

func TestRefreshRecenter(t *testing.T) {
	tests := []struct {
		name     string
		counts   map[string]int
		box      browser.Box
		boxFound bool
		viewport browser.Size
		wantOK   bool
	}{
		{
			name:     "card dead center in 1024x768",
			counts:   map[string]int{"#refresh": 1, ".user-card": 1},
			box:      browser.Box{X: 412, Y: 334, Width: 200, Height: 100}, // center (512, 384)
			boxFound: true,
			viewport: browser.Size{Width: 1024, Height: 768},
			wantOK:   true,
		},
		{
			name:     "card within tolerance",
			counts:   map[string]int{".user-card": 1},
			box:      browser.Box{X: 500, Y: 400, Width: 200, Height: 100}, // center (600, 450)
			boxFound: true,
			viewport: browser.Size{Width: 1024, Height: 768},
			wantOK:   true,
		},
		{
			name:     "card off by more than 25% horizontally",
			counts:   map[string]int{".user-card": 1},
			box:      browser.Box{X: 800, Y: 334, Width: 200, Height: 100}, // center (900, 384), off by 388 > 256
			boxFound: true,
			viewport: browser.Size{Width: 1024, Height: 768},
			wantOK:   false,
		},
		{
			name:     "card off by more than 25% vertically",
			counts:   map[string]int{".user-card": 1},
			box:      browser.Box{X: 412, Y: 600, Width: 200, Height: 100}, // center (512, 650), off by 266 > 192
			boxFound: true,
			viewport: browser.Size{Width: 1024, Height: 768},
			wantOK:   false,
		},
		{
			name:   "no card present",
			counts: map[string]int{"#refresh": 1},
			wantOK: false,
		},
		{
			name:     "bounding box unreadable",
			counts:   map[string]int{".user-card": 1},
			boxFound: false,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &testutil.MockDriver{
				CountFunc: testutil.CountBySelector(tt.counts),
				BoundingBoxFunc: func(ctx context.Context, sel string) (browser.Box, bool, error) {
					return tt.box, tt.boxFound, nil
				},
			}
			if tt.viewport.Width > 0 {
				vp := tt.viewport
				d.ViewportFunc = func(ctx context.Context) (browser.Size, error) { return vp, nil }
			}

			result, err := RefreshRecenter(context.Background(), d, config.Config{})
			if err != nil {
				t.Fatalf("RefreshRecenter: %v", err)
			}
			if result.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (%s)", result.OK, tt.wantOK, result.Message)
			}
		})
	}
}

func TestRefreshRecenter_ClicksRefreshWhenPresent(t *testing.T) {
	d := &testutil.MockDriver{
		CountFunc: testutil.CountBySelector(map[string]int{"#refresh": 1, ".user-card": 1}),
		BoundingBoxFunc: func(ctx context.Context, sel string) (browser.Box, bool, error) {
			return browser.Box{X: 412, Y: 334, Width: 200, Height: 100}, true, nil
		},
	}

	result, err := RefreshRecenter(context.Background(), d, config.Config{})
	if err != nil {
		t.Fatalf("RefreshRecenter: %v", err)
	}
	if !d.ContainsClick("#refresh") {
		t.Errorf("Clicked = %v, want #refresh", d.Clicked)
	}
	if result.Details["refreshClicked"] != true {
		t.Errorf("Details[refreshClicked] = %v, want true", result.Details["refreshClicked"])
	}
}

func TestRefreshRecenter_NoRefreshControl(t *testing.T) {
	// Absent refresh control is not a failure by itself; the card still
	// gets measured.
	d := &testutil.MockDriver{
		CountFunc: testutil.CountBySelector(map[string]int{".user-card": 1}),
		BoundingBoxFunc: func(ctx context.Context, sel string) (browser.Box, bool, error) {
			return browser.Box{X: 412, Y: 334, Width: 200, Height: 100}, true, nil
		},
	}

	result, err := RefreshRecenter(context.Background(), d, config.Config{})
	if err != nil {
		t.Fatalf("RefreshRecenter: %v", err)
	}
	if !result.OK {
		t.Errorf("OK = false: %s", result.Message)
	}
	if len(d.Clicked) != 0 {
		t.Errorf("Clicked = %v, want none", d.Clicked)
	}
}
