package sitecheck

import (
	"context"
	"strings"
	"testing"

	"pagecheck/pkg/config"
	"pagecheck/pkg/testutil"
)

func htmlDriver(html string) *testutil.MockDriver {
	return &testutil.MockDriver{
		HTMLFunc: func(ctx context.Context) (string, error) {
			return html, nil
		},
	}
}

func TestDocAnchors(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantOK      bool
		wantMessage string
		wantMissing string
	}{
		{
			name: "single valid anchor",
			html: `<html><body>
				<section id="documentation"><a href="#install">Install</a></section>
				<h2 id="install">Install</h2>
			</body></html>`,
			wantOK: true,
		},
		{
			name: "multiple anchors all resolve",
			html: `<html><body>
				<div class="documentation">
					<a href="#setup">Setup</a>
					<a href="#usage">Usage</a>
					<a href="https://example.com">external, ignored</a>
				</div>
				<section id="setup"></section>
				<section id="usage"></section>
			</body></html>`,
			wantOK: true,
		},
		{
			name: "anchor target missing",
			html: `<html><body>
				<section id="documentation"><a href="#nowhere">Gone</a></section>
			</body></html>`,
			wantOK:      false,
			wantMessage: "#nowhere",
			wantMissing: "nowhere",
		},
		{
			name: "section without internal anchors",
			html: `<html><body>
				<section id="documentation"><a href="https://example.com">Only external</a></section>
			</body></html>`,
			wantOK:      false,
			wantMessage: "no internal anchors",
		},
		{
			name:        "section not found",
			html:        `<html><body><p>bare page</p></body></html>`,
			wantOK:      false,
			wantMessage: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DocAnchors(context.Background(), htmlDriver(tt.html), config.Config{})
			if err != nil {
				t.Fatalf("DocAnchors: %v", err)
			}
			if result.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (%s)", result.OK, tt.wantOK, result.Message)
			}
			if tt.wantMessage != "" && !strings.Contains(result.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want substring %q", result.Message, tt.wantMessage)
			}
			if tt.wantMissing != "" && result.Details["missingTarget"] != tt.wantMissing {
				t.Errorf("Details[missingTarget] = %v, want %q", result.Details["missingTarget"], tt.wantMissing)
			}
		})
	}
}

// "No anchors" and "no section" are distinct failures.
func TestDocAnchors_EmptySectionDistinctFromMissingSection(t *testing.T) {
	empty, err := DocAnchors(context.Background(), htmlDriver(
		`<html><body><section id="documentation"></section></body></html>`), config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	missing, err := DocAnchors(context.Background(), htmlDriver(
		`<html><body></body></html>`), config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if empty.Message == missing.Message {
		t.Errorf("empty-section and missing-section share message %q", empty.Message)
	}
}
