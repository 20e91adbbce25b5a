package sitecheck

import (
	"context"
	"strings"
	"testing"

	"pagecheck/pkg/config"
	"pagecheck/pkg/testutil"
)

func TestAdvancedSearch(t *testing.T) {
	full := map[string]int{
		"#next":                               1,
		"input[type='range']":                 1,
		"input[type='radio'][name='gender']":  2,
		"input[type='checkbox'][name='nationality']": 1,
	}

	tests := []struct {
		name        string
		counts      map[string]int
		wantOK      bool
		wantMissing string
	}{
		{
			name:   "all controls present",
			counts: full,
			wantOK: true,
		},
		{
			name: "prev alone satisfies navigation",
			counts: map[string]int{
				"#prev":                               1,
				"input[type='range']":                 1,
				"input[type='radio'][name='gender']":  2,
				"input[type='checkbox'][name='nationality']": 1,
			},
			wantOK: true,
		},
		{
			name:        "no navigation buttons",
			counts:      without(full, "#next"),
			wantOK:      false,
			wantMissing: "navigation buttons",
		},
		{
			name:        "no slider",
			counts:      without(full, "input[type='range']"),
			wantOK:      false,
			wantMissing: "results slider",
		},
		{
			name: "only one gender radio",
			counts: merge(without(full, "input[type='radio'][name='gender']"),
				map[string]int{"input[type='radio'][name='gender']": 1}),
			wantOK:      false,
			wantMissing: "gender radios",
		},
		{
			name:        "no nationality checkbox",
			counts:      without(full, "input[type='checkbox'][name='nationality']"),
			wantOK:      false,
			wantMissing: "nationality checkboxes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &testutil.MockDriver{CountFunc: testutil.CountBySelector(tt.counts)}

			result, err := AdvancedSearch(context.Background(), d, config.Config{})
			if err != nil {
				t.Fatalf("AdvancedSearch: %v", err)
			}
			if result.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (%s)", result.OK, tt.wantOK, result.Message)
			}
			if tt.wantMissing != "" && !strings.Contains(result.Message, tt.wantMissing) {
				t.Errorf("Message = %q, want mention of %q", result.Message, tt.wantMissing)
			}
		})
	}
}

func without(m map[string]int, keys ...string) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func merge(base, extra map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
