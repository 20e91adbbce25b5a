// Package browser abstracts the page-automation engine behind a small
// capability interface so checks can be exercised against a test double.
package browser

import (
	"context"
	"time"
)

// Box is an element bounding box in CSS pixels, viewport-relative.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.Height/2 }

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Driver is the page-automation capability set consumed by checks.
//
// Selector strings are opaque to callers and passed through to the
// engine as CSS selectors. Absence of a match is never an error:
// Count returns 0, BoundingBox reports found=false, WaitVisible
// reports false on timeout. Errors mean the engine itself faulted
// (dead page, unreachable target, cancelled context).
type Driver interface {
	// Navigate loads the given URL and waits for the page to settle.
	Navigate(ctx context.Context, url string) error

	// Location returns the current page URL.
	Location(ctx context.Context) (string, error)

	// Viewport returns the current viewport size.
	Viewport(ctx context.Context) (Size, error)

	// Count returns the number of elements matching sel.
	Count(ctx context.Context, sel string) (int, error)

	// CountIn returns, for each element matching parent, the number of
	// descendants matching child. The slice has one entry per parent.
	CountIn(ctx context.Context, parent, child string) ([]int, error)

	// Texts returns the trimmed text content of every element matching sel.
	Texts(ctx context.Context, sel string) ([]string, error)

	// Click clicks the first element matching sel. Callers must probe
	// presence first; clicking a missing element is an engine fault.
	Click(ctx context.Context, sel string) error

	// Fill sets the value of the first input matching sel.
	Fill(ctx context.Context, sel, value string) error

	// WaitVisible waits up to timeout for an element matching sel to
	// become visible. Expiry is reported as false, not an error.
	WaitVisible(ctx context.Context, sel string, timeout time.Duration) (bool, error)

	// BoundingBox returns the bounding box of the first element
	// matching sel, with found=false when there is no match.
	BoundingBox(ctx context.Context, sel string) (box Box, found bool, err error)

	// Style returns the computed value of a style property on the first
	// element matching sel, or "" when there is no match.
	Style(ctx context.Context, sel, property string) (string, error)

	// HTML returns the serialized document.
	HTML(ctx context.Context) (string, error)

	// Sleep pauses for the given settle delay.
	Sleep(ctx context.Context, d time.Duration) error
}
