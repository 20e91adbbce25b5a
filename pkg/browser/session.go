package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Options configures a browser session.
type Options struct {
	Headless bool
	Width    int
	Height   int
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Headless: true, Width: 1280, Height: 800}
}

// Session drives a Chrome instance over the DevTools protocol.
// It implements Driver. The caller owns the session lifecycle: Launch
// before running checks, Close after, on every exit path.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

var _ Driver = (*Session)(nil)

// Launch starts a browser and opens a blank page.
func Launch(parent context.Context, opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("mute-audio", true),
		chromedp.WindowSize(opts.Width, opts.Height),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	s := &Session{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
	}

	// Force the browser process to start so launch failures surface here
	// instead of inside the first check.
	if err := chromedp.Run(browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	return s, nil
}

// Close tears down the page and browser process.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// run executes actions on the session, honoring the caller's deadline.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx := s.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(s.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (s *Session) Location(ctx context.Context) (string, error) {
	var loc string
	if err := s.run(ctx, chromedp.Location(&loc)); err != nil {
		return "", err
	}
	return loc, nil
}

func (s *Session) Viewport(ctx context.Context) (Size, error) {
	var size Size
	err := s.run(ctx, chromedp.Evaluate(
		`({width: window.innerWidth, height: window.innerHeight})`, &size))
	return size, err
}

func (s *Session) Count(ctx context.Context, sel string) (int, error) {
	var n int
	err := s.run(ctx, chromedp.Evaluate(
		fmt.Sprintf(`document.querySelectorAll(%q).length`, sel), &n))
	return n, err
}

func (s *Session) CountIn(ctx context.Context, parent, child string) ([]int, error) {
	counts := []int{}
	err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(p => p.querySelectorAll(%q).length)`,
		parent, child), &counts))
	return counts, err
}

func (s *Session) Texts(ctx context.Context, sel string) ([]string, error) {
	texts := []string{}
	err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(e => (e.textContent || '').trim())`,
		sel), &texts))
	return texts, err
}

func (s *Session) Click(ctx context.Context, sel string) error {
	return s.run(ctx, chromedp.Click(sel, chromedp.ByQuery))
}

func (s *Session) Fill(ctx context.Context, sel, value string) error {
	return s.run(ctx,
		chromedp.SetValue(sel, value, chromedp.ByQuery),
	)
}

func (s *Session) WaitVisible(ctx context.Context, sel string, timeout time.Duration) (bool, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.run(waitCtx, chromedp.WaitVisible(sel, chromedp.ByQuery))
	if err == nil {
		return true, nil
	}
	// Expiry of the bounded wait means "not found". Cancellation of the
	// caller's context is still a fault.
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return false, nil
	}
	return false, err
}

func (s *Session) BoundingBox(ctx context.Context, sel string) (Box, bool, error) {
	var probe struct {
		Found bool `json:"found"`
		Box
	}
	err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return {found: false};
		const r = el.getBoundingClientRect();
		return {found: true, x: r.x, y: r.y, width: r.width, height: r.height};
	})()`, sel), &probe))
	if err != nil {
		return Box{}, false, err
	}
	return probe.Box, probe.Found, nil
}

func (s *Session) Style(ctx context.Context, sel, property string) (string, error) {
	var value string
	err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return '';
		return getComputedStyle(el).getPropertyValue(%q);
	})()`, sel, property), &value))
	return value, err
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	var html string
	err := s.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}

func (s *Session) Sleep(ctx context.Context, d time.Duration) error {
	return s.run(ctx, chromedp.Sleep(d))
}
