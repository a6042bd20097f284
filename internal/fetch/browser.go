package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinStaticTextLen is the extracted-text length below which a page is
// treated as a JavaScript-rendered shell. Workday and similar boards ship
// near-empty static HTML and hydrate the posting client-side.
const MinStaticTextLen = 500

// DefaultRenderTimeout bounds a single headless-browser render.
const DefaultRenderTimeout = 30 * time.Second

// settleDelay gives client-side scripts time to hydrate the posting
// after the DOM reports ready.
const settleDelay = 3 * time.Second

// NeedsRendering reports whether statically extracted text is too thin to
// be a real posting body.
func NeedsRendering(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinStaticTextLen
}

// RenderOptions configures headless rendering.
type RenderOptions struct {
	Timeout time.Duration
}

// Render loads a URL in headless Chrome and returns the hydrated HTML.
// Requires a Chrome or Chromium binary on the host; callers should treat
// a render failure as non-fatal and keep the static fetch result.
func Render(ctx context.Context, urlStr string, opts *RenderOptions) (string, error) {
	timeout := DefaultRenderTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Consent banners hide posting text on some boards. The click
			// gets its own deadline so a page without a banner does not
			// stall the render waiting for a button that never appears.
			clickCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(clickCtx)
			return nil
		}),
		chromedp.Sleep(time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("headless render of %s failed: %w", urlStr, err)
	}

	return html, nil
}
