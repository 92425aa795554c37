package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest posting text trusted from a plain HTTP fetch.
// Boards that render postings client-side serve little more than a shell below it.
const MinContentLength = 500

// renderSettle is how long a loaded posting page gets to fill in its description.
const renderSettle = 3 * time.Second

// ShouldUseBrowser reports whether postingText is too short to be a real job description.
func ShouldUseBrowser(postingText string) bool {
	return len(strings.TrimSpace(postingText)) < MinContentLength
}

// WithBrowser loads a job posting in headless Chrome and returns the page HTML
// after the description has had time to render. Chrome or Chromium must be installed.
func WithBrowser(ctx context.Context, postingURL string, timeout time.Duration) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromeOptions()...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	var html string
	if err := chromedp.Run(tabCtx, renderPosting(postingURL, &html)); err != nil {
		return "", fmt.Errorf("render %s: %w", postingURL, err)
	}
	return html, nil
}

// chromeOptions runs Chrome headless and container-friendly.
func chromeOptions() []chromedp.ExecAllocatorOption {
	opts := make([]chromedp.ExecAllocatorOption, 0, len(chromedp.DefaultExecAllocatorOptions)+4)
	opts = append(opts, chromedp.DefaultExecAllocatorOptions[:]...)
	return append(opts,
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

// renderPosting navigates to the posting and captures the rendered document.
func renderPosting(postingURL string, html *string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(postingURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", html, chromedp.ByQuery),
	}
}
