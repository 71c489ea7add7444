package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"racewiki/internal/browser"
)

// BrowserFetcher renders pages in Chromium before reading their HTML, for
// results pages that build the table client side.
type BrowserFetcher struct {
	browser *browser.Browser
	timeout time.Duration
}

func NewBrowserFetcher(b *browser.Browser, timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{browser: b, timeout: timeout}
}

func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := f.browser.NewPage()
	if err != nil {
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	_ = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent})

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to wait for page load: %w", err)
	}

	// let client-side rendering settle before the snapshot
	wait := page.WaitRequestIdle(500*time.Millisecond, nil, nil,
		[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia})
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}
