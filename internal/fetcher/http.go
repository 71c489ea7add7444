package fetcher

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"racewiki/internal/log"
)

// HTTPFetcher fetches pages with a plain HTTP GET.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher whose requests are bounded by timeout and
// routed through proxyURL when it is set.
func NewHTTPFetcher(timeout time.Duration, proxyURL string) *HTTPFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetLogger(log.Logger.Sugar()).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetHeader("Accept-Language", "en")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Logger.Debug("http response",
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("elapsed", resp.Time()))
		return nil
	})
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &StatusError{Code: resp.StatusCode(), Status: resp.Status()}
	}
	return resp.String(), nil
}
