package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"racewiki/internal/log"
	"racewiki/internal/pages"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves the raw HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// PageError reports which page of a session could not be fetched.
type PageError struct {
	Kind pages.Kind
	URL  string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("failed to fetch %s (%s): %v", e.Kind.Title(), e.URL, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// StatusError is returned for a non-success HTTP response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

// FetchAll fetches every URL concurrently. The first failure cancels the
// remaining fetches and is returned as a *PageError.
func FetchAll(ctx context.Context, f Fetcher, urls map[pages.Kind]string) (map[pages.Kind]string, error) {
	var mu sync.Mutex
	bodies := make(map[pages.Kind]string, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	for kind, url := range urls {
		g.Go(func() error {
			start := time.Now()
			body, err := f.Fetch(ctx, url)
			if err != nil {
				return &PageError{Kind: kind, URL: url, Err: err}
			}
			log.Logger.Debug("page fetched",
				zap.String("page", kind.Title()),
				zap.String("url", url),
				zap.Int("bytes", len(body)),
				zap.Duration("elapsed", time.Since(start)))

			mu.Lock()
			bodies[kind] = body
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bodies, nil
}
