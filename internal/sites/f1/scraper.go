package f1

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"racewiki/internal/browser"
	"racewiki/internal/extractor"
	"racewiki/internal/fetcher"
	"racewiki/internal/log"
	"racewiki/internal/pages"
	"racewiki/internal/reference"
	"racewiki/internal/results"
	"racewiki/internal/scraper"
)

// ErrInputMissing is returned when no results URL was given.
var ErrInputMissing = errors.New("results URL is required")

func init() {
	scraper.Register(&Scraper{variant: results.Practice})
	scraper.Register(&Scraper{variant: results.Race})
	scraper.Register(&Scraper{variant: results.RacePitStops})
}

// Scraper turns a formula1.com results page and its sibling pages into wiki
// rows.
type Scraper struct {
	variant results.Variant
}

func (s *Scraper) Name() string { return "f1." + s.variant.String() }

// kinds lists the pages the variant needs, results first.
func (s *Scraper) kinds() []pages.Kind {
	switch s.variant {
	case results.Race:
		return []pages.Kind{pages.Results, pages.Grid}
	case results.RacePitStops:
		return []pages.Kind{pages.Results, pages.Grid, pages.PitStops}
	default:
		return []pages.Kind{pages.Results}
	}
}

func (s *Scraper) Scrape(ctx context.Context, target string, opts scraper.Options) (scraper.Content, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrInputMissing
	}

	logger := log.Logger.With(zap.String("run", uuid.NewString()), zap.String("site", s.Name()))
	logger.Info("scraping session", zap.String("url", target), zap.Bool("render", opts.Render))

	lookup, err := reference.Load(opts.Reference)
	if err != nil {
		return nil, err
	}

	ext, err := extractor.New(opts.Selector)
	if err != nil {
		return nil, err
	}

	f, closeFetcher, err := newFetcher(opts)
	if err != nil {
		return nil, err
	}
	defer closeFetcher()

	tables, err := NewClient(f, ext).Tables(ctx, target, s.kinds())
	if err != nil {
		logger.Error("scrape aborted", zap.Error(err))
		return nil, err
	}

	session := results.Build(s.variant, tables, lookup)
	session.SourceURL = target
	logger.Info("session built", zap.Int("records", len(session.Records)))

	return NewContent(s.Name(), session), nil
}

func newFetcher(opts scraper.Options) (fetcher.Fetcher, func(), error) {
	if !opts.Render {
		return fetcher.NewHTTPFetcher(opts.Timeout, opts.ProxyURL), func() {}, nil
	}

	b, err := browser.New(browser.Config{
		ProxyURL: opts.ProxyURL,
		Headless: !opts.ShowUI,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create browser: %w", err)
	}
	closeBrowser := func() {
		if err := b.Close(); err != nil {
			log.Logger.Warn("failed to close browser", zap.Error(err))
		}
	}
	return fetcher.NewBrowserFetcher(b, opts.Timeout), closeBrowser, nil
}
