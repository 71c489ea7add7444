package scraper

import (
	"context"
	"time"
)

type Scraper interface {
	Name() string
	Scrape(ctx context.Context, target string, opts Options) (Content, error)
}

type Content interface {
	ToWiki() (string, error)
	ToHTML() (string, error)
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
}

type Options struct {
	Timeout   time.Duration
	ProxyURL  string // --proxy flag or RACEWIKI_PROXY env var
	Render    bool   // fetch with the headless browser instead of plain HTTP
	ShowUI    bool
	Selector  string // CSS selector of the data table, empty for the default
	Reference string // reference data override file
}
