package f1

import (
	"context"
	"fmt"

	"racewiki/internal/extractor"
	"racewiki/internal/fetcher"
	"racewiki/internal/pages"
	"racewiki/internal/results"
)

// Client fetches the pages of one session and extracts their tables.
type Client struct {
	fetcher   fetcher.Fetcher
	extractor *extractor.Extractor
}

// NewClient creates a new Client instance.
func NewClient(f fetcher.Fetcher, e *extractor.Extractor) *Client {
	return &Client{fetcher: f, extractor: e}
}

// Tables fetches every page kind derived from resultsURL and returns their
// body rows. Any fetch or extraction failure aborts the whole run.
func (c *Client) Tables(ctx context.Context, resultsURL string, kinds []pages.Kind) (results.Tables, error) {
	bodies, err := fetcher.FetchAll(ctx, c.fetcher, pages.Locate(resultsURL, kinds...))
	if err != nil {
		return results.Tables{}, err
	}

	var tables results.Tables
	for _, kind := range kinds {
		rows, err := c.extractor.Extract(bodies[kind])
		if err != nil {
			return results.Tables{}, fmt.Errorf("%s: %w", kind.Title(), err)
		}
		if rows == nil {
			rows = []results.RawRow{}
		}
		switch kind {
		case pages.Results:
			tables.Results = rows
		case pages.Grid:
			tables.Grid = rows
		case pages.PitStops:
			tables.PitStops = rows
		}
	}
	return tables, nil
}
