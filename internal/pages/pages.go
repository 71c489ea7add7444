// Package pages derives the sibling page URLs of a results page.
package pages

import "strings"

// Kind identifies one of the pages that make up a session.
type Kind string

const (
	Results  Kind = "race-result"
	Grid     Kind = "starting-grid"
	PitStops Kind = "pit-stop-summary"
)

// marker is the path segment of the canonical results URL.
const marker = string(Results)

// Title is the human-readable name used in error messages.
func (k Kind) Title() string {
	switch k {
	case Results:
		return "race results"
	case Grid:
		return "starting grid"
	case PitStops:
		return "pit stop summary"
	default:
		return string(k)
	}
}

// URL derives the URL of the page kind from a results URL by replacing the
// first occurrence of the results segment. A URL without the segment is
// returned unchanged.
func (k Kind) URL(resultsURL string) string {
	return strings.Replace(resultsURL, marker, string(k), 1)
}

// Locate derives the URL of every requested kind.
func Locate(resultsURL string, kinds ...Kind) map[Kind]string {
	urls := make(map[Kind]string, len(kinds))
	for _, k := range kinds {
		urls[k] = k.URL(resultsURL)
	}
	return urls
}
