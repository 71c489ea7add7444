package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const resultsURL = "https://www.formula1.com/en/results/2024/races/1229/bahrain/race-result"

func TestLocate(t *testing.T) {
	urls := Locate(resultsURL, Results, Grid, PitStops)

	assert.Equal(t, map[Kind]string{
		Results:  resultsURL,
		Grid:     "https://www.formula1.com/en/results/2024/races/1229/bahrain/starting-grid",
		PitStops: "https://www.formula1.com/en/results/2024/races/1229/bahrain/pit-stop-summary",
	}, urls)
}

func TestKindURL_FirstOccurrenceOnly(t *testing.T) {
	got := Grid.URL("https://example.com/race-result/race-result")
	assert.Equal(t, "https://example.com/starting-grid/race-result", got)
}

func TestKindURL_NoMarker(t *testing.T) {
	u := "https://www.formula1.com/en/results/2024/races/1229/bahrain/practice/1"
	assert.Equal(t, u, Grid.URL(u))
	assert.Equal(t, u, PitStops.URL(u))
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "race results", Results.Title())
	assert.Equal(t, "starting grid", Grid.Title())
	assert.Equal(t, "pit stop summary", PitStops.Title())
}
