package results

import "github.com/shopspring/decimal"

// Sentinel rendered when a joined value is missing or not computable.
const NotAvailable = "-"

// Variant selects which pages take part in a run and which template is
// rendered.
type Variant int

const (
	Practice     Variant = iota // results only, PracticeResults/Row
	Race                        // results + starting grid
	RacePitStops                // results + starting grid + pit stop summary
)

func (v Variant) String() string {
	switch v {
	case Practice:
		return "practice"
	case Race:
		return "race"
	case RacePitStops:
		return "race-pits"
	default:
		return "unknown"
	}
}

// RawRow holds the trimmed cell texts of one table row. The column index is
// the field.
type RawRow []string

func (r RawRow) cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// FinishRecord is one driver's entry in the classification table.
type FinishRecord struct {
	Position     int    `json:"position"` // 0 when the cell is not numeric (NC, DQ)
	PositionText string `json:"position_text"`
	DriverName   string `json:"driver"`
	TeamCode     string `json:"team"`
	BestLap      string `json:"best_lap,omitempty"`
	GapRaw       string `json:"gap_raw"`
	Points       string `json:"points,omitempty"` // race pages
	Laps         string `json:"laps,omitempty"`   // practice pages
}

// GridRecord is one driver's starting position.
type GridRecord struct {
	DriverName   string
	GridPosition string
}

// PitStopRecord is the number of stops a driver made.
type PitStopRecord struct {
	DriverName string
	PitCount   string
}

// EnrichedRecord is a finish record joined with grid and pit stop data plus
// the derived fields, all in their rendered form.
type EnrichedRecord struct {
	FinishRecord
	Flag     string `json:"flag"`
	Grid     string `json:"grid,omitempty"`
	Gain     string `json:"gain,omitempty"`
	Gap      string `json:"gap"`
	Interval string `json:"interval"`
	Pits     string `json:"pits,omitempty"`
}

// Lookup resolves the static reference data.
type Lookup interface {
	// TeamCode returns the short code for a full team name, or "".
	TeamCode(name string) string
	// Flag returns the flag code for a cleaned driver name, or "".
	Flag(driver string) string
}

// Tables holds the raw rows of every page fetched for a run. A nil slice
// means the page kind was not fetched.
type Tables struct {
	Results  []RawRow
	Grid     []RawRow
	PitStops []RawRow
}

// Session is the outcome of one pipeline run.
type Session struct {
	Variant    Variant          `json:"-"`
	SourceURL  string           `json:"source_url"`
	Records    []EnrichedRecord `json:"records"`
	LeaderTime decimal.Decimal  `json:"leader_time_seconds"`
}
