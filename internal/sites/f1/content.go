package f1

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"racewiki/internal/results"
)

type column struct {
	title string
	value func(r results.EnrichedRecord) string
}

var (
	colPos    = column{"Pos", func(r results.EnrichedRecord) string { return r.PositionText }}
	colDriver = column{"Driver", func(r results.EnrichedRecord) string { return r.DriverName }}
	colFlag   = column{"Flag", func(r results.EnrichedRecord) string { return r.Flag }}
	colTeam   = column{"Team", func(r results.EnrichedRecord) string { return r.TeamCode }}
	colGrid   = column{"Grid", func(r results.EnrichedRecord) string { return r.Grid }}
	colGain   = column{"Gain", func(r results.EnrichedRecord) string { return r.Gain }}
	colGap    = column{"Gap", func(r results.EnrichedRecord) string { return r.Gap }}
	colInt    = column{"Interval", func(r results.EnrichedRecord) string { return r.Interval }}
	colPits   = column{"Pits", func(r results.EnrichedRecord) string { return r.Pits }}
	colPoints = column{"Points", func(r results.EnrichedRecord) string { return r.Points }}
	colBest   = column{"Best Lap", func(r results.EnrichedRecord) string { return r.BestLap }}
	colLaps   = column{"Laps", func(r results.EnrichedRecord) string { return r.Laps }}
)

// Content holds a built session and implements scraper.Content.
type Content struct {
	site    string
	session *results.Session
}

// NewContent creates a new Content instance.
func NewContent(site string, session *results.Session) *Content {
	return &Content{site: site, session: session}
}

// Session returns the underlying session.
func (c *Content) Session() *results.Session { return c.session }

func (c *Content) columns() []column {
	switch c.session.Variant {
	case results.Practice:
		return []column{colPos, colDriver, colFlag, colTeam, colBest, colGap, colInt, colLaps}
	case results.RacePitStops:
		return []column{colPos, colDriver, colFlag, colTeam, colGrid, colGain, colGap, colInt, colPits, colPoints}
	default:
		return []column{colPos, colDriver, colFlag, colTeam, colGrid, colGain, colGap, colInt, colPoints}
	}
}

func (c *Content) header() []string {
	return lo.Map(c.columns(), func(col column, _ int) string { return col.title })
}

func (c *Content) rows() [][]string {
	cols := c.columns()
	return lo.Map(c.session.Records, func(r results.EnrichedRecord, _ int) []string {
		return lo.Map(cols, func(col column, _ int) string { return col.value(r) })
	})
}

func (c *Content) ToWiki() (string, error) {
	return c.session.Wiki(), nil
}

func (c *Content) ToText() (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(toTableRow(c.header()))
	for _, row := range c.rows() {
		t.AppendRow(toTableRow(row))
	}
	return t.Render(), nil
}

func toTableRow(cells []string) table.Row {
	return lo.Map(cells, func(s string, _ int) any { return s })
}

func (c *Content) ToHTML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range c.header() {
		fmt.Fprintf(&sb, "<th>%s</th>", html.EscapeString(h))
	}
	sb.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range c.rows() {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&sb, "<td>%s</td>", html.EscapeString(cell))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String(), nil
}

func (c *Content) ToMarkdown() (string, error) {
	h, err := c.ToHTML()
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	markdown, err := converter.ConvertString(h)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}

func (c *Content) ToJSON() ([]byte, error) {
	type jsonOutput struct {
		Site    string           `json:"site"`
		Session *results.Session `json:"session"`
	}
	return json.MarshalIndent(jsonOutput{Site: c.site, Session: c.session}, "", "  ")
}

func (c *Content) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(c.header())
	for _, row := range c.rows() {
		_ = w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}
