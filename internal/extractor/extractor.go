package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"

	"racewiki/internal/results"
)

// DefaultSelector matches the classification table of a results page.
const DefaultSelector = ".f1-table.f1-table-with-data"

// ErrTableNotFound is returned when no element matches the selector.
var ErrTableNotFound = errors.New("results table not found")

// Table is a located data table.
type Table interface {
	Rows() []Row
}

// Row is one body row of a Table.
type Row interface {
	Cells() []string
}

// Extractor locates the data table of a page.
type Extractor struct {
	selector string
	matcher  cascadia.Selector
}

// New compiles selector. An empty selector means DefaultSelector.
func New(selector string) (*Extractor, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return &Extractor{selector: selector, matcher: m}, nil
}

// Selector returns the selector the extractor was compiled from.
func (e *Extractor) Selector() string { return e.selector }

// ParseHTML parses a page body.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Find returns the first element matching the selector.
func (e *Extractor) Find(doc *goquery.Document) (Table, error) {
	sel := doc.FindMatcher(e.matcher).First()
	if sel.Length() == 0 {
		return nil, ErrTableNotFound
	}
	return htmlTable{sel: sel}, nil
}

// Extract parses html and returns the body rows of its data table.
func (e *Extractor) Extract(html string) ([]results.RawRow, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}
	table, err := e.Find(doc)
	if err != nil {
		return nil, err
	}
	return RawRows(table), nil
}

// RawRows flattens a table into cell-text rows.
func RawRows(t Table) []results.RawRow {
	return lo.Map(t.Rows(), func(r Row, _ int) results.RawRow {
		return r.Cells()
	})
}

type htmlTable struct {
	sel *goquery.Selection
}

// Rows yields the tbody rows in document order. The HTML parser inserts a
// tbody when the markup has none, so header rows under thead are skipped.
func (t htmlTable) Rows() []Row {
	return goquery.Map(t.sel.ChildrenFiltered("tbody").ChildrenFiltered("tr"), func(_ int, tr *goquery.Selection) Row {
		return htmlRow{sel: tr}
	})
}

type htmlRow struct {
	sel *goquery.Selection
}

func (r htmlRow) Cells() []string {
	return r.sel.ChildrenFiltered("td").Map(func(_ int, td *goquery.Selection) string {
		return strings.TrimSpace(td.Text())
	})
}
