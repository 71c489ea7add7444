package results

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"racewiki/internal/log"
)

// Column positions shared by every page kind.
const (
	colPosition = 0 // finish position, grid slot or stop number
	colDriver   = 2
	colTeam     = 3
	colBestLap  = 4
	colGap      = 5
	colTally    = 6 // points on race pages, laps on practice pages
)

// codeLen is the width of the driver code glued to the name cell.
const codeLen = 3

var (
	sixty      = decimal.NewFromInt(60)
	gapPattern = regexp.MustCompile(`([+-]?\d*[.,]?\d+)s?`)
)

// CleanDriverName normalizes a driver cell into the join key used across
// all tables: "Lewis HamiltonHAM" -> "Lewis Hamilton".
//
// The trailing code is dropped by width. The strip only applies while the
// last three runes are an upper-case code directly attached to a name
// written in mixed case, so an already clean name is returned unchanged.
func CleanDriverName(text string) string {
	name := strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
	runes := []rune(name)
	if len(runes) <= codeLen {
		return name
	}

	cut := len(runes) - codeLen
	for _, r := range runes[cut:] {
		if !unicode.IsUpper(r) {
			return name
		}
	}
	if before := runes[cut-1]; unicode.IsSpace(before) || unicode.IsUpper(before) {
		return name
	}
	return strings.TrimSpace(string(runes[:cut]))
}

// TimeToSeconds parses "M:SS.sss" (or "H:MM:SS.sss") with a dot or comma
// decimal separator. Malformed text yields zero and a warning.
func TimeToSeconds(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, ":") {
		log.Logger.Warn("invalid time format", zap.String("text", text))
		return decimal.Zero
	}

	parts := strings.Split(text, ":")
	total := decimal.Zero
	for _, p := range parts[:len(parts)-1] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			log.Logger.Warn("unexpected time format", zap.String("text", text))
			return decimal.Zero
		}
		total = total.Add(decimal.NewFromInt(int64(n))).Mul(sixty)
	}

	secs, err := decimal.NewFromString(strings.Replace(parts[len(parts)-1], ",", ".", 1))
	if err != nil || secs.IsNegative() {
		log.Logger.Warn("unexpected time format", zap.String("text", text))
		return decimal.Zero
	}
	return total.Add(secs)
}

// ParseGapTime extracts the first decimal number of a gap cell such as
// "+1.234s". Lapped cells and cells without a number yield zero.
func ParseGapTime(text string) decimal.Decimal {
	if IsLapped(text) {
		return decimal.Zero
	}
	m := gapPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	num := strings.TrimPrefix(strings.Replace(m[1], ",", ".", 1), "+")
	d, err := decimal.NewFromString(num)
	if err != nil {
		log.Logger.Warn("unexpected gap format", zap.String("text", text))
		return decimal.Zero
	}
	return d
}

// IsLapped reports whether a gap cell denotes a lap deficit ("+1 Lap").
func IsLapped(text string) bool {
	return strings.Contains(strings.ToLower(text), "lap")
}

// hasNumericGap reports whether a gap cell carries a usable time delta.
// DNF, DNS, DSQ and lapped cells do not.
func hasNumericGap(text string) bool {
	return !IsLapped(text) && gapPattern.MatchString(text)
}

// FormatGap renders a gap cell: "1.234s" -> "1.234", "1 Lap" -> "1 LAP".
func FormatGap(text string) string {
	gap := strings.TrimSuffix(strings.TrimSpace(text), "s")
	gap = strings.ToUpper(strings.TrimSpace(gap))
	if gap == "" {
		return NotAvailable
	}
	return gap
}

// NormalizeFinish maps a classification row onto a FinishRecord.
func NormalizeFinish(row RawRow, lookup Lookup, variant Variant) FinishRecord {
	rec := FinishRecord{
		PositionText: row.cell(colPosition),
		DriverName:   CleanDriverName(row.cell(colDriver)),
		TeamCode:     lookup.TeamCode(row.cell(colTeam)),
		BestLap:      row.cell(colBestLap),
		GapRaw:       row.cell(colGap),
	}
	if n, err := strconv.Atoi(rec.PositionText); err == nil && n >= 1 {
		rec.Position = n
	}
	if variant == Practice {
		rec.Laps = row.cell(colTally)
	} else {
		rec.Points = row.cell(colTally)
	}
	return rec
}

// NormalizeFinishRows maps every non-empty row of a classification table.
func NormalizeFinishRows(rows []RawRow, lookup Lookup, variant Variant) []FinishRecord {
	return lo.FilterMap(rows, func(row RawRow, _ int) (FinishRecord, bool) {
		if len(row) == 0 {
			return FinishRecord{}, false
		}
		return NormalizeFinish(row, lookup, variant), true
	})
}

// NormalizeGrid maps every non-empty row of a starting grid table.
func NormalizeGrid(rows []RawRow) []GridRecord {
	return lo.FilterMap(rows, func(row RawRow, _ int) (GridRecord, bool) {
		if len(row) == 0 {
			return GridRecord{}, false
		}
		return GridRecord{
			DriverName:   CleanDriverName(row.cell(colDriver)),
			GridPosition: row.cell(colPosition),
		}, true
	})
}

// NormalizePitStops folds a pit stop summary, which lists one row per stop,
// into one record per driver carrying the highest stop number.
func NormalizePitStops(rows []RawRow) []PitStopRecord {
	var out []PitStopRecord
	seen := map[string]int{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := CleanDriverName(row.cell(colDriver))
		stop := row.cell(colPosition)

		i, ok := seen[name]
		if !ok {
			seen[name] = len(out)
			out = append(out, PitStopRecord{DriverName: name, PitCount: stop})
			continue
		}
		if moreStops(stop, out[i].PitCount) {
			out[i].PitCount = stop
		}
	}
	return out
}

func moreStops(candidate, current string) bool {
	c, err := strconv.Atoi(candidate)
	if err != nil {
		return false
	}
	cur, err := strconv.Atoi(current)
	return err != nil || c > cur
}
