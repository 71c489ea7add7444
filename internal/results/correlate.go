package results

import (
	"github.com/samber/lo"
)

// IndexGrid keys grid positions by cleaned driver name.
func IndexGrid(grid []GridRecord) map[string]string {
	return lo.SliceToMap(grid, func(g GridRecord) (string, string) {
		return g.DriverName, g.GridPosition
	})
}

// IndexPitStops keys pit counts by cleaned driver name.
func IndexPitStops(stops []PitStopRecord) map[string]string {
	return lo.SliceToMap(stops, func(p PitStopRecord) (string, string) {
		return p.DriverName, p.PitCount
	})
}

// Correlate joins grid and pit stop data onto the finish records by exact
// driver name. A nil index means that page was not part of the run and the
// field stays empty; a driver missing from a present index gets "-".
func Correlate(finish []FinishRecord, grid, pits map[string]string, lookup Lookup) []EnrichedRecord {
	return lo.Map(finish, func(f FinishRecord, _ int) EnrichedRecord {
		return EnrichedRecord{
			FinishRecord: f,
			Flag:         lookup.Flag(f.DriverName),
			Gap:          FormatGap(f.GapRaw),
			Grid:         joined(grid, f.DriverName),
			Pits:         joined(pits, f.DriverName),
		}
	})
}

func joined(index map[string]string, driver string) string {
	if index == nil {
		return ""
	}
	if v, ok := index[driver]; ok {
		return v
	}
	return NotAvailable
}
