package results

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Build runs normalization, correlation and the derived-field calculation
// over the raw tables of one run.
func Build(variant Variant, tables Tables, lookup Lookup) *Session {
	finish := NormalizeFinishRows(tables.Results, lookup, variant)
	SortByFinish(finish)

	var grid, pits map[string]string
	if tables.Grid != nil {
		grid = IndexGrid(NormalizeGrid(tables.Grid))
	}
	if tables.PitStops != nil {
		pits = IndexPitStops(NormalizePitStops(tables.PitStops))
	}

	session := &Session{
		Variant: variant,
		Records: Correlate(finish, grid, pits, lookup),
	}
	if len(finish) == 0 {
		return session
	}

	if variant == Practice {
		intervals := PracticeIntervals(lo.Map(finish, func(f FinishRecord, _ int) string {
			return f.BestLap
		}))
		for i := range session.Records {
			session.Records[i].Interval = intervals[i]
		}
		return session
	}

	intervals, leader := RaceIntervals(lo.Map(finish, func(f FinishRecord, _ int) string {
		return f.GapRaw
	}))
	session.LeaderTime = leader
	for i := range session.Records {
		rec := &session.Records[i]
		rec.Interval = intervals[i]
		rec.Gain = Gain(rec.Grid, rec.Position)
	}
	// the leader's cell holds the race time, not a gap
	session.Records[0].Gap = NotAvailable
	return session
}

// SortByFinish orders classified finishers by position. Unclassified rows
// keep their table order after them.
func SortByFinish(finish []FinishRecord) {
	slices.SortStableFunc(finish, func(a, b FinishRecord) int {
		switch {
		case a.Position == 0 && b.Position == 0:
			return 0
		case a.Position == 0:
			return 1
		case b.Position == 0:
			return -1
		default:
			return cmp.Compare(a.Position, b.Position)
		}
	})
}
