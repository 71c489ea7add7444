package results

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"racewiki/internal/log"
)

// Gain is the number of places won from the grid: grid - finish. Positive
// values carry a leading "+". A missing or non-numeric grid slot, or an
// unclassified finisher, yields "-".
func Gain(grid string, position int) string {
	if grid == NotAvailable || grid == "" || position < 1 {
		return NotAvailable
	}
	start, err := strconv.Atoi(grid)
	if err != nil {
		log.Logger.Debug("grid position is not numeric", zap.String("grid", grid))
		return NotAvailable
	}
	gain := start - position
	if gain > 0 {
		return "+" + strconv.Itoa(gain)
	}
	return strconv.Itoa(gain)
}

// IntervalChain is the accumulator of the race interval fold. Each step
// consumes the next row's gap-to-leader cell in finish order.
type IntervalChain struct {
	// Leader is the leader's absolute time, kept as the session reference.
	Leader decimal.Decimal
	// LastGap is the gap-to-leader of the last row that had one.
	LastGap   decimal.Decimal
	Intervals []string
}

// Step returns the chain advanced by the row at index with the given gap
// cell.
func (c IntervalChain) Step(index int, gapRaw string) IntervalChain {
	next := IntervalChain{
		Leader:    c.Leader,
		LastGap:   c.LastGap,
		Intervals: append(c.Intervals[:len(c.Intervals):len(c.Intervals)], ""),
	}
	at := len(next.Intervals) - 1

	switch {
	case index == 0:
		next.Leader = TimeToSeconds(gapRaw)
		next.Intervals[at] = NotAvailable
	case !hasNumericGap(gapRaw):
		// lapped or retired: no numeric interval
	case index == 1:
		gap := ParseGapTime(gapRaw)
		next.Intervals[at] = "+" + gap.StringFixed(3)
		next.LastGap = gap
	default:
		gap := ParseGapTime(gapRaw)
		next.Intervals[at] = "+" + c.LastGap.Sub(gap).Abs().StringFixed(3)
		next.LastGap = gap
	}
	return next
}

// RaceIntervals computes the interval to the preceding driver for gap
// cells given in finish order. It also returns the leader's absolute time.
func RaceIntervals(gaps []string) ([]string, decimal.Decimal) {
	chain := lo.Reduce(gaps, func(c IntervalChain, gap string, i int) IntervalChain {
		return c.Step(i, gap)
	}, IntervalChain{})
	return chain.Intervals, chain.Leader
}

// PracticeIntervals computes the best-lap delta to the preceding driver.
// Rows without a lap time get "" and leave the reference untouched.
func PracticeIntervals(bestLaps []string) []string {
	type acc struct {
		prev      decimal.Decimal
		started   bool
		intervals []string
	}
	out := lo.Reduce(bestLaps, func(a acc, lap string, _ int) acc {
		if lap == "" {
			a.intervals = append(a.intervals, "")
			return a
		}
		secs := TimeToSeconds(lap)
		if !a.started {
			a.intervals = append(a.intervals, NotAvailable)
		} else {
			a.intervals = append(a.intervals, "+"+secs.Sub(a.prev).StringFixed(3))
		}
		a.prev, a.started = secs, true
		return a
	}, acc{})
	return out.intervals
}
