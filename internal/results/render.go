package results

import (
	"fmt"
	"strings"
)

const (
	raceRowFormat = "|{{RaceResults/Row|pos=%s |driver=%s |flag=%s |team=%s |grid=%s |gain=%s |gap=%s |pits=%s |points=%s\n" +
		"|interval=%s |tyres=\n}}\n"
	practiceRowFormat = "|{{PracticeResults/Row|pos=%s |driver=%s |flag=%s |team=%s |gap=%s |interval=%s\n" +
		"|bestlap=%s |tyres= |laps=%s\n}}\n"
)

// RenderRaceRow writes one RaceResults/Row block.
func RenderRaceRow(sb *strings.Builder, r EnrichedRecord) {
	fmt.Fprintf(sb, raceRowFormat,
		r.PositionText, r.DriverName, r.Flag, r.TeamCode, r.Grid, r.Gain, r.Gap, r.Pits, r.Points,
		r.Interval)
}

// RenderPracticeRow writes one PracticeResults/Row block.
func RenderPracticeRow(sb *strings.Builder, r EnrichedRecord) {
	fmt.Fprintf(sb, practiceRowFormat,
		r.PositionText, r.DriverName, r.Flag, r.TeamCode, r.Gap, r.Interval,
		r.BestLap, r.Laps)
}

// Wiki renders every record of the session in finish order.
func (s *Session) Wiki() string {
	render := RenderRaceRow
	if s.Variant == Practice {
		render = RenderPracticeRow
	}

	var sb strings.Builder
	for _, r := range s.Records {
		render(&sb, r)
	}
	return sb.String()
}
