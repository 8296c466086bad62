package usecase

import "time"

// DefaultSeasonCutoff is the month an NFL season label rolls over: before
// August the ongoing season still carries the previous year's label.
const DefaultSeasonCutoff = time.August

// DefaultSeason infers the season year from a point in time and a cutoff
// month. Pure so season inference stays deterministic under test.
func DefaultSeason(now time.Time, cutoff time.Month) int {
	if cutoff < time.January || cutoff > time.December {
		cutoff = DefaultSeasonCutoff
	}
	if now.Month() < cutoff {
		return now.Year() - 1
	}
	return now.Year()
}
