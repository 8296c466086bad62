package playoffs

import (
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
)

const (
	SourceSportsData   = "sportsdataio"
	SourceESPNFallback = "espn-fallback"
)

// Tally counts a team's wins per postseason round. Each round can be won at
// most once per season, so every counter must stay within {0,1}.
type Tally struct {
	WildCard   int
	Divisional int
	Conference int
	SuperBowl  int
}

func (t *Tally) Add(round schedule.Round) {
	switch round {
	case schedule.RoundWildCard:
		t.WildCard++
	case schedule.RoundDivisional:
		t.Divisional++
	case schedule.RoundConference:
		t.Conference++
	case schedule.RoundSuperBowl:
		t.SuperBowl++
	}
}

func (t Tally) Count(round schedule.Round) int {
	switch round {
	case schedule.RoundWildCard:
		return t.WildCard
	case schedule.RoundDivisional:
		return t.Divisional
	case schedule.RoundConference:
		return t.Conference
	case schedule.RoundSuperBowl:
		return t.SuperBowl
	default:
		return 0
	}
}

func (t Tally) Valid() bool {
	for _, count := range []int{t.WildCard, t.Divisional, t.Conference, t.SuperBowl} {
		if count < 0 || count > 1 {
			return false
		}
	}
	return true
}

// Points is the playoff stake earned from round wins, excluding any bye bonus.
func (t Tally) Points() float64 {
	return float64(t.WildCard)*schedule.RoundWildCard.Points() +
		float64(t.Divisional)*schedule.RoundDivisional.Points() +
		float64(t.Conference)*schedule.RoundConference.Points() +
		float64(t.SuperBowl)*schedule.RoundSuperBowl.Points()
}

// ByePoints is the bonus for a top seed skipping the wild-card round.
const ByePoints = 1.5

// Summary is the aggregated postseason picture for one season.
type Summary struct {
	Season         int
	UpdatedAt      time.Time
	Source         string
	HasProviderKey bool
	Wins           map[string]Tally
	Byes           map[string]bool
}

// Valid reports whether every team's per-round counts are trustworthy.
func (s Summary) Valid() bool {
	for _, tally := range s.Wins {
		if !tally.Valid() {
			return false
		}
	}
	return true
}
