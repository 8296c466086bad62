package scoring

import (
	"github.com/gridironhq/nfl-companion/internal/domain/playoffs"
	"github.com/gridironhq/nfl-companion/internal/domain/standings"
)

// TeamScore breaks a single team's fantasy value into its two components.
type TeamScore struct {
	Name          string
	RegularPoints float64
	PlayoffPoints float64
}

func (s TeamScore) Total() float64 {
	return s.RegularPoints + s.PlayoffPoints
}

// TeamPoints scores one team from its season record and playoff results.
// Playoff data is only trusted while the whole summary passes the per-round
// {0,1} guard; otherwise the playoff contribution is zero for this cycle.
func TeamPoints(record standings.TeamRecord, summary playoffs.Summary) TeamScore {
	score := TeamScore{
		Name:          record.Name,
		RegularPoints: record.RegularSeasonPoints(),
	}

	if !summary.Valid() {
		return score
	}

	tally := summary.Wins[record.Name]
	score.PlayoffPoints = tally.Points()
	if summary.Byes[record.Name] {
		score.PlayoffPoints += playoffs.ByePoints
	}

	return score
}

// OwnerScore is one fantasy owner's total over their owned teams.
type OwnerScore struct {
	Name          string
	RegularPoints float64
	PlayoffPoints float64
	Teams         []TeamScore
}

func (s OwnerScore) Total() float64 {
	return s.RegularPoints + s.PlayoffPoints
}

// OwnerTotal sums the given team scores into an owner's season score.
func OwnerTotal(ownerName string, teams []TeamScore) OwnerScore {
	out := OwnerScore{
		Name:  ownerName,
		Teams: teams,
	}
	for _, team := range teams {
		out.RegularPoints += team.RegularPoints
		out.PlayoffPoints += team.PlayoffPoints
	}
	return out
}
