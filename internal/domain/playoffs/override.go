package playoffs

import (
	"strings"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
)

// Overrides is a data patch for provider gaps: team display name mapped to a
// round whose win should be force-assigned when upstream left that round
// undetermined for the team. It is applied strictly after aggregation and is
// configured per season, never merged into the winner rules.
type Overrides map[string]schedule.Round

// DefaultOverrides covers rounds the providers historically reported without
// a winner.
func DefaultOverrides() Overrides {
	return Overrides{
		"New England Patriots": schedule.RoundConference,
		"Seattle Seahawks":     schedule.RoundConference,
	}
}

// ParseOverrides builds an override table from "Team Name" entries, all
// forced to the conference round, matching the historical patch shape.
func ParseOverrides(teamNames []string) Overrides {
	out := make(Overrides, len(teamNames))
	for _, name := range teamNames {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		out[trimmed] = schedule.RoundConference
	}
	return out
}

// ForcedWinner reports the override team for a game whose winner upstream
// left undetermined. The game must be in the override's round and the team
// must be one of the two participants.
func (o Overrides) ForcedWinner(round schedule.Round, homeName, awayName string) (string, bool) {
	if len(o) == 0 {
		return "", false
	}

	for _, name := range []string{strings.TrimSpace(homeName), strings.TrimSpace(awayName)} {
		if forcedRound, ok := o[name]; ok && forcedRound == round {
			return name, true
		}
	}
	return "", false
}

// Apply force-assigns each override team's round win when the aggregation
// left that round at zero for the team. Other teams and rounds are untouched.
func (o Overrides) Apply(wins map[string]Tally) {
	if len(o) == 0 || wins == nil {
		return
	}

	for teamName, round := range o {
		tally := wins[teamName]
		if tally.Count(round) == 0 {
			tally.Add(round)
			wins[teamName] = tally
		}
	}
}
