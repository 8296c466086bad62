package schedule

import "strings"

type SeasonType int

const (
	SeasonTypeRegular    SeasonType = 2
	SeasonTypePostseason SeasonType = 3
)

// RegularSeasonPoints is the stake on any regular-season game.
const RegularSeasonPoints = 1.0

// Round is one of the four postseason stages.
type Round int

const (
	RoundNone Round = iota
	RoundWildCard
	RoundDivisional
	RoundConference
	RoundSuperBowl
)

func Rounds() []Round {
	return []Round{RoundWildCard, RoundDivisional, RoundConference, RoundSuperBowl}
}

func (r Round) Label() string {
	switch r {
	case RoundWildCard:
		return "Wild Card"
	case RoundDivisional:
		return "Divisional Round"
	case RoundConference:
		return "Conference Round"
	case RoundSuperBowl:
		return "Super Bowl"
	default:
		return ""
	}
}

// Key is the round's wire identifier, matching the per-round win keys.
func (r Round) Key() string {
	switch r {
	case RoundWildCard:
		return "wildCard"
	case RoundDivisional:
		return "divisional"
	case RoundConference:
		return "conference"
	case RoundSuperBowl:
		return "superBowl"
	default:
		return ""
	}
}

// Week is the round's postseason week number (1..4).
func (r Round) Week() int {
	switch r {
	case RoundWildCard, RoundDivisional, RoundConference, RoundSuperBowl:
		return int(r)
	default:
		return 0
	}
}

// Points is the stake awarded for winning a game in this round.
func (r Round) Points() float64 {
	switch r {
	case RoundWildCard:
		return 1.5
	case RoundDivisional:
		return 2.5
	case RoundConference:
		return 3.5
	case RoundSuperBowl:
		return 5.0
	default:
		return RegularSeasonPoints
	}
}

func RoundByWeek(week int) Round {
	if week >= 1 && week <= 4 {
		return Round(week)
	}
	return RoundNone
}

// InferRound matches a free-text round label against the four stages. Used
// for feeds that only carry display labels like "AFC Divisional Playoffs".
func InferRound(label string) Round {
	normalized := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(normalized, "wild card") || strings.Contains(normalized, "wildcard"):
		return RoundWildCard
	case strings.Contains(normalized, "divisional"):
		return RoundDivisional
	case strings.Contains(normalized, "conference"):
		return RoundConference
	case strings.Contains(normalized, "super bowl"):
		return RoundSuperBowl
	default:
		return RoundNone
	}
}
