package schedule

import (
	"strings"
	"time"
)

// Game is a normalized NFL game from either provider.
type Game struct {
	ID            string
	Date          time.Time
	HomeTeamName  string
	AwayTeamName  string
	PointsAtStake float64
	Completed     bool
	// WinnerName is empty until the game is completed and a winner is
	// determinable. Ties stay empty.
	WinnerName string
}

func (g Game) Valid() bool {
	return strings.TrimSpace(g.ID) != "" &&
		!g.Date.IsZero() &&
		strings.TrimSpace(g.HomeTeamName) != "" &&
		strings.TrimSpace(g.AwayTeamName) != ""
}

// DetermineWinner applies the winner rules: an incomplete game has no
// winner; otherwise an explicit winner flag wins, then a strictly higher
// score; equal scores leave the winner undetermined.
func DetermineWinner(homeName, awayName string, homeScore, awayScore int, hasScores bool, explicitWinner string, completed bool) string {
	if !completed {
		return ""
	}
	if winner := strings.TrimSpace(explicitWinner); winner != "" {
		return winner
	}
	if !hasScores || homeScore == awayScore {
		return ""
	}
	if homeScore > awayScore {
		return strings.TrimSpace(homeName)
	}
	return strings.TrimSpace(awayName)
}
