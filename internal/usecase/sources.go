package usecase

import (
	"context"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
)

// ExternalStanding is one provider standings row before identity resolution.
// Team carries the provider token (abbreviation or display name); Name is the
// full display name when the provider sends one.
type ExternalStanding struct {
	Team       string
	Name       string
	Wins       int
	Losses     int
	Ties       int
	Seed       int
	Conference string
	Division   string
}

// ExternalGame is one provider event before identity resolution. Winner is
// the provider's explicit winner token when present; scores are only
// meaningful while HasScores is set.
type ExternalGame struct {
	ID         string
	Date       time.Time
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	HasScores  bool
	Completed  bool
	Winner     string
	RoundLabel string
}

// StandingsSource fetches a season's standings rows from one provider.
type StandingsSource interface {
	FetchStandings(ctx context.Context, season int) ([]ExternalStanding, error)
}

// ScoreboardSource fetches one week's games from one provider.
type ScoreboardSource interface {
	FetchGames(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]ExternalGame, error)
}
