package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
)

func TestLeaderboardService_RanksOwners(t *testing.T) {
	t.Parallel()

	standingsSrc := &stubStandings{rows: []ExternalStanding{
		{Team: "KC", Wins: 14, Losses: 3},
		{Team: "SEA", Wins: 10, Losses: 6, Ties: 1},
		{Team: "CHI", Wins: 5, Losses: 12},
	}}
	scoreboard := &stubScoreboard{byWeek: map[int][]ExternalGame{
		4: {playoffGame("sb-1", "KC", "SF", 25, 22, true)},
	}}

	standingsSvc := NewStandingsService(standingsSrc, nil, nil, nil, false, time.August, nil).
		WithClock(fixedClock(2026, time.February, 10))
	playoffSvc := NewPlayoffService(nil, SourcePair{Scoreboard: scoreboard}, nil, nil, nil, false, time.August, nil).
		WithClock(fixedClock(2026, time.February, 10))

	owners := []nfl.Owner{
		{Name: "Alice", TeamIDs: []string{"chiefs"}},
		{Name: "Bob", TeamIDs: []string{"seahawks", "bears"}},
	}
	svc := NewLeaderboardService(standingsSvc, playoffSvc, nil, owners)

	board, err := svc.Get(context.Background(), 2025)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}

	if len(board.Owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(board.Owners))
	}
	// Alice: 14 regular + 5.0 Super Bowl = 19. Bob: 10.5 + 5 = 15.5.
	if board.Owners[0].Name != "Alice" {
		t.Fatalf("expected Alice first, got %q", board.Owners[0].Name)
	}
	if got := board.Owners[0].Total(); got != 19 {
		t.Fatalf("Alice total = %v, want 19", got)
	}
	if got := board.Owners[1].Total(); got != 15.5 {
		t.Fatalf("Bob total = %v, want 15.5", got)
	}
	if board.Season != 2025 {
		t.Fatalf("season = %d", board.Season)
	}
}

func TestLeaderboardService_TieBreaksByName(t *testing.T) {
	t.Parallel()

	standingsSrc := &stubStandings{rows: []ExternalStanding{
		{Team: "DAL", Wins: 9, Losses: 8},
		{Team: "PHI", Wins: 9, Losses: 8},
	}}
	scoreboard := &stubScoreboard{byWeek: map[int][]ExternalGame{
		1: {playoffGame("wc-1", "HOU", "CLE", 20, 13, true)},
	}}

	standingsSvc := NewStandingsService(standingsSrc, nil, nil, nil, false, time.August, nil)
	playoffSvc := NewPlayoffService(nil, SourcePair{Scoreboard: scoreboard}, nil, nil, nil, false, time.August, nil)

	owners := []nfl.Owner{
		{Name: "Zoe", TeamIDs: []string{"cowboys"}},
		{Name: "Amy", TeamIDs: []string{"eagles"}},
	}
	svc := NewLeaderboardService(standingsSvc, playoffSvc, nil, owners)

	board, err := svc.Get(context.Background(), 2025)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if board.Owners[0].Name != "Amy" {
		t.Fatalf("expected alphabetical tie break, got %q first", board.Owners[0].Name)
	}
}

func TestLeaderboardService_NoOwnersConfigured(t *testing.T) {
	t.Parallel()

	standingsSvc := NewStandingsService(&stubStandings{}, nil, nil, nil, false, time.August, nil)
	playoffSvc := NewPlayoffService(nil, SourcePair{Scoreboard: &stubScoreboard{}}, nil, nil, nil, false, time.August, nil)

	svc := NewLeaderboardService(standingsSvc, playoffSvc, nil, nil)
	if _, err := svc.Get(context.Background(), 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeaderboardService_MissingRecordScoresZero(t *testing.T) {
	t.Parallel()

	standingsSrc := &stubStandings{rows: []ExternalStanding{
		{Team: "KC", Wins: 14, Losses: 3},
	}}
	scoreboard := &stubScoreboard{byWeek: map[int][]ExternalGame{
		1: {playoffGame("wc-1", "HOU", "CLE", 20, 13, true)},
	}}

	standingsSvc := NewStandingsService(standingsSrc, nil, nil, nil, false, time.August, nil)
	playoffSvc := NewPlayoffService(nil, SourcePair{Scoreboard: scoreboard}, nil, nil, nil, false, time.August, nil)

	owners := []nfl.Owner{{Name: "Cara", TeamIDs: []string{"jets"}}}
	svc := NewLeaderboardService(standingsSvc, playoffSvc, nil, owners)

	board, err := svc.Get(context.Background(), 2025)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if got := board.Owners[0].Total(); got != 0 {
		t.Fatalf("expected zero score for a team without standings, got %v", got)
	}
}
