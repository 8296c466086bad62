package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
)

type stubStandings struct {
	rows  []ExternalStanding
	err   error
	calls atomic.Int64
}

func (s *stubStandings) FetchStandings(_ context.Context, _ int) ([]ExternalStanding, error) {
	s.calls.Add(1)
	return s.rows, s.err
}

type stubScoreboard struct {
	byWeek map[int][]ExternalGame
	errs   map[int]error
	err    error
	calls  atomic.Int64
}

func (s *stubScoreboard) FetchGames(_ context.Context, _ int, _ schedule.SeasonType, week int) ([]ExternalGame, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	if err := s.errs[week]; err != nil {
		return nil, err
	}
	return s.byWeek[week], nil
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func playoffGame(id string, home, away string, homeScore, awayScore int, completed bool) ExternalGame {
	return ExternalGame{
		ID:        id,
		Date:      time.Date(2026, time.January, 11, 18, 0, 0, 0, time.UTC),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
		HasScores: true,
		Completed: completed,
	}
}
