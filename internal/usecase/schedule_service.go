package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/domain/playoffs"
	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
	"github.com/gridironhq/nfl-companion/internal/platform/cache"
)

const (
	PhaseRegular    = "regular"
	PhasePostseason = "postseason"
	PhaseCurrent    = "current"

	regularSeasonWeeks = 18

	// Current-round detection window around now (spec: a round is "current"
	// when one of its games falls within -5..+7 days).
	currentRoundLookback  = 5 * 24 * time.Hour
	currentRoundLookahead = 7 * 24 * time.Hour
)

// ScheduleResult is one resolved week of games.
type ScheduleResult struct {
	Season     int
	Week       int
	WeekLabel  string
	SeasonType schedule.SeasonType
	Games      []schedule.Game
}

// ScheduleService resolves one week of games through the provider chain.
type ScheduleService struct {
	primary      ScoreboardSource
	fallback     ScoreboardSource
	resolver     *nfl.Resolver
	overrides    playoffs.Overrides
	store        *cache.Store
	cacheEnabled bool
	seasonCutoff time.Month
	now          func() time.Time
	logger       *slog.Logger
}

func NewScheduleService(
	primary ScoreboardSource,
	fallback ScoreboardSource,
	resolver *nfl.Resolver,
	overrides playoffs.Overrides,
	store *cache.Store,
	cacheEnabled bool,
	seasonCutoff time.Month,
	logger *slog.Logger,
) *ScheduleService {
	if resolver == nil {
		resolver = nfl.NewResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ScheduleService{
		primary:      primary,
		fallback:     fallback,
		resolver:     resolver,
		overrides:    overrides,
		store:        store,
		cacheEnabled: cacheEnabled,
		seasonCutoff: seasonCutoff,
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock overrides the time source. Tests only.
func (s *ScheduleService) WithClock(now func() time.Time) *ScheduleService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *ScheduleService) Get(ctx context.Context, phase string, week int) (ScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Get")
	defer span.End()

	season := DefaultSeason(s.now(), s.seasonCutoff)

	seasonType, resolvedWeek, err := s.resolvePhase(ctx, season, phase, week)
	if err != nil {
		return ScheduleResult{}, err
	}

	games, err := s.loadWeek(ctx, season, seasonType, resolvedWeek)
	if err != nil {
		return ScheduleResult{}, err
	}

	return ScheduleResult{
		Season:     season,
		Week:       resolvedWeek,
		WeekLabel:  weekLabel(seasonType, resolvedWeek),
		SeasonType: seasonType,
		Games:      games,
	}, nil
}

func (s *ScheduleService) resolvePhase(ctx context.Context, season int, phase string, week int) (schedule.SeasonType, int, error) {
	switch strings.ToLower(strings.TrimSpace(phase)) {
	case "", PhaseRegular:
		return schedule.SeasonTypeRegular, clampWeek(week, regularSeasonWeeks), nil
	case PhasePostseason:
		return schedule.SeasonTypePostseason, clampWeek(week, len(schedule.Rounds())), nil
	case PhaseCurrent:
		round := s.currentPostseasonRound(ctx, season)
		return schedule.SeasonTypePostseason, round.Week(), nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown phase %q", ErrInvalidInput, phase)
	}
}

// currentPostseasonRound probes the four rounds in order and picks the first
// one with a game inside the detection window.
func (s *ScheduleService) currentPostseasonRound(ctx context.Context, season int) schedule.Round {
	now := s.now()
	earliest := now.Add(-currentRoundLookback)
	latest := now.Add(currentRoundLookahead)

	for _, round := range schedule.Rounds() {
		games, err := s.loadWeek(ctx, season, schedule.SeasonTypePostseason, round.Week())
		if err != nil {
			s.logger.WarnContext(ctx, "current round probe failed", "season", season, "round", round.Label(), "error", err)
			continue
		}
		for _, game := range games {
			if !game.Date.Before(earliest) && !game.Date.After(latest) {
				return round
			}
		}
	}

	return schedule.RoundWildCard
}

func (s *ScheduleService) loadWeek(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]schedule.Game, error) {
	if !s.cacheEnabled || s.store == nil {
		return s.fetchWeek(ctx, season, seasonType, week)
	}

	key := fmt.Sprintf("schedule:%d:%d:%d", season, seasonType, week)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.fetchWeek(ctx, season, seasonType, week)
	})
	if err != nil {
		return nil, err
	}

	games, ok := value.([]schedule.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected cached schedule type %T", value)
	}
	return games, nil
}

func (s *ScheduleService) fetchWeek(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]schedule.Game, error) {
	rows, err := s.fetchRows(ctx, season, seasonType, week)
	if err != nil {
		return nil, err
	}
	return s.normalizeGames(rows, seasonType, week), nil
}

func (s *ScheduleService) fetchRows(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]ExternalGame, error) {
	if s.primary != nil {
		rows, err := s.primary.FetchGames(ctx, season, seasonType, week)
		if err == nil && len(rows) > 0 {
			return rows, nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "primary scoreboard fetch failed, trying fallback",
				"season", season, "season_type", int(seasonType), "week", week, "error", err)
		}
	}

	if s.fallback == nil {
		return nil, fmt.Errorf("%w: no scoreboard source configured", ErrUpstreamUnavailable)
	}
	rows, err := s.fallback.FetchGames(ctx, season, seasonType, week)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch games season=%d week=%d: %v", ErrUpstreamUnavailable, season, week, err)
	}
	return rows, nil
}

// normalizeGames maps provider rows to canonical games. Rows missing any of
// id, date, home, or away are dropped. Unresolvable team tokens pass through
// raw so provider naming drift never blanks a rendered schedule. Postseason
// games whose winner upstream left undetermined take the configured override
// winner for their round.
func (s *ScheduleService) normalizeGames(rows []ExternalGame, seasonType schedule.SeasonType, week int) []schedule.Game {
	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		game := schedule.Game{
			ID:            strings.TrimSpace(row.ID),
			Date:          row.Date,
			HomeTeamName:  s.resolver.DisplayName(row.HomeTeam),
			AwayTeamName:  s.resolver.DisplayName(row.AwayTeam),
			PointsAtStake: pointsAtStake(seasonType, week, row.RoundLabel),
			Completed:     row.Completed,
		}
		if !game.Valid() {
			continue
		}

		winner := schedule.DetermineWinner(
			game.HomeTeamName,
			game.AwayTeamName,
			row.HomeScore,
			row.AwayScore,
			row.HasScores,
			s.resolver.DisplayName(row.Winner),
			row.Completed,
		)
		if winner == "" && seasonType == schedule.SeasonTypePostseason {
			round := schedule.InferRound(row.RoundLabel)
			if round == schedule.RoundNone {
				round = schedule.RoundByWeek(week)
			}
			if forced, ok := s.overrides.ForcedWinner(round, game.HomeTeamName, game.AwayTeamName); ok {
				winner = forced
				game.Completed = true
			}
		}
		game.WinnerName = winner

		out = append(out, game)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func pointsAtStake(seasonType schedule.SeasonType, week int, roundLabel string) float64 {
	if seasonType != schedule.SeasonTypePostseason {
		return schedule.RegularSeasonPoints
	}
	if round := schedule.InferRound(roundLabel); round != schedule.RoundNone {
		return round.Points()
	}
	return schedule.RoundByWeek(week).Points()
}

func weekLabel(seasonType schedule.SeasonType, week int) string {
	if seasonType == schedule.SeasonTypePostseason {
		if round := schedule.RoundByWeek(week); round != schedule.RoundNone {
			return round.Label()
		}
	}
	return fmt.Sprintf("Week %d", week)
}

func clampWeek(week, maxWeek int) int {
	if week < 1 {
		return 1
	}
	if week > maxWeek {
		return maxWeek
	}
	return week
}
