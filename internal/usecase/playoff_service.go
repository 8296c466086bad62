package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/domain/playoffs"
	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
	"github.com/gridironhq/nfl-companion/internal/domain/standings"
	"github.com/gridironhq/nfl-companion/internal/platform/cache"
)

// SourcePair bundles one provider's standings and scoreboard feeds.
type SourcePair struct {
	Standings  StandingsSource
	Scoreboard ScoreboardSource
}

// PlayoffService aggregates the four postseason rounds into per-team win
// tallies and wildcard byes, preferring the keyed provider and falling back
// to the public feed.
type PlayoffService struct {
	primary      *SourcePair
	fallback     SourcePair
	resolver     *nfl.Resolver
	overrides    playoffs.Overrides
	store        *cache.Store
	cacheEnabled bool
	seasonCutoff time.Month
	maxWorkers   int
	now          func() time.Time
	logger       *slog.Logger
}

func NewPlayoffService(
	primary *SourcePair,
	fallback SourcePair,
	resolver *nfl.Resolver,
	overrides playoffs.Overrides,
	store *cache.Store,
	cacheEnabled bool,
	seasonCutoff time.Month,
	logger *slog.Logger,
) *PlayoffService {
	if resolver == nil {
		resolver = nfl.NewResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PlayoffService{
		primary:      primary,
		fallback:     fallback,
		resolver:     resolver,
		overrides:    overrides,
		store:        store,
		cacheEnabled: cacheEnabled,
		seasonCutoff: seasonCutoff,
		maxWorkers:   len(schedule.Rounds()),
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock overrides the time source. Tests only.
func (s *PlayoffService) WithClock(now func() time.Time) *PlayoffService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *PlayoffService) Get(ctx context.Context, season int, refresh bool) (playoffs.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.Get")
	defer span.End()

	if season < 0 || season > 9999 {
		return playoffs.Summary{}, fmt.Errorf("%w: season %d is out of range", ErrInvalidInput, season)
	}
	if season == 0 {
		season = DefaultSeason(s.now(), s.seasonCutoff)
	}

	if !s.cacheEnabled || s.store == nil {
		return s.build(ctx, season)
	}

	key := playoffsCacheKey(season)
	if refresh {
		s.store.Delete(ctx, key)
	}

	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.build(ctx, season)
	})
	if err != nil {
		return playoffs.Summary{}, err
	}

	summary, ok := value.(playoffs.Summary)
	if !ok {
		return playoffs.Summary{}, fmt.Errorf("unexpected cached playoffs type %T", value)
	}
	return summary, nil
}

func (s *PlayoffService) build(ctx context.Context, season int) (playoffs.Summary, error) {
	hasKey := s.primary != nil

	if s.primary != nil {
		roundGames, err := s.fetchRounds(ctx, s.primary.Scoreboard, season)
		if err == nil && totalGames(roundGames) > 0 {
			table, haveStandings := s.fetchSeedTable(ctx, s.primary.Standings, season)
			return s.aggregate(season, roundGames, table, haveStandings, playoffs.SourceSportsData, hasKey), nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "primary playoff fetch failed, trying fallback", "season", season, "error", err)
		} else {
			s.logger.WarnContext(ctx, "primary playoff feed returned no games, trying fallback", "season", season)
		}
	}

	if s.fallback.Scoreboard == nil {
		return playoffs.Summary{}, fmt.Errorf("%w: no playoff source configured", ErrUpstreamUnavailable)
	}
	roundGames, err := s.fetchRounds(ctx, s.fallback.Scoreboard, season)
	if err != nil {
		return playoffs.Summary{}, fmt.Errorf("%w: fetch playoff rounds season=%d: %v", ErrUpstreamUnavailable, season, err)
	}
	if totalGames(roundGames) == 0 {
		return playoffs.Summary{}, fmt.Errorf("%w: no playoff games for season=%d", ErrUpstreamUnavailable, season)
	}

	table, haveStandings := s.fetchSeedTable(ctx, s.fallback.Standings, season)
	return s.aggregate(season, roundGames, table, haveStandings, playoffs.SourceESPNFallback, hasKey), nil
}

// fetchRounds pulls all four rounds concurrently through a worker pool and
// joins on an all-complete barrier. Rounds are independent reads, so partial
// failures degrade to fewer rounds rather than failing the aggregation.
func (s *PlayoffService) fetchRounds(ctx context.Context, source ScoreboardSource, season int) (map[schedule.Round][]ExternalGame, error) {
	if source == nil {
		return nil, fmt.Errorf("scoreboard source is required")
	}

	rounds := schedule.Rounds()
	results := make([][]ExternalGame, len(rounds))
	errs := make([]error, len(rounds))

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, round := range rounds {
		idx, round := idx, round
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows, fetchErr := source.FetchGames(ctx, season, schedule.SeasonTypePostseason, round.Week())
			results[idx] = rows
			errs[idx] = fetchErr
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit round fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	out := make(map[schedule.Round][]ExternalGame, len(rounds))
	failures := 0
	var firstErr error
	for idx, round := range rounds {
		if errs[idx] != nil {
			failures++
			if firstErr == nil {
				firstErr = errs[idx]
			}
			s.logger.WarnContext(ctx, "playoff round fetch failed", "season", season, "round", round.Label(), "error", errs[idx])
			continue
		}
		out[round] = results[idx]
	}
	if failures == len(rounds) {
		return nil, firstErr
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return out, nil
}

func (s *PlayoffService) fetchSeedTable(ctx context.Context, source StandingsSource, season int) (standings.Table, bool) {
	if source == nil {
		return standings.Table{}, false
	}

	rows, err := source.FetchStandings(ctx, season)
	if err != nil || len(rows) == 0 {
		s.logger.WarnContext(ctx, "seed standings unavailable, byes fall back to participation", "season", season, "error", err)
		return standings.Table{}, false
	}

	records := make(map[string]standings.TeamRecord, len(rows))
	for _, row := range rows {
		token := row.Name
		if token == "" {
			token = row.Team
		}
		team, ok := s.resolver.Resolve(token)
		if !ok {
			continue
		}
		records[team.Name] = standings.TeamRecord{
			Name:       team.Name,
			Seed:       row.Seed,
			Conference: team.Conference,
			Division:   team.Division,
		}
	}

	return standings.Table{Season: season, Records: records}, len(records) > 0
}

func (s *PlayoffService) aggregate(
	season int,
	roundGames map[schedule.Round][]ExternalGame,
	table standings.Table,
	haveStandings bool,
	source string,
	hasKey bool,
) playoffs.Summary {
	wins := make(map[string]playoffs.Tally)
	participants := make(map[schedule.Round]map[string]bool, len(roundGames))

	for _, round := range schedule.Rounds() {
		rows := roundGames[round]
		if len(rows) == 0 {
			continue
		}
		participants[round] = make(map[string]bool, len(rows)*2)

		for _, row := range rows {
			homeTeam, homeOK := s.resolver.Resolve(row.HomeTeam)
			awayTeam, awayOK := s.resolver.Resolve(row.AwayTeam)
			if homeOK {
				participants[round][homeTeam.Name] = true
			}
			if awayOK {
				participants[round][awayTeam.Name] = true
			}
			// Games with an unresolvable side cannot be tallied safely.
			if !homeOK || !awayOK {
				continue
			}

			completed := row.Completed
			winner := schedule.DetermineWinner(
				homeTeam.Name,
				awayTeam.Name,
				row.HomeScore,
				row.AwayScore,
				row.HasScores,
				s.resolver.DisplayName(row.Winner),
				completed,
			)
			if winner == "" {
				if forced, ok := s.overrides.ForcedWinner(round, homeTeam.Name, awayTeam.Name); ok {
					winner = forced
					completed = true
				}
			}
			if !completed || winner == "" {
				continue
			}

			winnerTeam, ok := s.resolver.Resolve(winner)
			if !ok {
				continue
			}
			tally := wins[winnerTeam.Name]
			tally.Add(round)
			wins[winnerTeam.Name] = tally
		}
	}

	s.overrides.Apply(wins)

	return playoffs.Summary{
		Season:         season,
		UpdatedAt:      s.now().UTC(),
		Source:         source,
		HasProviderKey: hasKey,
		Wins:           wins,
		Byes:           s.wildcardByes(table, haveStandings, participants),
	}
}

// wildcardByes flags top seeds that skipped the wild-card round. Without
// seed standings, divisional participants absent from the wild-card round
// stand in for the top seeds.
func (s *PlayoffService) wildcardByes(
	table standings.Table,
	haveStandings bool,
	participants map[schedule.Round]map[string]bool,
) map[string]bool {
	byes := make(map[string]bool)
	wildcard := participants[schedule.RoundWildCard]

	if haveStandings {
		for _, name := range table.TopSeeds() {
			if !wildcard[name] {
				byes[name] = true
			}
		}
		return byes
	}

	for name := range participants[schedule.RoundDivisional] {
		if !wildcard[name] {
			byes[name] = true
		}
	}
	return byes
}

func totalGames(roundGames map[schedule.Round][]ExternalGame) int {
	total := 0
	for _, rows := range roundGames {
		total += len(rows)
	}
	return total
}

func playoffsCacheKey(season int) string {
	return fmt.Sprintf("playoffs:%d", season)
}
