package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/domain/standings"
	"github.com/gridironhq/nfl-companion/internal/platform/cache"
)

// StandingsService resolves a season's standings through the provider chain
// and normalizes team identity onto the franchise registry.
type StandingsService struct {
	primary      StandingsSource
	fallback     StandingsSource
	resolver     *nfl.Resolver
	store        *cache.Store
	cacheEnabled bool
	seasonCutoff time.Month
	now          func() time.Time
	logger       *slog.Logger
}

func NewStandingsService(
	primary StandingsSource,
	fallback StandingsSource,
	resolver *nfl.Resolver,
	store *cache.Store,
	cacheEnabled bool,
	seasonCutoff time.Month,
	logger *slog.Logger,
) *StandingsService {
	if resolver == nil {
		resolver = nfl.NewResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StandingsService{
		primary:      primary,
		fallback:     fallback,
		resolver:     resolver,
		store:        store,
		cacheEnabled: cacheEnabled,
		seasonCutoff: seasonCutoff,
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock overrides the time source. Tests only.
func (s *StandingsService) WithClock(now func() time.Time) *StandingsService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *StandingsService) Get(ctx context.Context, season int) (standings.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Get")
	defer span.End()

	if season < 0 || season > 9999 {
		return standings.Table{}, fmt.Errorf("%w: season %d is out of range", ErrInvalidInput, season)
	}
	if season == 0 {
		season = DefaultSeason(s.now(), s.seasonCutoff)
	}

	if !s.cacheEnabled || s.store == nil {
		return s.load(ctx, season)
	}

	value, err := s.store.GetOrLoad(ctx, standingsCacheKey(season), func(ctx context.Context) (any, error) {
		return s.load(ctx, season)
	})
	if err != nil {
		return standings.Table{}, err
	}

	table, ok := value.(standings.Table)
	if !ok {
		return standings.Table{}, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return table, nil
}

func (s *StandingsService) load(ctx context.Context, season int) (standings.Table, error) {
	rows, err := s.fetchRows(ctx, season)
	if err != nil {
		return standings.Table{}, err
	}

	return standings.Table{
		Season:    season,
		UpdatedAt: s.now().UTC(),
		Records:   s.normalizeRows(rows),
	}, nil
}

func (s *StandingsService) fetchRows(ctx context.Context, season int) ([]ExternalStanding, error) {
	if s.primary != nil {
		rows, err := s.primary.FetchStandings(ctx, season)
		if err == nil && len(rows) > 0 {
			return rows, nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "primary standings fetch failed, trying fallback", "season", season, "error", err)
		} else {
			s.logger.WarnContext(ctx, "primary standings returned no rows, trying fallback", "season", season)
		}
	}

	if s.fallback == nil {
		return nil, fmt.Errorf("%w: no standings source configured", ErrUpstreamUnavailable)
	}
	rows, err := s.fallback.FetchStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch standings season=%d: %v", ErrUpstreamUnavailable, season, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no standings rows for season=%d", ErrUpstreamUnavailable, season)
	}
	return rows, nil
}

// normalizeRows keys records by canonical display name. Unresolvable tokens
// are passed through under their raw name rather than dropped so partial
// provider data still renders.
func (s *StandingsService) normalizeRows(rows []ExternalStanding) map[string]standings.TeamRecord {
	out := make(map[string]standings.TeamRecord, len(rows))
	for _, row := range rows {
		token := row.Name
		if token == "" {
			token = row.Team
		}

		record := standings.TeamRecord{
			Name:       token,
			Wins:       row.Wins,
			Losses:     row.Losses,
			Ties:       row.Ties,
			Seed:       row.Seed,
			Conference: row.Conference,
			Division:   row.Division,
		}
		if team, ok := s.resolver.Resolve(token); ok {
			record.Name = team.Name
			record.Abbreviation = team.Abbreviation
			if record.Conference == "" {
				record.Conference = team.Conference
			}
			if record.Division == "" {
				record.Division = team.Division
			}
		}
		if record.Name == "" {
			continue
		}
		out[record.Name] = record
	}
	return out
}

func standingsCacheKey(season int) string {
	return fmt.Sprintf("standings:%d", season)
}
