package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/gridironhq/nfl-companion/external/espn"
	"github.com/gridironhq/nfl-companion/external/sportsdataio"
	"github.com/gridironhq/nfl-companion/internal/config"
	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/domain/playoffs"
	"github.com/gridironhq/nfl-companion/internal/interfaces/httpapi"
	"github.com/gridironhq/nfl-companion/internal/platform/cache"
	"github.com/gridironhq/nfl-companion/internal/platform/logging"
	"github.com/gridironhq/nfl-companion/internal/platform/resilience"
	"github.com/gridironhq/nfl-companion/internal/usecase"
)

const warmupTimeout = 45 * time.Second

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	clientLogger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(clientLogger)

	resolver := nfl.NewResolver()

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	espnClient := espn.NewClient(espn.ClientConfig{
		SiteAPIBaseURL: cfg.ESPNSiteAPIBaseURL,
		WebAPIBaseURL:  cfg.ESPNWebAPIBaseURL,
		CDNBaseURL:     cfg.ESPNCDNBaseURL,
		Timeout:        cfg.ESPNTimeout,
		MaxRetries:     cfg.ESPNMaxRetries,
		Logger:         clientLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	var primaryStandings usecase.StandingsSource
	var primaryScoreboard usecase.ScoreboardSource
	var primaryPair *usecase.SourcePair
	if cfg.HasSportsDataKey() {
		sportsDataClient := sportsdataio.NewClient(sportsdataio.ClientConfig{
			BaseURL:    cfg.SportsDataBaseURL,
			Key:        cfg.SportsDataAPIKey,
			Timeout:    cfg.SportsDataTimeout,
			MaxRetries: cfg.SportsDataMaxRetries,
			Logger:     clientLogger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SportsDataCircuitEnabled,
				FailureThreshold: cfg.SportsDataCircuitFailureCount,
				OpenTimeout:      cfg.SportsDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SportsDataCircuitHalfOpenMaxReq,
			},
		})
		primaryStandings = sportsDataClient
		primaryScoreboard = sportsDataClient
		primaryPair = &usecase.SourcePair{Standings: sportsDataClient, Scoreboard: sportsDataClient}
	} else {
		logger.Info("sportsdata provider disabled, serving from public fallback only")
	}

	overrides := playoffs.DefaultOverrides()
	if len(cfg.PlayoffOverrideTeams) > 0 {
		overrides = playoffs.ParseOverrides(cfg.PlayoffOverrideTeams)
	}

	standingsSvc := usecase.NewStandingsService(
		primaryStandings,
		espnClient,
		resolver,
		store,
		cfg.CacheEnabled,
		cfg.SeasonCutoffMonth,
		logger,
	)
	scheduleSvc := usecase.NewScheduleService(
		primaryScoreboard,
		espnClient,
		resolver,
		overrides,
		store,
		cfg.CacheEnabled,
		cfg.SeasonCutoffMonth,
		logger,
	)
	playoffSvc := usecase.NewPlayoffService(
		primaryPair,
		usecase.SourcePair{Standings: espnClient, Scoreboard: espnClient},
		resolver,
		overrides,
		store,
		cfg.CacheEnabled,
		cfg.SeasonCutoffMonth,
		logger,
	)
	leaderboardSvc := usecase.NewLeaderboardService(standingsSvc, playoffSvc, resolver, cfg.Owners)

	handler := httpapi.NewHandler(standingsSvc, scheduleSvc, playoffSvc, leaderboardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if cfg.CacheEnabled {
		go warmCaches(standingsSvc, playoffSvc, logger)
	}

	return server, nil
}

// warmCaches primes the standings and playoffs entries for the default
// season so the first real request does not pay both upstream round trips.
func warmCaches(standingsSvc *usecase.StandingsService, playoffSvc *usecase.PlayoffService, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	var wg conc.WaitGroup
	wg.Go(func() {
		if _, err := standingsSvc.Get(ctx, 0); err != nil {
			logger.WarnContext(ctx, "standings cache warmup failed", "error", err)
		}
	})
	wg.Go(func() {
		if _, err := playoffSvc.Get(ctx, 0, false); err != nil {
			logger.WarnContext(ctx, "playoffs cache warmup failed", "error", err)
		}
	})
	wg.Wait()
}
