package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/domain/scoring"
	"github.com/gridironhq/nfl-companion/internal/domain/standings"
)

// Leaderboard ranks the configured owners by total fantasy points for one
// season.
type Leaderboard struct {
	Season    int
	UpdatedAt time.Time
	Source    string
	Owners    []scoring.OwnerScore
}

// LeaderboardService joins standings and playoff results with the configured
// owner rosters. It owns no upstream access of its own.
type LeaderboardService struct {
	standingsService *StandingsService
	playoffService   *PlayoffService
	resolver         *nfl.Resolver
	owners           []nfl.Owner
	now              func() time.Time
}

func NewLeaderboardService(
	standingsService *StandingsService,
	playoffService *PlayoffService,
	resolver *nfl.Resolver,
	owners []nfl.Owner,
) *LeaderboardService {
	if resolver == nil {
		resolver = nfl.NewResolver()
	}

	return &LeaderboardService{
		standingsService: standingsService,
		playoffService:   playoffService,
		resolver:         resolver,
		owners:           owners,
		now:              time.Now,
	}
}

func (s *LeaderboardService) Get(ctx context.Context, season int) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	if len(s.owners) == 0 {
		return Leaderboard{}, fmt.Errorf("%w: no owners configured", ErrNotFound)
	}

	table, err := s.standingsService.Get(ctx, season)
	if err != nil {
		return Leaderboard{}, err
	}

	summary, err := s.playoffService.Get(ctx, table.Season, false)
	if err != nil {
		return Leaderboard{}, err
	}

	ownerScores := make([]scoring.OwnerScore, 0, len(s.owners))
	for _, owner := range s.owners {
		teams := make([]scoring.TeamScore, 0, len(owner.TeamIDs))
		for _, id := range owner.TeamIDs {
			team, ok := s.resolver.ByID(id)
			if !ok {
				continue
			}
			record, ok := table.Records[team.Name]
			if !ok {
				record = standings.TeamRecord{Name: team.Name}
			}
			teams = append(teams, scoring.TeamPoints(record, summary))
		}
		ownerScores = append(ownerScores, scoring.OwnerTotal(owner.Name, teams))
	}

	sort.SliceStable(ownerScores, func(i, j int) bool {
		if ownerScores[i].Total() != ownerScores[j].Total() {
			return ownerScores[i].Total() > ownerScores[j].Total()
		}
		return ownerScores[i].Name < ownerScores[j].Name
	})

	return Leaderboard{
		Season:    table.Season,
		UpdatedAt: s.now().UTC(),
		Source:    summary.Source,
		Owners:    ownerScores,
	}, nil
}
