package httpapi

import (
	"github.com/gridironhq/nfl-companion/internal/domain/playoffs"
	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
	"github.com/gridironhq/nfl-companion/internal/domain/standings"
	"github.com/gridironhq/nfl-companion/internal/usecase"
)

type standingsDTO struct {
	Season    int                         `json:"season"`
	UpdatedAt string                      `json:"updatedAt"`
	Teams     map[string]standingsTeamDTO `json:"teams"`
}

type standingsTeamDTO struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Ties         int    `json:"ties"`
	Seed         int    `json:"seed"`
	Division     string `json:"division"`
	Conference   string `json:"conference"`
}

func standingsToDTO(table standings.Table) standingsDTO {
	teams := make(map[string]standingsTeamDTO, len(table.Records))
	for name, record := range table.Records {
		teams[name] = standingsTeamDTO{
			Name:         record.Name,
			Abbreviation: record.Abbreviation,
			Wins:         record.Wins,
			Losses:       record.Losses,
			Ties:         record.Ties,
			Seed:         record.Seed,
			Division:     record.Division,
			Conference:   record.Conference,
		}
	}
	return standingsDTO{
		Season:    table.Season,
		UpdatedAt: formatTimestamp(table.UpdatedAt),
		Teams:     teams,
	}
}

type scheduleDTO struct {
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	WeekLabel  string    `json:"weekLabel"`
	SeasonType int       `json:"seasonType"`
	Games      []gameDTO `json:"games"`
}

type gameDTO struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	HomeTeamName  string  `json:"homeTeamName"`
	AwayTeamName  string  `json:"awayTeamName"`
	PointsAtStake float64 `json:"pointsAtStake"`
	Completed     bool    `json:"completed"`
	WinnerName    *string `json:"winnerName"`
}

func scheduleToDTO(result usecase.ScheduleResult) scheduleDTO {
	games := make([]gameDTO, 0, len(result.Games))
	for _, game := range result.Games {
		item := gameDTO{
			ID:            game.ID,
			Date:          formatTimestamp(game.Date),
			HomeTeamName:  game.HomeTeamName,
			AwayTeamName:  game.AwayTeamName,
			PointsAtStake: game.PointsAtStake,
			Completed:     game.Completed,
		}
		if game.WinnerName != "" {
			winner := game.WinnerName
			item.WinnerName = &winner
		}
		games = append(games, item)
	}
	return scheduleDTO{
		Season:     result.Season,
		Week:       result.Week,
		WeekLabel:  result.WeekLabel,
		SeasonType: int(result.SeasonType),
		Games:      games,
	}
}

type playoffsDTO struct {
	Season           int                     `json:"season"`
	UpdatedAt        string                  `json:"updatedAt"`
	Source           string                  `json:"source"`
	HasSportsDataKey bool                    `json:"hasSportsDataKey"`
	Rounds           []roundDTO              `json:"rounds"`
	PlayoffWins      map[string]roundWinsDTO `json:"playoffWins"`
	WildcardByes     map[string]bool         `json:"wildcardByes"`
}

type roundDTO struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Week   int     `json:"week"`
	Points float64 `json:"points"`
}

type roundWinsDTO struct {
	WildCard   int `json:"wildCard"`
	Divisional int `json:"divisional"`
	Conference int `json:"conference"`
	SuperBowl  int `json:"superBowl"`
}

func playoffsToDTO(summary playoffs.Summary) playoffsDTO {
	rounds := make([]roundDTO, 0, len(schedule.Rounds()))
	for _, round := range schedule.Rounds() {
		rounds = append(rounds, roundDTO{
			Name:   round.Key(),
			Label:  round.Label(),
			Week:   round.Week(),
			Points: round.Points(),
		})
	}

	wins := make(map[string]roundWinsDTO, len(summary.Wins))
	for name, tally := range summary.Wins {
		wins[name] = roundWinsDTO{
			WildCard:   tally.WildCard,
			Divisional: tally.Divisional,
			Conference: tally.Conference,
			SuperBowl:  tally.SuperBowl,
		}
	}

	byes := make(map[string]bool, len(summary.Byes))
	for name, flagged := range summary.Byes {
		if flagged {
			byes[name] = true
		}
	}

	return playoffsDTO{
		Season:           summary.Season,
		UpdatedAt:        formatTimestamp(summary.UpdatedAt),
		Source:           summary.Source,
		HasSportsDataKey: summary.HasProviderKey,
		Rounds:           rounds,
		PlayoffWins:      wins,
		WildcardByes:     byes,
	}
}

type leaderboardDTO struct {
	Season    int        `json:"season"`
	UpdatedAt string     `json:"updatedAt"`
	Source    string     `json:"source"`
	Owners    []ownerDTO `json:"owners"`
}

type ownerDTO struct {
	Name          string         `json:"name"`
	RegularPoints float64        `json:"regularPoints"`
	PlayoffPoints float64        `json:"playoffPoints"`
	TotalPoints   float64        `json:"totalPoints"`
	Teams         []teamScoreDTO `json:"teams"`
}

type teamScoreDTO struct {
	Name          string  `json:"name"`
	RegularPoints float64 `json:"regularPoints"`
	PlayoffPoints float64 `json:"playoffPoints"`
	TotalPoints   float64 `json:"totalPoints"`
}

func leaderboardToDTO(board usecase.Leaderboard) leaderboardDTO {
	owners := make([]ownerDTO, 0, len(board.Owners))
	for _, owner := range board.Owners {
		teams := make([]teamScoreDTO, 0, len(owner.Teams))
		for _, team := range owner.Teams {
			teams = append(teams, teamScoreDTO{
				Name:          team.Name,
				RegularPoints: team.RegularPoints,
				PlayoffPoints: team.PlayoffPoints,
				TotalPoints:   team.Total(),
			})
		}
		owners = append(owners, ownerDTO{
			Name:          owner.Name,
			RegularPoints: owner.RegularPoints,
			PlayoffPoints: owner.PlayoffPoints,
			TotalPoints:   owner.Total(),
			Teams:         teams,
		})
	}
	return leaderboardDTO{
		Season:    board.Season,
		UpdatedAt: formatTimestamp(board.UpdatedAt),
		Source:    board.Source,
		Owners:    owners,
	}
}
