package sportsdataio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
	"github.com/gridironhq/nfl-companion/internal/usecase"
)

// FetchGames pulls one week's scores. The path season segment is qualified
// with REG or POST, matching the provider's season value notation.
func (c *Client) FetchGames(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]usecase.ExternalGame, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}
	if week <= 0 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	path := fmt.Sprintf("/scores/json/ScoresByWeek/%s/%d", seasonValue(season, seasonType == schedule.SeasonTypePostseason), week)

	var rows []map[string]any
	if _, err := c.doJSON(ctx, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetch scores season=%d week=%d: %w", season, week, err)
	}

	return parseGameRows(rows), nil
}

func parseGameRows(rows []map[string]any) []usecase.ExternalGame {
	out := make([]usecase.ExternalGame, 0, len(rows))
	for _, row := range rows {
		item := usecase.ExternalGame{
			ID:       gameID(row),
			Date:     gameDate(row),
			HomeTeam: firstNonEmpty(getString(row, "HomeTeamName"), getString(row, "HomeTeam")),
			AwayTeam: firstNonEmpty(getString(row, "AwayTeamName"), getString(row, "AwayTeam")),
		}
		if item.HomeTeam == "" || item.AwayTeam == "" {
			continue
		}

		item.HomeScore, item.AwayScore, item.HasScores = gameScores(row)
		item.Completed = isGameFinal(row)
		out = append(out, item)
	}
	return out
}

func gameID(row map[string]any) string {
	for _, key := range []string{"GameKey", "ScoreID", "GameID"} {
		if value := getString(row, key); value != "" {
			return value
		}
		if value := getInt(row, key); value > 0 {
			return fmt.Sprintf("%d", value)
		}
	}
	return ""
}

func gameDate(row map[string]any) time.Time {
	for _, key := range []string{"DateTimeUTC", "DateTime", "Date", "Day"} {
		raw := getString(row, key)
		if raw == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}

func gameScores(row map[string]any) (int, int, bool) {
	homeRaw, homeOK := row["HomeScore"]
	awayRaw, awayOK := row["AwayScore"]
	if !homeOK || !awayOK || homeRaw == nil || awayRaw == nil {
		return 0, 0, false
	}
	return getInt(row, "HomeScore"), getInt(row, "AwayScore"), true
}

// isGameFinal accepts the boolean flag and the several textual spellings the
// provider has used for a finished game.
func isGameFinal(row map[string]any) bool {
	if getBool(row, "IsOver") {
		return true
	}

	status := strings.ToLower(getString(row, "Status"))
	switch {
	case status == "final", status == "f":
		return true
	case strings.Contains(status, "final"):
		return true
	default:
		return false
	}
}
