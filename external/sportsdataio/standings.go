package sportsdataio

import (
	"context"
	"fmt"

	"github.com/gridironhq/nfl-companion/internal/usecase"
)

// FetchStandings tries the bare season path first, then the regular-season
// qualified one. Some subscription tiers only answer one of the two.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]usecase.ExternalStanding, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	paths := []string{
		fmt.Sprintf("/scores/json/Standings/%d", season),
		fmt.Sprintf("/scores/json/Standings/%dREG", season),
	}

	var lastErr error
	for _, path := range paths {
		var rows []map[string]any
		if _, err := c.doJSON(ctx, path, nil, &rows); err != nil {
			lastErr = fmt.Errorf("fetch standings season=%d: %w", season, err)
			continue
		}

		out := parseStandingRows(rows)
		if len(out) > 0 {
			return out, nil
		}
		lastErr = fmt.Errorf("standings payload had no usable rows season=%d", season)
	}

	return nil, lastErr
}

func parseStandingRows(rows []map[string]any) []usecase.ExternalStanding {
	out := make([]usecase.ExternalStanding, 0, len(rows))
	for _, row := range rows {
		item := usecase.ExternalStanding{
			Team:       firstNonEmpty(getString(row, "Team"), getString(row, "Abbreviation")),
			Name:       standingFullName(row),
			Wins:       getIntAny(row, "Wins", "W"),
			Losses:     getIntAny(row, "Losses", "L"),
			Ties:       getIntAny(row, "Ties", "T"),
			Seed:       standingSeed(row),
			Conference: getString(row, "Conference"),
			Division:   getString(row, "Division"),
		}
		if item.Team == "" && item.Name == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func standingFullName(row map[string]any) string {
	if name := firstNonEmpty(getString(row, "FullName"), getString(row, "TeamName")); name != "" {
		return name
	}

	city := getString(row, "City")
	nickname := getString(row, "Name")
	if city != "" && nickname != "" {
		return city + " " + nickname
	}
	return nickname
}

// standingSeed prefers an explicit conference rank of one, then falls back
// through the provider's several seed spellings. Values arrive as numbers or
// as text like "#1", so digits are extracted rather than parsed strictly.
func standingSeed(row map[string]any) int {
	if getInt(row, "ConferenceRank") == 1 {
		return 1
	}

	for _, key := range []string{"PlayoffSeed", "Seed", "ConferenceSeed", "PlayoffRank"} {
		if value := getInt(row, key); value > 0 {
			return value
		}
		if value := parseDigits(getString(row, key)); value > 0 {
			return value
		}
	}
	return 0
}

func seasonValue(season int, postseason bool) string {
	if postseason {
		return fmt.Sprintf("%dPOST", season)
	}
	return fmt.Sprintf("%dREG", season)
}
