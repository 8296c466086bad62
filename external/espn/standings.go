package espn

import (
	"context"
	"fmt"

	"github.com/gridironhq/nfl-companion/internal/usecase"
)

// FetchStandings walks three endpoint variants until one answers with a full
// payload. The hosts disagree on shape, so rows are pulled out of whatever
// container the payload actually carries.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]usecase.ExternalStanding, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	variants := []string{
		fmt.Sprintf("%s/standings?season=%d", c.siteAPIBaseURL, season),
		fmt.Sprintf("%s/standings?season=%d&region=us&lang=en&contentorigin=espn&type=0&level=1", c.webAPIBaseURL, season),
		fmt.Sprintf("%s/standings?xhr=1&season=%d", c.cdnBaseURL, season),
	}

	var lastErr error
	for _, variant := range variants {
		payload, err := c.doJSON(ctx, variant)
		if err != nil {
			lastErr = err
			continue
		}
		if content := getMap(payload, "content"); content != nil {
			payload = content
		}
		if isLiteStandingsPayload(payload) {
			lastErr = fmt.Errorf("standings payload is a lite shell season=%d", season)
			continue
		}

		rows := extractStandings(payload)
		if len(rows) > 0 {
			return rows, nil
		}
		lastErr = fmt.Errorf("standings payload had no usable rows season=%d", season)
	}

	return nil, lastErr
}

// isLiteStandingsPayload detects the navigation shell some hosts answer with
// instead of data: it links to the full view and carries no row container.
func isLiteStandingsPayload(payload map[string]any) bool {
	if payload == nil {
		return true
	}
	if _, ok := payload["fullViewLink"]; !ok {
		return false
	}
	for _, key := range []string{"children", "standings", "leagues", "entries"} {
		if _, ok := payload[key]; ok {
			return false
		}
	}
	return true
}

func extractStandings(payload map[string]any) []usecase.ExternalStanding {
	out := make([]usecase.ExternalStanding, 0, 32)

	appendGroup := func(group map[string]any, conference string) {
		standingsNode := getMap(group, "standings")
		if standingsNode == nil {
			standingsNode = group
		}
		for _, rawEntry := range getSlice(standingsNode, "entries") {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				continue
			}
			if row, ok := parseStandingEntry(entry, conference); ok {
				out = append(out, row)
			}
		}
	}

	groups := getSlice(payload, "children")
	if len(groups) == 0 {
		for _, rawLeague := range getSlice(payload, "leagues") {
			league, ok := rawLeague.(map[string]any)
			if !ok {
				continue
			}
			groups = append(groups, getSlice(league, "children")...)
		}
	}

	for _, rawGroup := range groups {
		group, ok := rawGroup.(map[string]any)
		if !ok {
			continue
		}
		conference := firstNonEmpty(getString(group, "abbreviation"), getString(group, "name"))
		appendGroup(group, conference)
	}

	if len(out) == 0 {
		appendGroup(payload, "")
	}

	return out
}

func parseStandingEntry(entry map[string]any, conference string) (usecase.ExternalStanding, bool) {
	team := getMap(entry, "team")
	row := usecase.ExternalStanding{
		Team: getString(team, "abbreviation"),
		Name: firstNonEmpty(
			getString(team, "displayName"),
			getString(team, "name"),
			getString(team, "shortDisplayName"),
		),
		Conference: conference,
	}
	if row.Team == "" && row.Name == "" {
		return usecase.ExternalStanding{}, false
	}

	for _, rawStat := range getSlice(entry, "stats") {
		stat, ok := rawStat.(map[string]any)
		if !ok {
			continue
		}
		value := asInt(stat["value"])
		switch firstNonEmpty(getString(stat, "name"), getString(stat, "type")) {
		case "wins":
			row.Wins = value
		case "losses":
			row.Losses = value
		case "ties":
			row.Ties = value
		case "playoffSeed", "seed":
			row.Seed = value
		}
	}

	return row, true
}
