package espn

import (
	"context"
	"fmt"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
	"github.com/gridironhq/nfl-companion/internal/usecase"
)

// FetchGames walks the scoreboard endpoint variants until one answers with
// events. Postseason weeks are labeled with the following calendar year on
// some hosts, so both year candidates are tried, plus raw date-range queries
// for hosts that ignore week addressing entirely.
func (c *Client) FetchGames(ctx context.Context, season int, seasonType schedule.SeasonType, week int) ([]usecase.ExternalGame, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}
	if week <= 0 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	var lastErr error
	for _, variant := range c.scoreboardVariants(season, seasonType, week) {
		payload, err := c.doJSON(ctx, variant)
		if err != nil {
			lastErr = err
			continue
		}

		games := parseScoreboardEvents(extractEvents(payload))
		if len(games) > 0 {
			return games, nil
		}
		lastErr = fmt.Errorf("scoreboard payload had no events season=%d week=%d", season, week)
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

func (c *Client) scoreboardVariants(season int, seasonType schedule.SeasonType, week int) []string {
	out := make([]string, 0, 16)
	seen := make(map[string]bool, 16)
	push := func(variant string) {
		if !seen[variant] {
			seen[variant] = true
			out = append(out, variant)
		}
	}

	years := []int{season}
	if seasonType == schedule.SeasonTypePostseason {
		years = append(years, season+1)
	}

	for _, year := range years {
		push(fmt.Sprintf("%s/scoreboard?seasontype=%d&week=%d&dates=%d", c.siteAPIBaseURL, seasonType, week, year))
		push(fmt.Sprintf("%s/scoreboard?seasontype=%d&week=%d&season=%d", c.siteAPIBaseURL, seasonType, week, year))
		push(fmt.Sprintf("%s/scoreboard?xhr=1&seasontype=%d&week=%d&season=%d", c.cdnBaseURL, seasonType, week, year))
	}
	push(fmt.Sprintf("%s/scoreboard?seasontype=%d&week=%d", c.siteAPIBaseURL, seasonType, week))
	push(fmt.Sprintf("%s/scoreboard?xhr=1&seasontype=%d&week=%d", c.cdnBaseURL, seasonType, week))

	if seasonType == schedule.SeasonTypePostseason {
		dateRange := postseasonDateRange(season, week)
		push(fmt.Sprintf("%s/scoreboard?dates=%s&seasontype=%d", c.siteAPIBaseURL, dateRange, seasonType))
		push(fmt.Sprintf("%s/scoreboard?dates=%s", c.siteAPIBaseURL, dateRange))
	}

	return out
}

// postseasonDateRange covers each round's usual calendar slot with a
// 21-day window, wide enough to absorb schedule drift year to year.
func postseasonDateRange(season, week int) string {
	year := season + 1
	var anchor time.Time
	switch week {
	case 1:
		anchor = time.Date(year, time.January, 7, 0, 0, 0, 0, time.UTC)
	case 2:
		anchor = time.Date(year, time.January, 14, 0, 0, 0, 0, time.UTC)
	case 3:
		anchor = time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC)
	default:
		anchor = time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
	}

	start := anchor.AddDate(0, 0, -3)
	end := start.AddDate(0, 0, 21)
	return start.Format("20060102") + "-" + end.Format("20060102")
}

// extractEvents accepts the flat payload and the cdn content wrapper.
func extractEvents(payload map[string]any) []any {
	if events := getSlice(payload, "events"); len(events) > 0 {
		return events
	}
	content := getMap(payload, "content")
	if content == nil {
		return nil
	}
	if events := getSlice(content, "events"); len(events) > 0 {
		return events
	}
	return getSlice(getMap(content, "sbData"), "events")
}

func parseScoreboardEvents(events []any) []usecase.ExternalGame {
	out := make([]usecase.ExternalGame, 0, len(events))
	for _, rawEvent := range events {
		event, ok := rawEvent.(map[string]any)
		if !ok {
			continue
		}

		item := usecase.ExternalGame{
			ID:   getString(event, "id"),
			Date: parseEventDate(getString(event, "date")),
		}

		competition := firstCompetition(event)
		if competition == nil {
			continue
		}
		item.RoundLabel = eventRoundLabel(event, competition)
		item.Completed = isEventCompleted(event, competition)

		for _, rawCompetitor := range getSlice(competition, "competitors") {
			competitor, ok := rawCompetitor.(map[string]any)
			if !ok {
				continue
			}
			team := getMap(competitor, "team")
			name := firstNonEmpty(
				getString(team, "displayName"),
				getString(team, "name"),
				getString(team, "shortDisplayName"),
			)
			if name == "" {
				continue
			}

			score, hasScore := competitorScore(competitor)
			switch getString(competitor, "homeAway") {
			case "home":
				item.HomeTeam = name
				if hasScore {
					item.HomeScore = score
					item.HasScores = true
				}
			case "away":
				item.AwayTeam = name
				if hasScore {
					item.AwayScore = score
					item.HasScores = true
				}
			}
			if getBool(competitor, "winner") {
				item.Winner = name
			}
		}

		if item.HomeTeam == "" || item.AwayTeam == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func firstCompetition(event map[string]any) map[string]any {
	competitions := getSlice(event, "competitions")
	if len(competitions) == 0 {
		return nil
	}
	competition, ok := competitions[0].(map[string]any)
	if !ok {
		return nil
	}
	return competition
}

func eventRoundLabel(event, competition map[string]any) string {
	for _, rawNote := range getSlice(competition, "notes") {
		note, ok := rawNote.(map[string]any)
		if !ok {
			continue
		}
		if headline := getString(note, "headline"); headline != "" {
			return headline
		}
	}
	return getString(event, "name")
}

func isEventCompleted(event, competition map[string]any) bool {
	for _, node := range []map[string]any{competition, event} {
		status := getMap(node, "status")
		if status == nil {
			continue
		}
		if getBool(getMap(status, "type"), "completed") {
			return true
		}
	}
	return false
}

func competitorScore(competitor map[string]any) (int, bool) {
	raw, ok := competitor["score"]
	if !ok || raw == nil {
		return 0, false
	}
	if nested, isMap := raw.(map[string]any); isMap {
		if value, exists := nested["value"]; exists && value != nil {
			return asInt(value), true
		}
		return 0, false
	}
	return asInt(raw), true
}

func parseEventDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339, "2006-01-02T15:04:05Z07:00"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
