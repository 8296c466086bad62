package sportsdataio

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestFetchGames_ParsesRows(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/scores/json/ScoresByWeek/2025POST/1") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"GameKey":"202510101","DateTimeUTC":"2026-01-11T18:00:00","HomeTeam":"HOU","AwayTeam":"CLE","HomeScore":31,"AwayScore":14,"IsOver":true},
			{"ScoreID":18845,"Date":"2026-01-11","HomeTeam":"BUF","AwayTeam":"PIT","HomeScore":null,"AwayScore":null,"Status":"Scheduled"},
			{"GameKey":"bad","HomeTeam":"","AwayTeam":"PIT"}
		]`))
	}, 0)

	rows, err := client.FetchGames(context.Background(), 2025, 3, 1)
	if err != nil {
		t.Fatalf("fetch games: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected row without teams dropped, got %d", len(rows))
	}

	final := rows[0]
	if final.ID != "202510101" {
		t.Fatalf("id = %q", final.ID)
	}
	if final.Date != time.Date(2026, time.January, 11, 18, 0, 0, 0, time.UTC) {
		t.Fatalf("date = %s", final.Date)
	}
	if !final.HasScores || final.HomeScore != 31 || final.AwayScore != 14 {
		t.Fatalf("scores = %+v", final)
	}
	if !final.Completed {
		t.Fatalf("expected IsOver to mark the game final")
	}

	scheduled := rows[1]
	if scheduled.ID != "18845" {
		t.Fatalf("expected numeric ScoreID as id, got %q", scheduled.ID)
	}
	if scheduled.HasScores {
		t.Fatalf("null scores must clear HasScores")
	}
	if scheduled.Completed {
		t.Fatalf("scheduled game must not be final")
	}
}

func TestFetchGames_InputValidation(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Key: "k"})
	if _, err := client.FetchGames(context.Background(), 0, 3, 1); err == nil {
		t.Fatalf("expected error for season 0")
	}
	if _, err := client.FetchGames(context.Background(), 2025, 3, 0); err == nil {
		t.Fatalf("expected error for week 0")
	}
}

func TestIsGameFinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		row  map[string]any
		want bool
	}{
		{map[string]any{"IsOver": true}, true},
		{map[string]any{"Status": "Final"}, true},
		{map[string]any{"Status": "F"}, true},
		{map[string]any{"Status": "Final/OT"}, true},
		{map[string]any{"Status": "InProgress"}, false},
		{map[string]any{}, false},
	}
	for i, tc := range cases {
		if got := isGameFinal(tc.row); got != tc.want {
			t.Fatalf("case %d: isGameFinal = %v, want %v", i, got, tc.want)
		}
	}
}

func TestGameDate_Layouts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		row  map[string]any
		want time.Time
	}{
		{
			map[string]any{"DateTimeUTC": "2026-01-11T18:00:00Z"},
			time.Date(2026, time.January, 11, 18, 0, 0, 0, time.UTC),
		},
		{
			map[string]any{"DateTime": "2026-01-11T13:00:00"},
			time.Date(2026, time.January, 11, 13, 0, 0, 0, time.UTC),
		},
		{
			map[string]any{"Day": "2026-01-11"},
			time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			map[string]any{"Date": "soon"},
			time.Time{},
		},
	}
	for i, tc := range cases {
		if got := gameDate(tc.row); !got.Equal(tc.want) {
			t.Fatalf("case %d: gameDate = %s, want %s", i, got, tc.want)
		}
	}
}
