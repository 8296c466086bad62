package espn

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

const fullStandingsPayload = `{
	"children": [
		{
			"abbreviation": "AFC",
			"standings": {
				"entries": [
					{
						"team": {"abbreviation": "KC", "displayName": "Kansas City Chiefs"},
						"stats": [
							{"name": "wins", "value": 14},
							{"name": "losses", "value": 3},
							{"name": "ties", "value": 0},
							{"name": "playoffSeed", "value": 1}
						]
					}
				]
			}
		},
		{
			"abbreviation": "NFC",
			"standings": {
				"entries": [
					{
						"team": {"abbreviation": "SEA", "displayName": "Seattle Seahawks"},
						"stats": [
							{"type": "wins", "value": "12"},
							{"type": "losses", "value": "5"},
							{"type": "seed", "value": "2"}
						]
					}
				]
			}
		}
	]
}`

func TestFetchStandings_ParsesGroupedPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fullStandingsPayload))
	}, 0)

	rows, err := client.FetchStandings(context.Background(), 2025)
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	chiefs := rows[0]
	if chiefs.Team != "KC" || chiefs.Name != "Kansas City Chiefs" || chiefs.Conference != "AFC" {
		t.Fatalf("unexpected chiefs row: %+v", chiefs)
	}
	if chiefs.Wins != 14 || chiefs.Seed != 1 {
		t.Fatalf("unexpected chiefs stats: %+v", chiefs)
	}

	seahawks := rows[1]
	if seahawks.Conference != "NFC" || seahawks.Wins != 12 || seahawks.Seed != 2 {
		t.Fatalf("expected string stat values parsed: %+v", seahawks)
	}
}

func TestFetchStandings_RejectsLitePayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The first host answers with the navigation shell; the second
		// carries real rows.
		if strings.HasPrefix(r.URL.Path, "/site") {
			w.Write([]byte(`{"fullViewLink":{"text":"Full Standings","href":"https://www.espn.com/nfl/standings"}}`))
			return
		}
		w.Write([]byte(fullStandingsPayload))
	}, 0)

	rows, err := client.FetchStandings(context.Background(), 2025)
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected fallback variant rows, got %d", len(rows))
	}
}

func TestFetchStandings_AllVariantsLite(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fullViewLink":{"href":"https://www.espn.com/nfl/standings"}}`))
	}, 0)

	if _, err := client.FetchStandings(context.Background(), 2025); err == nil {
		t.Fatalf("expected error when every variant is a lite shell")
	}
}

func TestFetchStandings_CDNContentWrapper(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/cdn") {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`{"content":` + fullStandingsPayload + `}`))
	}, 0)

	rows, err := client.FetchStandings(context.Background(), 2025)
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected rows from cdn wrapper, got %d", len(rows))
	}
}

func TestIsLiteStandingsPayload(t *testing.T) {
	t.Parallel()

	lite := map[string]any{"fullViewLink": map[string]any{"href": "x"}}
	if !isLiteStandingsPayload(lite) {
		t.Fatalf("expected lite payload detection")
	}

	full := map[string]any{
		"fullViewLink": map[string]any{"href": "x"},
		"children":     []any{},
	}
	if isLiteStandingsPayload(full) {
		t.Fatalf("payload with a row container is not lite")
	}

	if isLiteStandingsPayload(map[string]any{"children": []any{}}) {
		t.Fatalf("payload without fullViewLink is not lite")
	}
	if !isLiteStandingsPayload(nil) {
		t.Fatalf("nil payload counts as lite")
	}
}

func TestExtractStandings_LeaguesContainer(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"leagues": []any{
			map[string]any{
				"children": []any{
					map[string]any{
						"name": "National Football Conference",
						"standings": map[string]any{
							"entries": []any{
								map[string]any{
									"team": map[string]any{"abbreviation": "DET", "displayName": "Detroit Lions"},
									"stats": []any{
										map[string]any{"name": "wins", "value": float64(12)},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	rows := extractStandings(payload)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Name != "Detroit Lions" || rows[0].Conference != "National Football Conference" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestExtractStandings_TopLevelEntries(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"entries": []any{
			map[string]any{
				"team": map[string]any{"abbreviation": "GB", "displayName": "Green Bay Packers"},
				"stats": []any{
					map[string]any{"name": "wins", "value": float64(11)},
				},
			},
		},
	}

	rows := extractStandings(payload)
	if len(rows) != 1 || rows[0].Team != "GB" {
		t.Fatalf("expected top-level entries fallback, got %+v", rows)
	}
}
