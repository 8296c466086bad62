package schedule

import (
	"testing"
	"time"
)

func TestDetermineWinner(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		home      string
		away      string
		homeScore int
		awayScore int
		hasScores bool
		explicit  string
		completed bool
		want      string
	}{
		{
			name:      "incomplete game has no winner even with scores",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			homeScore: 21,
			awayScore: 14,
			hasScores: true,
			completed: false,
			want:      "",
		},
		{
			name:      "explicit winner flag wins over scores",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			homeScore: 14,
			awayScore: 21,
			hasScores: true,
			explicit:  "Kansas City Chiefs",
			completed: true,
			want:      "Kansas City Chiefs",
		},
		{
			name:      "higher home score",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			homeScore: 27,
			awayScore: 24,
			hasScores: true,
			completed: true,
			want:      "Kansas City Chiefs",
		},
		{
			name:      "higher away score",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			homeScore: 17,
			awayScore: 20,
			hasScores: true,
			completed: true,
			want:      "Buffalo Bills",
		},
		{
			name:      "tie stays undetermined",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			homeScore: 20,
			awayScore: 20,
			hasScores: true,
			completed: true,
			want:      "",
		},
		{
			name:      "completed without scores stays undetermined",
			home:      "Kansas City Chiefs",
			away:      "Buffalo Bills",
			hasScores: false,
			completed: true,
			want:      "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DetermineWinner(tc.home, tc.away, tc.homeScore, tc.awayScore, tc.hasScores, tc.explicit, tc.completed)
			if got != tc.want {
				t.Fatalf("DetermineWinner = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGame_Valid(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.January, 12, 18, 0, 0, 0, time.UTC)
	game := Game{ID: "401547", Date: date, HomeTeamName: "Detroit Lions", AwayTeamName: "Los Angeles Rams"}
	if !game.Valid() {
		t.Fatalf("expected complete game to be valid")
	}

	invalid := []Game{
		{Date: date, HomeTeamName: "Detroit Lions", AwayTeamName: "Los Angeles Rams"},
		{ID: "401547", HomeTeamName: "Detroit Lions", AwayTeamName: "Los Angeles Rams"},
		{ID: "401547", Date: date, AwayTeamName: "Los Angeles Rams"},
		{ID: "401547", Date: date, HomeTeamName: "Detroit Lions", AwayTeamName: "  "},
	}
	for i, g := range invalid {
		if g.Valid() {
			t.Fatalf("case %d: expected invalid game", i)
		}
	}
}
