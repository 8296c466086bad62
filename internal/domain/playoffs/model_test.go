package playoffs

import (
	"testing"

	"github.com/gridironhq/nfl-companion/internal/domain/schedule"
)

func TestTally_AddAndCount(t *testing.T) {
	t.Parallel()

	var tally Tally
	tally.Add(schedule.RoundWildCard)
	tally.Add(schedule.RoundSuperBowl)

	if got := tally.Count(schedule.RoundWildCard); got != 1 {
		t.Fatalf("wild card count = %d", got)
	}
	if got := tally.Count(schedule.RoundDivisional); got != 0 {
		t.Fatalf("divisional count = %d", got)
	}
	if got := tally.Count(schedule.RoundSuperBowl); got != 1 {
		t.Fatalf("super bowl count = %d", got)
	}
	if got := tally.Count(schedule.RoundNone); got != 0 {
		t.Fatalf("round-none count = %d", got)
	}
}

func TestTally_Valid(t *testing.T) {
	t.Parallel()

	ok := Tally{WildCard: 1, Divisional: 1, Conference: 0, SuperBowl: 1}
	if !ok.Valid() {
		t.Fatalf("expected tally to be valid")
	}

	doubled := Tally{Conference: 2}
	if doubled.Valid() {
		t.Fatalf("expected double-counted round to be invalid")
	}
	negative := Tally{WildCard: -1}
	if negative.Valid() {
		t.Fatalf("expected negative count to be invalid")
	}
}

func TestTally_Points(t *testing.T) {
	t.Parallel()

	full := Tally{WildCard: 1, Divisional: 1, Conference: 1, SuperBowl: 1}
	if got := full.Points(); got != 12.5 {
		t.Fatalf("full run points = %v, want 12.5", got)
	}

	byeRun := Tally{Divisional: 1, Conference: 1, SuperBowl: 1}
	if got := byeRun.Points() + ByePoints; got != 12.5 {
		t.Fatalf("bye run plus bonus = %v, want 12.5", got)
	}
}

func TestSummary_Valid(t *testing.T) {
	t.Parallel()

	summary := Summary{
		Wins: map[string]Tally{
			"Kansas City Chiefs":  {Divisional: 1, Conference: 1, SuperBowl: 1},
			"Philadelphia Eagles": {WildCard: 1},
		},
	}
	if !summary.Valid() {
		t.Fatalf("expected summary to be valid")
	}

	summary.Wins["Philadelphia Eagles"] = Tally{WildCard: 2}
	if summary.Valid() {
		t.Fatalf("expected summary with double-counted round to be invalid")
	}
}
