package standings

import "time"

// TeamRecord is a team's season record keyed by canonical display name.
type TeamRecord struct {
	Name         string
	Abbreviation string
	Wins         int
	Losses       int
	Ties         int
	Seed         int
	Division     string
	Conference   string
}

func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// RegularSeasonPoints is wins plus half a point per tie.
func (r TeamRecord) RegularSeasonPoints() float64 {
	return float64(r.Wins) + 0.5*float64(r.Ties)
}

type Table struct {
	Season    int
	UpdatedAt time.Time
	Records   map[string]TeamRecord
}

// TopSeeds returns the display names of the seed-1 teams per conference.
func (t Table) TopSeeds() []string {
	out := make([]string, 0, 2)
	for _, conference := range []string{"AFC", "NFC"} {
		for _, record := range t.Records {
			if record.Conference == conference && record.Seed == 1 {
				out = append(out, record.Name)
				break
			}
		}
	}
	return out
}
