package nfl

const (
	ConferenceAFC = "AFC"
	ConferenceNFC = "NFC"
)

// Team is one of the 32 NFL franchises. The registry below is the single
// source of identity: every provider token must resolve into one of these.
type Team struct {
	ID           string
	Name         string
	City         string
	Nickname     string
	Abbreviation string
	Conference   string
	Division     string
	PrimaryColor string
}

// Teams returns the full franchise registry in conference/division order.
func Teams() []Team {
	return []Team{
		{ID: "bills", Name: "Buffalo Bills", City: "Buffalo", Nickname: "Bills", Abbreviation: "BUF", Conference: ConferenceAFC, Division: "East", PrimaryColor: "#00338D"},
		{ID: "dolphins", Name: "Miami Dolphins", City: "Miami", Nickname: "Dolphins", Abbreviation: "MIA", Conference: ConferenceAFC, Division: "East", PrimaryColor: "#008E97"},
		{ID: "patriots", Name: "New England Patriots", City: "New England", Nickname: "Patriots", Abbreviation: "NE", Conference: ConferenceAFC, Division: "East", PrimaryColor: "#002244"},
		{ID: "jets", Name: "New York Jets", City: "New York", Nickname: "Jets", Abbreviation: "NYJ", Conference: ConferenceAFC, Division: "East", PrimaryColor: "#125740"},
		{ID: "ravens", Name: "Baltimore Ravens", City: "Baltimore", Nickname: "Ravens", Abbreviation: "BAL", Conference: ConferenceAFC, Division: "North", PrimaryColor: "#241773"},
		{ID: "bengals", Name: "Cincinnati Bengals", City: "Cincinnati", Nickname: "Bengals", Abbreviation: "CIN", Conference: ConferenceAFC, Division: "North", PrimaryColor: "#FB4F14"},
		{ID: "browns", Name: "Cleveland Browns", City: "Cleveland", Nickname: "Browns", Abbreviation: "CLE", Conference: ConferenceAFC, Division: "North", PrimaryColor: "#311D00"},
		{ID: "steelers", Name: "Pittsburgh Steelers", City: "Pittsburgh", Nickname: "Steelers", Abbreviation: "PIT", Conference: ConferenceAFC, Division: "North", PrimaryColor: "#FFB612"},
		{ID: "texans", Name: "Houston Texans", City: "Houston", Nickname: "Texans", Abbreviation: "HOU", Conference: ConferenceAFC, Division: "South", PrimaryColor: "#03202F"},
		{ID: "colts", Name: "Indianapolis Colts", City: "Indianapolis", Nickname: "Colts", Abbreviation: "IND", Conference: ConferenceAFC, Division: "South", PrimaryColor: "#002C5F"},
		{ID: "jaguars", Name: "Jacksonville Jaguars", City: "Jacksonville", Nickname: "Jaguars", Abbreviation: "JAX", Conference: ConferenceAFC, Division: "South", PrimaryColor: "#006778"},
		{ID: "titans", Name: "Tennessee Titans", City: "Tennessee", Nickname: "Titans", Abbreviation: "TEN", Conference: ConferenceAFC, Division: "South", PrimaryColor: "#0C2340"},
		{ID: "broncos", Name: "Denver Broncos", City: "Denver", Nickname: "Broncos", Abbreviation: "DEN", Conference: ConferenceAFC, Division: "West", PrimaryColor: "#FB4F14"},
		{ID: "chiefs", Name: "Kansas City Chiefs", City: "Kansas City", Nickname: "Chiefs", Abbreviation: "KC", Conference: ConferenceAFC, Division: "West", PrimaryColor: "#E31837"},
		{ID: "raiders", Name: "Las Vegas Raiders", City: "Las Vegas", Nickname: "Raiders", Abbreviation: "LV", Conference: ConferenceAFC, Division: "West", PrimaryColor: "#000000"},
		{ID: "chargers", Name: "Los Angeles Chargers", City: "Los Angeles", Nickname: "Chargers", Abbreviation: "LAC", Conference: ConferenceAFC, Division: "West", PrimaryColor: "#0080C6"},
		{ID: "cowboys", Name: "Dallas Cowboys", City: "Dallas", Nickname: "Cowboys", Abbreviation: "DAL", Conference: ConferenceNFC, Division: "East", PrimaryColor: "#041E42"},
		{ID: "giants", Name: "New York Giants", City: "New York", Nickname: "Giants", Abbreviation: "NYG", Conference: ConferenceNFC, Division: "East", PrimaryColor: "#0B2265"},
		{ID: "eagles", Name: "Philadelphia Eagles", City: "Philadelphia", Nickname: "Eagles", Abbreviation: "PHI", Conference: ConferenceNFC, Division: "East", PrimaryColor: "#004C54"},
		{ID: "commanders", Name: "Washington Commanders", City: "Washington", Nickname: "Commanders", Abbreviation: "WAS", Conference: ConferenceNFC, Division: "East", PrimaryColor: "#5A1414"},
		{ID: "bears", Name: "Chicago Bears", City: "Chicago", Nickname: "Bears", Abbreviation: "CHI", Conference: ConferenceNFC, Division: "North", PrimaryColor: "#0B162A"},
		{ID: "lions", Name: "Detroit Lions", City: "Detroit", Nickname: "Lions", Abbreviation: "DET", Conference: ConferenceNFC, Division: "North", PrimaryColor: "#0076B6"},
		{ID: "packers", Name: "Green Bay Packers", City: "Green Bay", Nickname: "Packers", Abbreviation: "GB", Conference: ConferenceNFC, Division: "North", PrimaryColor: "#203731"},
		{ID: "vikings", Name: "Minnesota Vikings", City: "Minnesota", Nickname: "Vikings", Abbreviation: "MIN", Conference: ConferenceNFC, Division: "North", PrimaryColor: "#4F2683"},
		{ID: "falcons", Name: "Atlanta Falcons", City: "Atlanta", Nickname: "Falcons", Abbreviation: "ATL", Conference: ConferenceNFC, Division: "South", PrimaryColor: "#A71930"},
		{ID: "panthers", Name: "Carolina Panthers", City: "Carolina", Nickname: "Panthers", Abbreviation: "CAR", Conference: ConferenceNFC, Division: "South", PrimaryColor: "#0085CA"},
		{ID: "saints", Name: "New Orleans Saints", City: "New Orleans", Nickname: "Saints", Abbreviation: "NO", Conference: ConferenceNFC, Division: "South", PrimaryColor: "#D3BC8D"},
		{ID: "buccaneers", Name: "Tampa Bay Buccaneers", City: "Tampa Bay", Nickname: "Buccaneers", Abbreviation: "TB", Conference: ConferenceNFC, Division: "South", PrimaryColor: "#D50A0A"},
		{ID: "cardinals", Name: "Arizona Cardinals", City: "Arizona", Nickname: "Cardinals", Abbreviation: "ARI", Conference: ConferenceNFC, Division: "West", PrimaryColor: "#97233F"},
		{ID: "rams", Name: "Los Angeles Rams", City: "Los Angeles", Nickname: "Rams", Abbreviation: "LAR", Conference: ConferenceNFC, Division: "West", PrimaryColor: "#003594"},
		{ID: "49ers", Name: "San Francisco 49ers", City: "San Francisco", Nickname: "49ers", Abbreviation: "SF", Conference: ConferenceNFC, Division: "West", PrimaryColor: "#AA0000"},
		{ID: "seahawks", Name: "Seattle Seahawks", City: "Seattle", Nickname: "Seahawks", Abbreviation: "SEA", Conference: ConferenceNFC, Division: "West", PrimaryColor: "#002244"},
	}
}
