package nfl

import "strings"

// cityReplacements shorten multi-word city prefixes before alias matching so
// provider spellings like "LA Rams" and "Los Angeles Rams" collapse together.
var cityReplacements = [][2]string{
	{"los angeles", "la"},
	{"new york", "ny"},
	{"new england", "ne"},
	{"tampa bay", "tb"},
	{"green bay", "gb"},
	{"san francisco", "sf"},
	{"las vegas", "lv"},
	{"kansas city", "kc"},
	{"new orleans", "no"},
}

// abbreviationVariants maps non-canonical provider codes onto registry codes.
var abbreviationVariants = map[string]string{
	"WSH": "WAS",
	"JAC": "JAX",
	"LA":  "LAR",
}

// NormalizeName lowercases a team token, applies the city replacements, and
// strips everything that is not a letter or digit.
func NormalizeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, pair := range cityReplacements {
		normalized = strings.ReplaceAll(normalized, pair[0], pair[1])
	}

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolver maps provider team tokens (abbreviations or free-text display
// names) to registry identities. Build once, read-only afterwards.
type Resolver struct {
	byID           map[string]Team
	byAbbreviation map[string]Team
	byAlias        map[string]Team
}

func NewResolver() *Resolver {
	teams := Teams()
	r := &Resolver{
		byID:           make(map[string]Team, len(teams)),
		byAbbreviation: make(map[string]Team, len(teams)),
		byAlias:        make(map[string]Team, len(teams)*2),
	}

	for _, team := range teams {
		r.byID[team.ID] = team
		r.byAbbreviation[team.Abbreviation] = team
		r.byAlias[NormalizeName(team.Name)] = team
		r.byAlias[NormalizeName(team.Nickname)] = team
	}
	for variant, canonical := range abbreviationVariants {
		if team, ok := r.byAbbreviation[canonical]; ok {
			r.byAbbreviation[variant] = team
		}
	}

	return r
}

func (r *Resolver) ByID(id string) (Team, bool) {
	team, ok := r.byID[strings.TrimSpace(id)]
	return team, ok
}

func (r *Resolver) ByAbbreviation(code string) (Team, bool) {
	team, ok := r.byAbbreviation[strings.ToUpper(strings.TrimSpace(code))]
	return team, ok
}

// Resolve accepts either an abbreviation or a display name and returns the
// registry team. Abbreviations win over alias matching so short tokens like
// "NO" never fuzzy-match another franchise.
func (r *Resolver) Resolve(token string) (Team, bool) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Team{}, false
	}

	if len(trimmed) <= 3 {
		if team, ok := r.ByAbbreviation(trimmed); ok {
			return team, ok
		}
	}
	if team, ok := r.byAlias[NormalizeName(trimmed)]; ok {
		return team, true
	}
	if team, ok := r.ByAbbreviation(trimmed); ok {
		return team, ok
	}

	return Team{}, false
}

// DisplayName resolves a token to its canonical display name, or returns the
// token unchanged when it cannot be resolved.
func (r *Resolver) DisplayName(token string) string {
	if team, ok := r.Resolve(token); ok {
		return team.Name
	}
	return strings.TrimSpace(token)
}
