package teamname

// AliasTable maps a canonical lowercase name to its equivalence class of
// aliases. It is the authoritative source of identity beyond what fixed
// rewrites cover (step 8 of spec.md §4.2); loaded from config at startup and
// treated as read-only afterward (see SPEC_FULL §5 shared-resources note).
type AliasTable struct {
	canonicalToAliases map[string][]string
	aliasToCanonical   map[string]string
}

// NewAliasTable builds a table from a canonical->aliases map, indexing both
// directions so Apply is O(1).
func NewAliasTable(canonicalToAliases map[string][]string) *AliasTable {
	t := &AliasTable{
		canonicalToAliases: canonicalToAliases,
		aliasToCanonical:   make(map[string]string),
	}
	for canonical, aliases := range canonicalToAliases {
		for _, alias := range aliases {
			t.aliasToCanonical[alias] = canonical
		}
	}
	return t
}

// Apply replaces s with its canonical form if s is the canonical itself or
// one of its registered aliases; otherwise s is returned unchanged.
func (t *AliasTable) Apply(s string) string {
	if _, ok := t.canonicalToAliases[s]; ok {
		return s
	}
	if canonical, ok := t.aliasToCanonical[s]; ok {
		return canonical
	}
	return s
}

// Aliases returns every (canonical, alias) pair, for the alias-closure
// property test in spec.md §8 property 8.
func (t *AliasTable) Aliases() map[string][]string {
	return t.canonicalToAliases
}

// DefaultAliasTable is grounded on original_source/backend/utils/pod_utils.py's
// TEAM_ALIASES and match_games.py's TEAM_NAME_MAP.
func DefaultAliasTable() *AliasTable {
	return NewAliasTable(map[string][]string{
		"czech republic": {"czechia"},
		"south korea":    {"korea republic", "republic of korea"},
		"north korea":    {"korea dpr", "dpr korea", "democratic peoples republic of korea"},
		"ivory coast":    {"cote d'ivoire", "cote divoire"},
		"usa":            {"united states", "united states of america", "us"},
		"iran":           {"islamic republic of iran", "iran isl"},
		"russia":         {"russian federation"},
		"tottenham":      {"spurs"},
		"psg":            {"paris saint germain", "paris sg"},
		"inter":          {"inter milan", "internazionale"},
		"ny":             {"new york"},
		"la":             {"los angeles"},
		// CFL club nicknames, grounded on pod_utils.py's TEAM_ALIASES.
		"tiger cats":   {"tiger-cats", "hamilton tiger cats", "hamilton tiger-cats"},
		"blue bombers": {"winnipeg blue bombers"},
		"roughriders":  {"saskatchewan roughriders"},
		"stampeders":   {"calgary stampeders"},
		"eskimos":      {"edmonton eskimos", "edmonton elks"},
		"redblacks":    {"ottawa redblacks"},
		"argonauts":    {"toronto argonauts"},
		"alouettes":    {"montreal alouettes"},
		"lions":        {"bc lions", "british columbia lions"},
	})
}

// NormalizeWithAliases runs Normalize then applies the given alias table,
// the full 8-step pipeline from spec.md §4.2.
func NormalizeWithAliases(raw string, table *AliasTable) string {
	n := Normalize(raw)
	if table == nil {
		return n
	}
	return table.Apply(n)
}
