package service

import (
	"regexp"
	"strings"
)

// RedFlag is a catalog ingredient detected in submitted label text.
// FoundAs preserves the token the match was made on.
type RedFlag struct {
	Name     string `json:"name"`
	Risk     string `json:"risk"`
	EUStatus string `json:"eu_status"`
	FoundAs  string `json:"found_as"`
}

type IngredientReport struct {
	Score          int       `json:"score"`
	RedFlags       []RedFlag `json:"red_flags"`
	AllIngredients []string  `json:"all_ingredients"`
}

const redFlagPenalty = 15

// Label boilerplate that would otherwise pollute tokens. Replaced with
// a separator, not deleted, so neighbouring ingredients stay split.
var boilerplateRe = regexp.MustCompile(`(?i)contains less than \d+(\.\d+)?\s*% of:?|contains:|ingredients:`)

var tokenSplitRe = regexp.MustCompile(`[,;.]`)

// AnalyzeIngredients parses a free-text ingredient list and matches it
// against the banned-ingredient catalog. Pure function: identical text
// always yields an identical report.
//
// Parenthetical content is hoisted out as if it were its own
// ingredient, because labels nest allergen and alias info there
// ("Titanium Dioxide (E171)" flags once, via either name).
func AnalyzeIngredients(text string) IngredientReport {
	lowered := strings.ToLower(text)
	expanded := strings.NewReplacer("(", ",", ")", ",").Replace(lowered)
	cleaned := boilerplateRe.ReplaceAllString(expanded, ",")

	var tokens []string
	for _, raw := range tokenSplitRe.Split(cleaned, -1) {
		token := strings.TrimSpace(raw)
		if len(token) <= 1 {
			continue
		}
		tokens = append(tokens, token)
	}

	flags := make([]RedFlag, 0)
	flagged := make(map[string]bool, len(bannedCatalog))
	for _, token := range tokens {
		for _, entry := range bannedCatalog {
			if flagged[entry.Name] {
				continue
			}
			if matchesEntry(token, entry.Name, entry.Aliases) {
				flagged[entry.Name] = true
				flags = append(flags, RedFlag{
					Name:     entry.Name,
					Risk:     entry.Risk,
					EUStatus: entry.EUStatus,
					FoundAs:  token,
				})
			}
		}
	}

	score := 100 - redFlagPenalty*len(flags)
	if score < 0 {
		score = 0
	}

	// The display list uses a looser filter than matching did, hiding
	// short fragments that survived splitting.
	display := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) > 2 {
			display = append(display, token)
		}
	}

	return IngredientReport{Score: score, RedFlags: flags, AllIngredients: display}
}

// matchesEntry tests two-way substring containment against the entry's
// name and aliases: a long token can contain the canonical name, and
// an abbreviated token can be contained in it.
func matchesEntry(token, name string, aliases []string) bool {
	candidates := make([]string, 0, len(aliases)+1)
	candidates = append(candidates, strings.ToLower(name))
	for _, a := range aliases {
		candidates = append(candidates, strings.ToLower(a))
	}
	for _, c := range candidates {
		if strings.Contains(token, c) || strings.Contains(c, token) {
			return true
		}
	}
	return false
}
