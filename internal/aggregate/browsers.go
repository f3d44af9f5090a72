package aggregate

import (
	"sort"
	"strings"

	"github.com/sightlinehq/sightline/internal/domain"
)

// NameCount is a generic label/count pair for distribution results.
type NameCount struct {
	Name  string
	Count int
}

// Rule maps a label to the user-agent tokens that select it. Rule order is
// precedence order: the first rule with a matching token wins.
type Rule struct {
	Label  string
	Tokens []string
}

// DefaultBrowserRules is the coarse browser classification table. Edge and
// Firefox must precede Chrome, and Chrome must precede Safari, because
// their user agents embed the tokens of the engines they derive from.
var DefaultBrowserRules = []Rule{
	{Label: "Edge", Tokens: []string{"Edg/", "Edge/", "EdgA/", "EdgiOS/"}},
	{Label: "Firefox", Tokens: []string{"Firefox/", "FxiOS/"}},
	{Label: "Chrome", Tokens: []string{"Chrome/", "CriOS/"}},
	{Label: "Safari", Tokens: []string{"Safari/"}},
}

// matchRules returns the label of the first rule with a token contained in
// ua, or fallback when none match.
func matchRules(ua string, rules []Rule, fallback string) string {
	for _, rule := range rules {
		for _, token := range rule.Tokens {
			if strings.Contains(ua, token) {
				return rule.Label
			}
		}
	}
	return fallback
}

// Browsers counts events per coarse browser label. Events without a user
// agent are skipped entirely; unrecognized user agents count as "Other".
// The result is ordered by count descending, ties broken by name.
func Browsers(events []domain.Event, rules []Rule) []NameCount {
	counts := make(map[string]int)
	for i := range events {
		ua := events[i].UserAgent
		if ua == "" {
			continue
		}
		counts[matchRules(ua, rules, "Other")]++
	}

	return sortedCounts(counts)
}

// sortedCounts flattens a count map into a slice ordered by count
// descending with a deterministic name tie-break.
func sortedCounts(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})

	return out
}
