package aggregate

import (
	"math"
	"sort"

	"github.com/sightlinehq/sightline/internal/domain"
)

// ContinentNames is the fixed continent taxonomy the dashboard renders.
// The overview always reports all six, in this order, so the column chart
// keeps a stable axis.
var ContinentNames = []string{
	"North America",
	"Europe",
	"Asia",
	"South America",
	"Africa",
	"Oceania",
}

// RegionCount is one continent entry with its share of recognized events.
type RegionCount struct {
	Name       string
	Count      int
	Percentage int
}

// CountryCount is one country entry keyed by ISO 3166-1 alpha-2 code.
type CountryCount struct {
	ISO        string
	Count      int
	Percentage int
}

// Continents aggregates the continent field attached at ingestion. Events
// with no continent or one outside the taxonomy are excluded from both
// counts and the shared percentage total, so the reported percentages are
// self-consistent.
func Continents(events []domain.Event) []RegionCount {
	known := make(map[string]bool, len(ContinentNames))
	for _, name := range ContinentNames {
		known[name] = true
	}

	counts := make(map[string]int)
	total := 0
	for i := range events {
		c := events[i].Continent
		if !known[c] {
			continue
		}
		counts[c]++
		total++
	}

	out := make([]RegionCount, 0, len(ContinentNames))
	for _, name := range ContinentNames {
		out = append(out, RegionCount{
			Name:       name,
			Count:      counts[name],
			Percentage: percentage(counts[name], total),
		})
	}

	return out
}

// Countries aggregates the country field attached at ingestion, ordered by
// count descending with ties broken by ISO code.
func Countries(events []domain.Event) []CountryCount {
	counts := make(map[string]int)
	total := 0
	for i := range events {
		iso := events[i].Country
		if iso == "" {
			continue
		}
		counts[iso]++
		total++
	}

	out := make([]CountryCount, 0, len(counts))
	for iso, count := range counts {
		out = append(out, CountryCount{
			ISO:        iso,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ISO < out[j].ISO
	})

	return out
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
