package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sightlinehq/sightline/internal/domain"
)

func withReferrer(ref string) domain.Event {
	e := pageview("s1", "/a", testNow)
	e.Referrer = ref
	return e
}

func TestReferrers_Classification(t *testing.T) {
	events := []domain.Event{
		withReferrer(""),
		withReferrer("direct"),
		withReferrer("https://www.google.com/search?q=x"),
		withReferrer("https://news.ycombinator.com/item?id=1"),
		withReferrer("garbage-no-host"),
	}

	referrers := Referrers(events, "")

	bySource := make(map[string]SourceCount)
	for _, r := range referrers {
		bySource[r.Source] = r
	}

	assert.Equal(t, 2, bySource[SourceDirect].Count)
	assert.Equal(t, CategoryDirect, bySource[SourceDirect].Category)
	assert.Equal(t, 1, bySource["google.com"].Count)
	assert.Equal(t, CategorySearch, bySource["google.com"].Category)
	assert.Equal(t, 1, bySource["news.ycombinator.com"].Count)
	assert.Equal(t, CategoryReferral, bySource["news.ycombinator.com"].Category)
	assert.Equal(t, 1, bySource["Other"].Count)
	assert.Equal(t, CategoryOther, bySource["Other"].Category)
}

func TestReferrers_SumEqualsTotalPageviews(t *testing.T) {
	events := []domain.Event{
		withReferrer(""),
		withReferrer("https://bing.com"),
		withReferrer("https://t.co/abc"),
		withReferrer("%%%malformed%%%"),
		customEvent("s1", testNow), // not a pageview, not counted
	}

	referrers := Referrers(events, "")

	sum := 0
	for _, r := range referrers {
		sum += r.Count
	}
	assert.Equal(t, ComputeTotals(events).Pageviews, sum)
}

func TestReferrers_OwnDomainIsDirect(t *testing.T) {
	events := []domain.Event{
		withReferrer("https://www.example.com/landing"),
	}

	referrers := Referrers(events, "example.com")

	assert.Equal(t, []SourceCount{
		{Source: SourceDirect, Category: CategoryDirect, Count: 1},
	}, referrers)
}

func TestReferrers_BareHost(t *testing.T) {
	events := []domain.Event{withReferrer("duckduckgo.com")}

	referrers := Referrers(events, "")

	assert.Equal(t, []SourceCount{
		{Source: "duckduckgo.com", Category: CategorySearch, Count: 1},
	}, referrers)
}

func TestReferrers_OrderedByCountDescending(t *testing.T) {
	events := []domain.Event{
		withReferrer("https://a.example.org"),
		withReferrer("https://b.example.org"),
		withReferrer("https://b.example.org"),
	}

	referrers := Referrers(events, "")

	assert.Equal(t, "b.example.org", referrers[0].Source)
	assert.Equal(t, "a.example.org", referrers[1].Source)
}
