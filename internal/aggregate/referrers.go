package aggregate

import (
	"net/url"
	"sort"
	"strings"

	"github.com/sightlinehq/sightline/internal/domain"
)

// Referrer categories. Every pageview is assigned to exactly one source,
// so the per-source counts always sum to the window's total pageviews.
const (
	CategoryDirect   = "direct"
	CategorySearch   = "search"
	CategoryReferral = "referral"
	CategoryOther    = "other"
)

// SourceDirect is the literal source for pageviews with no referrer.
const SourceDirect = "Direct"

// searchEngineKeywords identifies well-known search engines by host
// substring.
var searchEngineKeywords = []string{"google", "bing", "yahoo", "duckduckgo", "baidu", "yandex"}

// SourceCount is one entry of the referrer breakdown.
type SourceCount struct {
	Source   string
	Category string
	Count    int
}

// Referrers classifies the referrer of each pageview event and counts
// pageviews per source. ownDomain is the project's own domain; referrals
// from it count as direct traffic. Malformed referrers degrade to the
// "Other" source instead of failing the breakdown.
func Referrers(events []domain.Event, ownDomain string) []SourceCount {
	type entry struct {
		category string
		count    int
	}
	counts := make(map[string]*entry)
	ownDomain = normalizeHost(ownDomain)

	for i := range events {
		if !events[i].IsPageview() {
			continue
		}
		source, category := classifyReferrer(events[i].Referrer, ownDomain)
		if e, ok := counts[source]; ok {
			e.count++
		} else {
			counts[source] = &entry{category: category, count: 1}
		}
	}

	out := make([]SourceCount, 0, len(counts))
	for source, e := range counts {
		out = append(out, SourceCount{Source: source, Category: e.category, Count: e.count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})

	return out
}

// classifyReferrer maps a raw referrer value to a (source, category) pair.
func classifyReferrer(raw, ownDomain string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "direct") {
		return SourceDirect, CategoryDirect
	}

	host := referrerHost(raw)
	if host == "" {
		return "Other", CategoryOther
	}
	if ownDomain != "" && host == ownDomain {
		return SourceDirect, CategoryDirect
	}

	for _, keyword := range searchEngineKeywords {
		if strings.Contains(host, keyword) {
			return host, CategorySearch
		}
	}

	return host, CategoryReferral
}

// referrerHost extracts the normalized host from a referrer value, which
// may be a full URL or a bare host. Values that yield no plausible host
// (no dot, no scheme) return "".
func referrerHost(raw string) string {
	candidate := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		candidate = u.Host
	} else if !strings.Contains(raw, "://") {
		// Bare hosts like "example.com/path" parse as a path, not a host.
		if u, err := url.Parse("//" + raw); err == nil && u.Host != "" {
			candidate = u.Host
		}
	}

	host := normalizeHost(candidate)
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

// normalizeHost lowercases a host, strips any port, and drops a leading
// "www." so that variants of the same site collapse into one source.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
