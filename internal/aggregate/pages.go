package aggregate

import (
	"net/url"
	"sort"
	"strings"

	"github.com/sightlinehq/sightline/internal/domain"
)

// TopPagesLimit caps the top pages list the dashboard renders.
const TopPagesLimit = 5

// PageCount is one entry of the top pages list.
type PageCount struct {
	URL   string
	Views int
}

// NormalizePageURL applies the grouping rule for page URLs: the query
// string and fragment are stripped, and a single trailing slash is removed
// unless the result would be empty. The same rule is used by the CSV
// export so groupings stay consistent across surfaces.
func NormalizePageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if u, err := url.Parse(raw); err == nil {
		u.RawQuery = ""
		u.Fragment = ""
		raw = u.String()
	} else {
		// Unparseable URLs keep their prefix up to the first delimiter.
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			raw = raw[:i]
		}
	}

	if len(raw) > 1 && strings.HasSuffix(raw, "/") {
		raw = strings.TrimSuffix(raw, "/")
	}

	return raw
}

// TopPages groups pageview events by normalized URL and returns the most
// viewed ones, sorted by views descending with ties broken by URL
// ascending. Pageviews without a URL are ignored.
func TopPages(events []domain.Event, limit int) []PageCount {
	views := make(map[string]int)
	for i := range events {
		if !events[i].IsPageview() {
			continue
		}
		u := NormalizePageURL(events[i].PageURL)
		if u == "" {
			continue
		}
		views[u]++
	}

	pages := make([]PageCount, 0, len(views))
	for u, v := range views {
		pages = append(pages, PageCount{URL: u, Views: v})
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Views != pages[j].Views {
			return pages[i].Views > pages[j].Views
		}
		return pages[i].URL < pages[j].URL
	})

	if len(pages) > limit {
		pages = pages[:limit]
	}

	return pages
}
