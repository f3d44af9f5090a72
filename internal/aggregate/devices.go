package aggregate

import (
	"strings"

	"github.com/sightlinehq/sightline/internal/domain"
)

// DefaultDeviceRules is the device classification table. Bot signatures
// are checked before anything else so that crawlers spoofing mobile
// tokens still land in the Bot bucket. Tablet precedes Mobile because
// tablet user agents usually carry mobile tokens too. Matching is
// case-insensitive.
var DefaultDeviceRules = []Rule{
	{Label: "Bot", Tokens: []string{"bot", "crawler", "spider", "slurp", "curl", "wget", "python-requests", "headless"}},
	{Label: "Tablet", Tokens: []string{"ipad", "tablet", "kindle", "silk"}},
	{Label: "Mobile", Tokens: []string{"mobi", "iphone", "ipod", "android"}},
}

// Devices counts events per device class. Unmatched user agents default
// to Desktop; events without a user agent are skipped.
func Devices(events []domain.Event, rules []Rule) []NameCount {
	counts := make(map[string]int)
	for i := range events {
		ua := events[i].UserAgent
		if ua == "" {
			continue
		}
		counts[matchRules(strings.ToLower(ua), rules, "Desktop")]++
	}

	return sortedCounts(counts)
}
