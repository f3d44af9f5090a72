package aggregate

import (
	"math"

	"github.com/sightlinehq/sightline/internal/domain"
)

// Totals holds the headline counts for one window.
type Totals struct {
	Pageviews           int
	Events              int
	Sessions            int
	AvgEventsPerSession float64
}

// ComputeTotals counts pageviews, all events, and distinct sessions in the
// given slice. Sessions are distinct session_id values; events without one
// are still counted as events but contribute no session.
func ComputeTotals(events []domain.Event) Totals {
	sessions := make(map[string]struct{})
	t := Totals{}

	for i := range events {
		t.Events++
		if events[i].IsPageview() {
			t.Pageviews++
		}
		if events[i].SessionID != "" {
			sessions[events[i].SessionID] = struct{}{}
		}
	}

	t.Sessions = len(sessions)
	if t.Sessions > 0 {
		avg := float64(t.Events) / float64(t.Sessions)
		t.AvgEventsPerSession = math.Round(avg*10) / 10
	}

	return t
}

// Change returns the integer percentage delta between curr and prev.
// A zero baseline yields 0 rather than a division by zero.
func Change(curr, prev int) int {
	if prev == 0 {
		return 0
	}
	return int(math.Round(float64(curr-prev) / float64(prev) * 100))
}
