// Package aggregate computes analytics overviews from raw event slices.
// Every function here is pure and stateless: it reads an immutable window
// of events and derives counts, never touching storage. Malformed fields
// degrade to catch-all buckets instead of failing the computation.
package aggregate

import (
	"time"

	"github.com/sightlinehq/sightline/internal/domain"
)

// supportedDays enumerates the window sizes the overview endpoint accepts.
var supportedDays = map[int]struct{}{
	7:  {},
	30: {},
	90: {},
}

// SupportedDays reports whether days is a valid overview window size.
func SupportedDays(days int) bool {
	_, ok := supportedDays[days]
	return ok
}

// Window is a trailing interval of whole UTC calendar days ending now.
//
// The window is aligned to UTC midnight on its first day so that it spans
// exactly Days calendar dates. This keeps two consumer-facing invariants
// compatible: the daily traffic series has exactly Days buckets, and the
// buckets sum to the window's total event count.
type Window struct {
	From time.Time
	To   time.Time
	Days int
}

// NewWindow builds the current window for the given size, ending at now.
func NewWindow(now time.Time, days int) Window {
	to := now.UTC()
	first := to.AddDate(0, 0, -(days - 1))
	from := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)

	return Window{From: from, To: to, Days: days}
}

// Previous returns the window of equal length immediately before w, used
// only for period-over-period deltas.
func (w Window) Previous() Window {
	return Window{
		From: w.From.AddDate(0, 0, -w.Days),
		To:   w.From,
		Days: w.Days,
	}
}

// Contains reports whether t falls inside the half-open interval [From, To).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Split partitions a combined fetch covering both windows into the events
// belonging to the current window and those belonging to the previous one.
// Events outside both windows are dropped.
func Split(events []domain.Event, current Window) (cur, prev []domain.Event) {
	previous := current.Previous()

	for _, e := range events {
		ts := e.Timestamp.UTC()
		switch {
		case current.Contains(ts):
			cur = append(cur, e)
		case previous.Contains(ts):
			prev = append(prev, e)
		}
	}

	return cur, prev
}
