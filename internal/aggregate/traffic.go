package aggregate

import (
	"github.com/sightlinehq/sightline/internal/domain"
)

// DayCount is one calendar-day bucket of the traffic series.
type DayCount struct {
	Date  string
	Count int
}

const dayFormat = "2006-01-02"

// DailyTraffic buckets all events (not just pageviews) by UTC calendar day.
// The result always has exactly window.Days entries in chronological order;
// days with no events appear with a zero count. Chart consumers rely on
// both properties for x-axis alignment.
func DailyTraffic(events []domain.Event, window Window) []DayCount {
	counts := make(map[string]int, window.Days)
	for i := range events {
		counts[events[i].Timestamp.UTC().Format(dayFormat)]++
	}

	series := make([]DayCount, 0, window.Days)
	for day := 0; day < window.Days; day++ {
		date := window.From.AddDate(0, 0, day).Format(dayFormat)
		series = append(series, DayCount{Date: date, Count: counts[date]})
	}

	return series
}
