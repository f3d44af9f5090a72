package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sightlinehq/sightline/internal/domain"
)

// Overview is the derived analytics snapshot for one project and window.
// It is never persisted; every request recomputes it from the event log.
type Overview struct {
	TotalPageviews      int
	TotalEvents         int
	UniqueSessions      int
	AvgEventsPerSession float64
	PageviewsChange     int
	SessionsChange      int
	EventsChange        int
	DailyTraffic        []DayCount
	TopPages            []PageCount
	Browsers            []NameCount
	Referrers           []SourceCount
	Continents          []RegionCount
	Countries           []CountryCount
	Devices             []NameCount
}

// Options tunes the overview computation. Zero-value fields fall back to
// the default rule tables and limits.
type Options struct {
	ProjectDomain string
	BrowserRules  []Rule
	DeviceRules   []Rule
	TopPagesLimit int
}

func (o Options) withDefaults() Options {
	if o.BrowserRules == nil {
		o.BrowserRules = DefaultBrowserRules
	}
	if o.DeviceRules == nil {
		o.DeviceRules = DefaultDeviceRules
	}
	if o.TopPagesLimit == 0 {
		o.TopPagesLimit = TopPagesLimit
	}
	return o
}

// ComputeOverview assembles the full overview from the current window's
// events and the previous window's (used only for deltas). The sub-metrics
// are independent of each other, so they run concurrently over the shared
// immutable slice. The only error it can return is the context's, when the
// caller's deadline expires mid-computation.
func ComputeOverview(ctx context.Context, current, previous []domain.Event, window Window, opts Options) (*Overview, error) {
	opts = opts.withDefaults()
	overview := &Overview{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		cur := ComputeTotals(current)
		prev := ComputeTotals(previous)

		overview.TotalPageviews = cur.Pageviews
		overview.TotalEvents = cur.Events
		overview.UniqueSessions = cur.Sessions
		overview.AvgEventsPerSession = cur.AvgEventsPerSession
		overview.PageviewsChange = Change(cur.Pageviews, prev.Pageviews)
		overview.SessionsChange = Change(cur.Sessions, prev.Sessions)
		overview.EventsChange = Change(cur.Events, prev.Events)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.DailyTraffic = DailyTraffic(current, window)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.TopPages = TopPages(current, opts.TopPagesLimit)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.Browsers = Browsers(current, opts.BrowserRules)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.Referrers = Referrers(current, opts.ProjectDomain)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.Continents = Continents(current)
		overview.Countries = Countries(current)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overview.Devices = Devices(current, opts.DeviceRules)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
