package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/aggregate"
	"github.com/sightlinehq/sightline/internal/cache"
	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
	"github.com/sightlinehq/sightline/internal/nlq"
	"github.com/sightlinehq/sightline/internal/repository"
)

// AnalyticsService computes overviews, CSV exports and natural-language
// answers from the event log. All reads are tenant-scoped through the
// project store before any event is fetched.
type AnalyticsService struct {
	events    repository.EventRepository
	projects  repository.ProjectRepository
	overviews *cache.OverviewCache
	generator nlq.AnswerGenerator
	timeout   time.Duration
	log       *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewAnalyticsService creates a new analytics service. The cache and
// generator may be nil; caching and LLM answers degrade gracefully.
func NewAnalyticsService(events repository.EventRepository, projects repository.ProjectRepository, overviews *cache.OverviewCache, generator nlq.AnswerGenerator, timeout time.Duration, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		events:    events,
		projects:  projects,
		overviews: overviews,
		generator: generator,
		timeout:   timeout,
		log:       log,
		now:       time.Now,
	}
}

// Overview computes the project's analytics overview for a trailing
// window of days. The previous window of equal length is fetched in the
// same query to derive period-over-period deltas.
func (s *AnalyticsService) Overview(ctx context.Context, projectID, tenantID string, days int) (*dto.OverviewResponse, error) {
	if !aggregate.SupportedDays(days) {
		return nil, fmt.Errorf("%w: days must be one of 7, 30, 90", domain.ErrValidation)
	}

	project, err := s.projects.GetOwned(ctx, projectID, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	if cached := s.overviews.Get(ctx, projectID, days, now); cached != nil {
		s.log.Debug("Overview cache hit", zap.String("project_id", projectID), zap.Int("days", days))
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	window := aggregate.NewWindow(now, days)
	previous := window.Previous()

	events, err := s.events.FetchWindow(ctx, projectID, previous.From, window.To)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("overview query exceeded %s: %w", s.timeout, domain.ErrTimeout)
		}
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	current, prior := aggregate.Split(events, window)

	overview, err := aggregate.ComputeOverview(ctx, current, prior, window, aggregate.Options{
		ProjectDomain: project.Domain,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("overview computation exceeded %s: %w", s.timeout, domain.ErrTimeout)
		}
		return nil, err
	}

	response := overviewResponse(overview)
	s.overviews.Set(ctx, projectID, days, now, response)

	return response, nil
}

// ExportCSV renders the window's daily traffic, top pages, referrers and
// geo breakdowns as CSV sections for spreadsheet import.
func (s *AnalyticsService) ExportCSV(ctx context.Context, projectID, tenantID string, days int) ([]byte, error) {
	overview, err := s.Overview(ctx, projectID, tenantID, days)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"total_pageviews", strconv.Itoa(overview.TotalPageviews)},
		{"total_events", strconv.Itoa(overview.TotalEvents)},
		{"unique_sessions", strconv.Itoa(overview.UniqueSessions)},
		{"avg_events_per_session", strconv.FormatFloat(overview.AvgEventsPerSession, 'f', 1, 64)},
		{},
		{"date", "events"},
	}
	for _, day := range overview.DailyTraffic {
		rows = append(rows, []string{day.Date, strconv.Itoa(day.Count)})
	}

	rows = append(rows, []string{}, []string{"page", "views"})
	for _, page := range overview.TopPages {
		rows = append(rows, []string{page.URL, strconv.Itoa(page.Views)})
	}

	rows = append(rows, []string{}, []string{"referrer", "category", "count"})
	for _, source := range overview.Referrers {
		rows = append(rows, []string{source.Source, source.Category, strconv.Itoa(source.Count)})
	}

	rows = append(rows, []string{}, []string{"country", "count", "percentage"})
	for _, country := range overview.Countries {
		rows = append(rows, []string{country.ISO, strconv.Itoa(country.Count), strconv.Itoa(country.Percentage)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// AnswerQuestion answers a natural-language analytics question. All
// numbers are computed locally; the generator only turns the summary into
// prose. Without a configured generator the answer falls back to the
// locally derived insights.
func (s *AnalyticsService) AnswerQuestion(ctx context.Context, tenantID string, req *dto.NLQRequest) (*dto.NLQResponse, error) {
	days, err := parseDateRange(req.DateRange)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetOwned(ctx, req.ProjectID, tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	window := aggregate.NewWindow(s.now().UTC(), days)

	events, err := s.events.FetchWindow(ctx, req.ProjectID, window.From, window.To)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("question query exceeded %s: %w", s.timeout, domain.ErrTimeout)
		}
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	overview, err := aggregate.ComputeOverview(ctx, events, nil, window, aggregate.Options{
		ProjectDomain: project.Domain,
	})
	if err != nil {
		return nil, err
	}

	summary := dataSummary(overviewResponse(overview), days)
	insights := deriveInsights(overview)

	answer := ""
	if s.generator != nil {
		answer, err = s.generator.Answer(ctx, req.Question, summary)
		if err != nil {
			s.log.Warn("Answer generation failed, falling back to insights", zap.Error(err))
			answer = ""
		}
	}
	if answer == "" {
		answer = fallbackAnswer(insights)
	}

	return &dto.NLQResponse{
		Question: req.Question,
		Answer:   answer,
		Data:     summary,
		Insights: insights,
	}, nil
}

// parseDateRange maps the request's date_range shorthand to a window size
func parseDateRange(dateRange string) (int, error) {
	switch dateRange {
	case "", "7d":
		return 7, nil
	case "30d":
		return 30, nil
	case "90d":
		return 90, nil
	case "all":
		return 365, nil
	default:
		return 0, fmt.Errorf("%w: date_range must be one of 7d, 30d, 90d, all", domain.ErrValidation)
	}
}

// dataSummary flattens the overview into the NLQ response's data field.
// It takes the dto form so every nested value serializes with the same
// snake_case keys as the rest of the API.
func dataSummary(overview *dto.OverviewResponse, days int) map[string]interface{} {
	return map[string]interface{}{
		"window_days":            days,
		"total_pageviews":        overview.TotalPageviews,
		"total_events":           overview.TotalEvents,
		"unique_sessions":        overview.UniqueSessions,
		"avg_events_per_session": overview.AvgEventsPerSession,
		"daily_traffic":          overview.DailyTraffic,
		"top_pages":              overview.TopPages,
		"referrers":              overview.Referrers,
		"countries":              overview.Countries,
	}
}

func deriveInsights(overview *aggregate.Overview) []string {
	insights := []string{}

	if overview.UniqueSessions > 0 {
		insights = append(insights, fmt.Sprintf("Visitors view %.1f events per session on average.", overview.AvgEventsPerSession))
	}

	if len(overview.TopPages) > 0 {
		top := overview.TopPages[0]
		insights = append(insights, fmt.Sprintf("The most viewed page is %s with %d views.", top.URL, top.Views))
	}

	var best aggregate.DayCount
	for _, day := range overview.DailyTraffic {
		if day.Count > best.Count {
			best = day
		}
	}
	if best.Count > 0 {
		insights = append(insights, fmt.Sprintf("The busiest day was %s with %d events.", best.Date, best.Count))
	}

	for _, source := range overview.Referrers {
		if source.Category == aggregate.CategorySearch {
			insights = append(insights, fmt.Sprintf("Search engines drove %d pageviews, led by %s.", searchTotal(overview.Referrers), source.Source))
			break
		}
	}

	if len(insights) == 0 {
		insights = append(insights, "No events were recorded in this period.")
	}

	return insights
}

func searchTotal(sources []aggregate.SourceCount) int {
	total := 0
	for _, source := range sources {
		if source.Category == aggregate.CategorySearch {
			total += source.Count
		}
	}
	return total
}

func fallbackAnswer(insights []string) string {
	answer := ""
	for i, insight := range insights {
		if i > 0 {
			answer += " "
		}
		answer += insight
	}
	return answer
}

func overviewResponse(overview *aggregate.Overview) *dto.OverviewResponse {
	response := &dto.OverviewResponse{
		TotalPageviews:      overview.TotalPageviews,
		TotalEvents:         overview.TotalEvents,
		UniqueSessions:      overview.UniqueSessions,
		AvgEventsPerSession: overview.AvgEventsPerSession,
		PageviewsChange:     overview.PageviewsChange,
		SessionsChange:      overview.SessionsChange,
		EventsChange:        overview.EventsChange,
		DailyTraffic:        make([]dto.DayCount, 0, len(overview.DailyTraffic)),
		TopPages:            make([]dto.PageCount, 0, len(overview.TopPages)),
		Browsers:            make(dto.OrderedCounts, 0, len(overview.Browsers)),
		Referrers:           make([]dto.SourceCount, 0, len(overview.Referrers)),
		Continents:          make([]dto.RegionCount, 0, len(overview.Continents)),
		Countries:           make([]dto.CountryCount, 0, len(overview.Countries)),
		Devices:             make(dto.OrderedCounts, 0, len(overview.Devices)),
	}

	for _, day := range overview.DailyTraffic {
		response.DailyTraffic = append(response.DailyTraffic, dto.DayCount{Date: day.Date, Count: day.Count})
	}
	for _, page := range overview.TopPages {
		response.TopPages = append(response.TopPages, dto.PageCount{URL: page.URL, Views: page.Views})
	}
	for _, browser := range overview.Browsers {
		response.Browsers = append(response.Browsers, dto.OrderedCount{Name: browser.Name, Count: browser.Count})
	}
	for _, source := range overview.Referrers {
		response.Referrers = append(response.Referrers, dto.SourceCount{Source: source.Source, Category: source.Category, Count: source.Count})
	}
	for _, continent := range overview.Continents {
		response.Continents = append(response.Continents, dto.RegionCount{Name: continent.Name, Count: continent.Count, Percentage: continent.Percentage})
	}
	for _, country := range overview.Countries {
		response.Countries = append(response.Countries, dto.CountryCount{ISO: country.ISO, Count: country.Count, Percentage: country.Percentage})
	}
	for _, device := range overview.Devices {
		response.Devices = append(response.Devices, dto.OrderedCount{Name: device.Name, Count: device.Count})
	}

	return response
}
