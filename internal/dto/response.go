package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"days must be one of 7, 30, 90"`
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Token  string     `json:"token"`
	Tenant TenantInfo `json:"tenant"`
}

// TenantInfo is the public view of a tenant
type TenantInfo struct {
	ID    string `json:"id" example:"0b7d5a31-73f0-4b9e-9a3e-5d2f3f9a8c11"`
	Name  string `json:"name" example:"Acme Inc"`
	Email string `json:"email" example:"owner@acme.dev"`
}

// ProjectResponse is the public view of a project
type ProjectResponse struct {
	ID              string              `json:"id"`
	TenantID        string              `json:"tenant_id"`
	Name            string              `json:"name" example:"Marketing Site"`
	Domain          string              `json:"domain" example:"acme.dev"`
	TrackingCode    string              `json:"tracking_code"`
	PrivacySettings PrivacySettingsInfo `json:"privacy_settings"`
	CreatedAt       string              `json:"created_at" example:"2025-03-15T12:00:00Z"`
}

// PrivacySettingsInfo mirrors the project's ingestion privacy controls
type PrivacySettingsInfo struct {
	AnonymizeIP    bool `json:"anonymize_ip" example:"true"`
	RequireConsent bool `json:"require_consent" example:"true"`
	RespectDNT     bool `json:"respect_dnt" example:"true"`
}

// TrackEventResponse represents a successful track response
type TrackEventResponse struct {
	Status  string `json:"status" example:"tracked"`
	EventID string `json:"event_id,omitempty" example:"evt_1a2b3c4d"`
}

// DayCount is one calendar-day bucket of the traffic series
type DayCount struct {
	Date  string `json:"date" example:"2025-03-15"`
	Count int    `json:"count" example:"128"`
}

// PageCount is one entry of the top pages list
type PageCount struct {
	URL   string `json:"url" example:"/pricing"`
	Views int    `json:"views" example:"42"`
}

// SourceCount is one entry of the referrer breakdown
type SourceCount struct {
	Source   string `json:"source" example:"google.com"`
	Category string `json:"category" example:"search"`
	Count    int    `json:"count" example:"17"`
}

// RegionCount is one continent entry
type RegionCount struct {
	Name       string `json:"name" example:"Europe"`
	Count      int    `json:"count" example:"64"`
	Percentage int    `json:"percentage" example:"40"`
}

// CountryCount is one country entry
type CountryCount struct {
	ISO        string `json:"iso" example:"DE"`
	Count      int    `json:"count" example:"22"`
	Percentage int    `json:"percentage" example:"14"`
}

// OverviewResponse is the full analytics overview for one project/window
type OverviewResponse struct {
	TotalPageviews      int            `json:"total_pageviews" example:"1204"`
	TotalEvents         int            `json:"total_events" example:"1650"`
	UniqueSessions      int            `json:"unique_sessions" example:"311"`
	AvgEventsPerSession float64        `json:"avg_events_per_session" example:"5.3"`
	PageviewsChange     int            `json:"pageviews_change" example:"12"`
	SessionsChange      int            `json:"sessions_change" example:"-4"`
	EventsChange        int            `json:"events_change" example:"8"`
	DailyTraffic        []DayCount     `json:"daily_traffic"`
	TopPages            []PageCount    `json:"top_pages"`
	Browsers            OrderedCounts  `json:"browsers" swaggertype:"object,integer"`
	Referrers           []SourceCount  `json:"referrers"`
	Continents          []RegionCount  `json:"continents"`
	Countries           []CountryCount `json:"countries"`
	Devices             OrderedCounts  `json:"devices" swaggertype:"object,integer"`
}

// NLQResponse represents a natural-language query answer
type NLQResponse struct {
	Question string                 `json:"question"`
	Answer   string                 `json:"answer"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Insights []string               `json:"insights"`
}
