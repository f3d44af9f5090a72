package domain

import "time"

// EventTypePageview is the event type every tracker emits on page load.
// Any other value is treated as a custom event.
const EventTypePageview = "pageview"

// Event represents a raw analytics event stored in ClickHouse.
// Events are append-only: once ingested they are never mutated, and every
// overview is recomputed from them.
type Event struct {
	EventID      string    `ch:"event_id"`
	ProjectID    string    `ch:"project_id"`
	SessionID    string    `ch:"session_id"`
	EventType    string    `ch:"event_type"`
	EventName    string    `ch:"event_name"`
	PageURL      string    `ch:"page_url"`
	PageTitle    string    `ch:"page_title"`
	Referrer     string    `ch:"referrer"`
	UserAgent    string    `ch:"user_agent"`
	IPHash       string    `ch:"ip_hash"`
	Country      string    `ch:"country"`
	Continent    string    `ch:"continent"`
	ConsentGiven bool      `ch:"consent_given"`
	Properties   string    `ch:"properties"`
	Timestamp    time.Time `ch:"timestamp"`
}

// IsPageview reports whether the event is a pageview.
func (e *Event) IsPageview() bool {
	return e.EventType == EventTypePageview
}
