package consumer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sightlinehq/sightline/internal/aggregate"
	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/geo"
	"github.com/sightlinehq/sightline/internal/queue"
)

// TrackMessageParser turns queued track envelopes into storable events.
// This is where ingestion-time enrichment happens: geolocation is resolved
// from the client IP, the IP is reduced to a short hash (or dropped), and
// events submitted without consent are stripped of PII before storage.
type TrackMessageParser struct {
	resolver geo.Resolver
}

// NewTrackMessageParser creates a parser with the given geo resolver.
func NewTrackMessageParser(resolver geo.Resolver) *TrackMessageParser {
	return &TrackMessageParser{resolver: resolver}
}

// Parse decodes a track message and builds the event to store.
func (p *TrackMessageParser) Parse(body []byte) (*domain.Event, error) {
	var msg queue.TrackMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal track message: %w", err)
	}

	if msg.ProjectID == "" || msg.SessionID == "" || msg.EventType == "" {
		return nil, fmt.Errorf("track message missing required fields")
	}

	// The API stamps ReceivedAt when it accepts the call; client clocks
	// are never trusted.
	timestamp := time.Now().UTC()
	if msg.ReceivedAt > 0 {
		timestamp = time.Unix(msg.ReceivedAt, 0).UTC()
	}

	eventID := msg.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	event := &domain.Event{
		EventID:      eventID,
		ProjectID:    msg.ProjectID,
		SessionID:    msg.SessionID,
		EventType:    msg.EventType,
		EventName:    msg.EventName,
		PageURL:      msg.PageURL,
		PageTitle:    msg.PageTitle,
		Referrer:     msg.Referrer,
		UserAgent:    msg.UserAgent,
		ConsentGiven: msg.ConsentGiven,
		Timestamp:    timestamp,
	}

	if len(msg.Properties) > 0 {
		propertiesJSON, err := json.Marshal(msg.Properties)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal properties: %w", err)
		}
		event.Properties = string(propertiesJSON)
	}

	if msg.IPAddress != "" {
		location := p.resolver.Resolve(msg.IPAddress)
		event.Country = location.CountryISO
		event.Continent = location.Continent

		if msg.AnonymizeIP {
			event.IPHash = hashIP(msg.IPAddress)
		}
	}

	if !msg.ConsentGiven {
		stripPII(event)
	}

	return event, nil
}

// hashIP reduces an IP to a short stable hash, enough for dedup-style
// queries but not reversible to an address.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:16]
}

// stripPII clears every field that could identify a visitor while keeping
// the event countable. Coarse geolocation survives; the page URL is kept
// but reduced to its normalized form so query-string payloads are
// dropped.
func stripPII(event *domain.Event) {
	event.PageURL = aggregate.NormalizePageURL(event.PageURL)
	event.PageTitle = ""
	event.Referrer = ""
	event.UserAgent = ""
	event.IPHash = ""
	event.Properties = ""
}
