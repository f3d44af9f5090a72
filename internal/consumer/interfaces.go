package consumer

import (
	"github.com/sightlinehq/sightline/internal/domain"
)

// MessageParser defines the interface for turning raw message bytes into
// storable events
type MessageParser interface {
	Parse(body []byte) (*domain.Event, error)
}
