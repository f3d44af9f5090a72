package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// TrackMessage is the wire envelope published for every accepted track
// call. The client IP travels only as far as the consumer, which resolves
// geolocation from it and then discards or hashes it per the project's
// privacy settings.
type TrackMessage struct {
	EventID      string                 `json:"event_id"`
	ProjectID    string                 `json:"project_id"`
	SessionID    string                 `json:"session_id"`
	EventType    string                 `json:"event_type"`
	EventName    string                 `json:"event_name,omitempty"`
	PageURL      string                 `json:"page_url,omitempty"`
	PageTitle    string                 `json:"page_title,omitempty"`
	Referrer     string                 `json:"referrer,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	IPAddress    string                 `json:"ip_address,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	ConsentGiven bool                   `json:"consent_given"`
	AnonymizeIP  bool                   `json:"anonymize_ip"`
	ReceivedAt   int64                  `json:"received_at"`
}

// QueuePublisher defines the interface for publishing track messages to a queue
type QueuePublisher interface {
	PublishTrackMessage(ctx context.Context, msg *TrackMessage) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
