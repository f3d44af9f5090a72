package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
	"github.com/sightlinehq/sightline/internal/queue"
	"github.com/sightlinehq/sightline/internal/repository"
)

// Track response statuses
const (
	TrackStatusQueued  = "tracked"
	TrackStatusIgnored = "ignored"
)

// TrackService validates incoming events and hands them to the queue.
// It never writes to storage itself; the consumer owns ingestion.
type TrackService struct {
	projects  repository.ProjectRepository
	publisher queue.QueuePublisher
	log       *zap.Logger
}

// NewTrackService creates a new track service
func NewTrackService(projects repository.ProjectRepository, publisher queue.QueuePublisher, log *zap.Logger) *TrackService {
	return &TrackService{
		projects:  projects,
		publisher: publisher,
		log:       log,
	}
}

// Track accepts an event from the tracking snippet. The project's privacy
// settings decide what happens next: DNT requests are dropped when the
// project honors them, and the consent flag travels with the message so
// the consumer can strip PII before storage.
func (s *TrackService) Track(ctx context.Context, req *dto.TrackEventRequest, clientIP string, doNotTrack bool) (*dto.TrackEventResponse, error) {
	project, err := s.projects.GetForTracking(ctx, req.ProjectID, req.TrackingCode)
	if err != nil {
		return nil, fmt.Errorf("tracking code rejected: %w", domain.ErrForbidden)
	}

	if project.PrivacySettings.RespectDNT && doNotTrack {
		return &dto.TrackEventResponse{Status: TrackStatusIgnored}, nil
	}

	// Projects that never ask for consent treat every event as consented.
	consent := req.ConsentGiven || !project.PrivacySettings.RequireConsent

	msg := &queue.TrackMessage{
		EventID:      uuid.NewString(),
		ProjectID:    project.ID,
		SessionID:    req.SessionID,
		EventType:    req.EventType,
		EventName:    req.EventName,
		PageURL:      req.PageURL,
		PageTitle:    req.PageTitle,
		Referrer:     req.Referrer,
		UserAgent:    req.UserAgent,
		IPAddress:    clientIP,
		Properties:   req.Properties,
		ConsentGiven: consent,
		AnonymizeIP:  project.PrivacySettings.AnonymizeIP,
		ReceivedAt:   time.Now().UTC().Unix(),
	}

	if err := s.publisher.PublishTrackMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to publish track message: %w", err)
	}

	s.log.Debug("Event queued",
		zap.String("project_id", project.ID),
		zap.String("event_type", req.EventType))

	return &dto.TrackEventResponse{
		Status:  TrackStatusQueued,
		EventID: msg.EventID,
	}, nil
}
