package service

import (
	"context"

	"github.com/sightlinehq/sightline/internal/dto"
)

// AuthServicer defines the interface for tenant account operations
type AuthServicer interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// ProjectServicer defines the interface for project management operations
type ProjectServicer interface {
	CreateProject(ctx context.Context, tenantID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, tenantID string) ([]dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID, tenantID string) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID, tenantID string) error
}

// TrackServicer defines the interface for event intake operations
type TrackServicer interface {
	Track(ctx context.Context, req *dto.TrackEventRequest, clientIP string, doNotTrack bool) (*dto.TrackEventResponse, error)
}

// AnalyticsServicer defines the interface for analytics read operations
type AnalyticsServicer interface {
	Overview(ctx context.Context, projectID, tenantID string, days int) (*dto.OverviewResponse, error)
	ExportCSV(ctx context.Context, projectID, tenantID string, days int) ([]byte, error)
	AnswerQuestion(ctx context.Context, tenantID string, req *dto.NLQRequest) (*dto.NLQResponse, error)
}
