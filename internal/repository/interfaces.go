package repository

import (
	"context"
	"time"

	"github.com/sightlinehq/sightline/internal/domain"
)

// EventRepository defines the interface for the append-only event log
type EventRepository interface {
	// InsertBatch inserts a batch of events into the log
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// FetchWindow returns the project's events with timestamps in
	// [from, to), ordered by timestamp ascending
	FetchWindow(ctx context.Context, projectID string, from, to time.Time) ([]domain.Event, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

// TenantRepository defines the interface for tenant account storage
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
}

// ProjectRepository defines the interface for project storage
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error

	// ListByTenant returns the tenant's projects, newest first
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error)

	// GetOwned returns the project only when it belongs to the tenant
	GetOwned(ctx context.Context, projectID, tenantID string) (*domain.Project, error)

	// GetForTracking returns the project only when its tracking code matches
	GetForTracking(ctx context.Context, projectID, trackingCode string) (*domain.Project, error)

	Delete(ctx context.Context, projectID, tenantID string) error
}
