package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
	"github.com/sightlinehq/sightline/internal/repository"
)

// ProjectService handles project management for authenticated tenants
type ProjectService struct {
	projects repository.ProjectRepository
	log      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectRepository, log *zap.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		log:      log,
	}
}

// CreateProject registers a new tracked site for the tenant. The tracking
// code is generated here and never changes for the project's lifetime.
func (s *ProjectService) CreateProject(ctx context.Context, tenantID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            req.Name,
		Domain:          normalizeDomain(req.Domain),
		TrackingCode:    uuid.NewString(),
		PrivacySettings: domain.DefaultPrivacySettings(),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info("Project created",
		zap.String("project_id", project.ID),
		zap.String("tenant_id", tenantID))

	return projectResponse(project), nil
}

// ListProjects returns the tenant's projects, newest first
func (s *ProjectService) ListProjects(ctx context.Context, tenantID string) ([]dto.ProjectResponse, error) {
	projects, err := s.projects.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *projectResponse(&projects[i]))
	}

	return responses, nil
}

// GetProject returns one project if it belongs to the tenant
func (s *ProjectService) GetProject(ctx context.Context, projectID, tenantID string) (*dto.ProjectResponse, error) {
	project, err := s.projects.GetOwned(ctx, projectID, tenantID)
	if err != nil {
		return nil, err
	}

	return projectResponse(project), nil
}

// DeleteProject removes the project if it belongs to the tenant. Events
// already ingested for it remain in the log.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, tenantID string) error {
	if err := s.projects.Delete(ctx, projectID, tenantID); err != nil {
		return err
	}

	s.log.Info("Project deleted",
		zap.String("project_id", projectID),
		zap.String("tenant_id", tenantID))

	return nil
}

// normalizeDomain reduces a user-supplied domain to a bare lowercase host
func normalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	return strings.TrimSuffix(d, "/")
}

func projectResponse(project *domain.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:           project.ID,
		TenantID:     project.TenantID,
		Name:         project.Name,
		Domain:       project.Domain,
		TrackingCode: project.TrackingCode,
		PrivacySettings: dto.PrivacySettingsInfo{
			AnonymizeIP:    project.PrivacySettings.AnonymizeIP,
			RequireConsent: project.PrivacySettings.RequireConsent,
			RespectDNT:     project.PrivacySettings.RespectDNT,
		},
		CreatedAt: project.CreatedAt.UTC().Format(time.RFC3339),
	}
}
