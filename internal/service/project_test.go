package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) GetOwned(ctx context.Context, projectID, tenantID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) GetForTracking(ctx context.Context, projectID, trackingCode string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, projectID, tenantID string) error {
	args := m.Called(ctx, projectID, tenantID)
	return args.Error(0)
}

func TestProjectService_CreateProject(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	service := NewProjectService(mockProjects, zap.NewNop())

	var created *domain.Project
	mockProjects.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Project)
		}).Return(nil)

	resp, err := service.CreateProject(context.Background(), "tenant-1", &dto.CreateProjectRequest{
		Name:   "Marketing Site",
		Domain: "https://www.Acme.dev/",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tenant-1", resp.TenantID)
	assert.Equal(t, "Marketing Site", resp.Name)
	assert.Equal(t, "acme.dev", resp.Domain)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.TrackingCode)
	assert.NotEqual(t, resp.ID, resp.TrackingCode)

	// New projects get the strictest privacy defaults.
	assert.True(t, resp.PrivacySettings.AnonymizeIP)
	assert.True(t, resp.PrivacySettings.RequireConsent)
	assert.True(t, resp.PrivacySettings.RespectDNT)

	assert.Equal(t, created.ID, resp.ID)
	mockProjects.AssertExpectations(t)
}

func TestProjectService_ListProjects(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	service := NewProjectService(mockProjects, zap.NewNop())

	createdAt := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	projects := []domain.Project{
		{ID: "p2", TenantID: "tenant-1", Name: "Docs", Domain: "docs.acme.dev", CreatedAt: createdAt},
		{ID: "p1", TenantID: "tenant-1", Name: "Site", Domain: "acme.dev", CreatedAt: createdAt},
	}

	mockProjects.On("ListByTenant", mock.Anything, "tenant-1").Return(projects, nil)

	resp, err := service.ListProjects(context.Background(), "tenant-1")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "p2", resp[0].ID)
	assert.Equal(t, "2025-03-15T12:00:00Z", resp[0].CreatedAt)
}

func TestProjectService_GetProject_NotOwned(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	service := NewProjectService(mockProjects, zap.NewNop())

	mockProjects.On("GetOwned", mock.Anything, "p1", "tenant-2").
		Return(nil, fmt.Errorf("project not found: %w", domain.ErrNotFound))

	_, err := service.GetProject(context.Background(), "p1", "tenant-2")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_DeleteProject(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	service := NewProjectService(mockProjects, zap.NewNop())

	mockProjects.On("Delete", mock.Anything, "p1", "tenant-1").Return(nil)

	err := service.DeleteProject(context.Background(), "p1", "tenant-1")

	assert.NoError(t, err)
	mockProjects.AssertExpectations(t)
}
