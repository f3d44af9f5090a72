package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
)

// ProjectRepository implements repository.ProjectRepository for Postgres
type ProjectRepository struct {
	client *Client
	log    *zap.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(client *Client, log *zap.Logger) *ProjectRepository {
	return &ProjectRepository{client: client, log: log}
}

const projectColumns = `
	id, tenant_id, name, domain, tracking_code,
	anonymize_ip, require_consent, respect_dnt, created_at
`

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (
			id, tenant_id, name, domain, tracking_code,
			anonymize_ip, require_consent, respect_dnt, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.client.DB().ExecContext(ctx, query,
		project.ID, project.TenantID, project.Name, project.Domain, project.TrackingCode,
		project.PrivacySettings.AnonymizeIP, project.PrivacySettings.RequireConsent,
		project.PrivacySettings.RespectDNT, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// ListByTenant returns the tenant's projects, newest first
func (r *ProjectRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, projectColumns)

	rows, err := r.client.DB().QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close project rows", zap.Error(err))
		}
	}()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// GetOwned returns the project only when it belongs to the tenant
func (r *ProjectRepository) GetOwned(ctx context.Context, projectID, tenantID string) (*domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE id = $1 AND tenant_id = $2
	`, projectColumns)

	return r.getOne(ctx, query, projectID, tenantID)
}

// GetForTracking returns the project only when its tracking code matches
func (r *ProjectRepository) GetForTracking(ctx context.Context, projectID, trackingCode string) (*domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE id = $1 AND tracking_code = $2
	`, projectColumns)

	return r.getOne(ctx, query, projectID, trackingCode)
}

// Delete removes the project when it belongs to the tenant
func (r *ProjectRepository) Delete(ctx context.Context, projectID, tenantID string) error {
	result, err := r.client.DB().ExecContext(ctx,
		`DELETE FROM projects WHERE id = $1 AND tenant_id = $2`, projectID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

func (r *ProjectRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Project, error) {
	row := r.client.DB().QueryRowContext(ctx, query, args...)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	return project, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	err := row.Scan(
		&project.ID, &project.TenantID, &project.Name, &project.Domain, &project.TrackingCode,
		&project.PrivacySettings.AnonymizeIP, &project.PrivacySettings.RequireConsent,
		&project.PrivacySettings.RespectDNT, &project.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project row: %w", err)
	}

	return project, nil
}
