package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint failures
const uniqueViolation = "23505"

// TenantRepository implements repository.TenantRepository for Postgres
type TenantRepository struct {
	client *Client
	log    *zap.Logger
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(client *Client, log *zap.Logger) *TenantRepository {
	return &TenantRepository{client: client, log: log}
}

// Create inserts a new tenant. A duplicate email maps to ErrValidation.
func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.client.DB().ExecContext(ctx, query,
		tenant.ID, tenant.Name, tenant.Email, tenant.PasswordHash, tenant.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("email already registered: %w", domain.ErrValidation)
		}
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

// GetByEmail returns the tenant with the given email
func (r *TenantRepository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM tenants
		WHERE email = $1
	`

	tenant := &domain.Tenant{}
	err := r.client.DB().QueryRowContext(ctx, query, email).Scan(
		&tenant.ID, &tenant.Name, &tenant.Email, &tenant.PasswordHash, &tenant.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tenant %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tenant by email: %w", err)
	}

	return tenant, nil
}
