package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sightlinehq/sightline/internal/auth"
	"github.com/sightlinehq/sightline/internal/domain"
	"github.com/sightlinehq/sightline/internal/dto"
	"github.com/sightlinehq/sightline/internal/repository"
)

// AuthService handles tenant signup and login
type AuthService struct {
	tenants    repository.TenantRepository
	tokens     *auth.TokenIssuer
	bcryptCost int
	log        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(tenants repository.TenantRepository, tokens *auth.TokenIssuer, bcryptCost int, log *zap.Logger) *AuthService {
	return &AuthService{
		tenants:    tenants,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register creates a tenant account and returns a signed token for it.
// Email uniqueness is enforced by the store; a duplicate surfaces as a
// validation error.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenant := &domain.Tenant{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}

	s.log.Info("Tenant registered", zap.String("tenant_id", tenant.ID))

	return s.authResponse(tenant)
}

// Login verifies credentials and returns a signed token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	tenant, err := s.tenants.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword(tenant.PasswordHash, []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	s.log.Info("Tenant logged in", zap.String("tenant_id", tenant.ID))

	return s.authResponse(tenant)
}

func (s *AuthService) authResponse(tenant *domain.Tenant) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(tenant.ID, tenant.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		Tenant: dto.TenantInfo{
			ID:    tenant.ID,
			Name:  tenant.Name,
			Email: tenant.Email,
		},
	}, nil
}
