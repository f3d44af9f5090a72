package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/config"
)

// Client wraps the Postgres connection pool holding tenants and projects
type Client struct {
	db  *sql.DB
	log *zap.Logger
}

// NewClient opens and verifies a Postgres connection
func NewClient(ctx context.Context, cfg *config.Postgres, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to Postgres",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.String("database", cfg.Database))

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open Postgres connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	log.Info("Postgres connection established successfully")

	return &Client{db: db, log: log}, nil
}

// DB returns the underlying connection pool
func (c *Client) DB() *sql.DB {
	return c.db
}

// InitSchema creates the tenant and project tables
func (c *Client) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES tenants (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		domain TEXT NOT NULL,
		tracking_code UUID NOT NULL,
		anonymize_ip BOOLEAN NOT NULL DEFAULT true,
		require_consent BOOLEAN NOT NULL DEFAULT true,
		respect_dnt BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_projects_tenant ON projects (tenant_id);
	`

	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create Postgres schema: %w", err)
	}

	c.log.Info("Postgres schema initialized successfully")
	return nil
}

// Ping checks if the Postgres connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the connection pool
func (c *Client) Close() error {
	c.log.Info("Closing Postgres connection")
	return c.db.Close()
}
