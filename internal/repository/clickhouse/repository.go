package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/domain"
)

// Repository implements repository.EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse event repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the events table. Events are written once and never
// updated, so a plain MergeTree ordered by (project_id, timestamp) serves
// both batch inserts and window scans.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		event_id String,
		project_id LowCardinality(String),
		session_id String,
		event_type LowCardinality(String),
		event_name String,
		page_url String,
		page_title String,
		referrer String,
		user_agent String,
		ip_hash String,
		country LowCardinality(String),
		continent LowCardinality(String),
		consent_given Bool,
		properties String,
		timestamp DateTime64(3)
	) ENGINE = MergeTree
	ORDER BY (project_id, timestamp)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		properties := event.Properties
		if properties == "" {
			properties = "{}"
		}

		err := batch.Append(
			event.EventID,
			event.ProjectID,
			event.SessionID,
			event.EventType,
			event.EventName,
			event.PageURL,
			event.PageTitle,
			event.Referrer,
			event.UserAgent,
			event.IPHash,
			event.Country,
			event.Continent,
			event.ConsentGiven,
			properties,
			event.Timestamp,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// FetchWindow returns the project's events in [from, to), ordered by
// timestamp ascending
func (r *Repository) FetchWindow(ctx context.Context, projectID string, from, to time.Time) ([]domain.Event, error) {
	query := `
		SELECT
			event_id, project_id, session_id, event_type, event_name,
			page_url, page_title, referrer, user_agent, ip_hash,
			country, continent, consent_given, properties, timestamp
		FROM events
		WHERE project_id = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC
	`

	rows, err := r.client.Conn().Query(ctx, query, projectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query event window: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close event window rows", zap.Error(err))
		}
	}(rows)

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.EventID, &e.ProjectID, &e.SessionID, &e.EventType, &e.EventName,
			&e.PageURL, &e.PageTitle, &e.Referrer, &e.UserAgent, &e.IPHash,
			&e.Country, &e.Continent, &e.ConsentGiven, &e.Properties, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event window rows: %w", err)
	}

	return events, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
