package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds settings shared by both binaries
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Postgres holds tenant/project store settings
type Postgres struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
	Database string `envconfig:"POSTGRES_DB" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:""`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

// ClickHouse holds event store settings
type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

// SQS holds track queue settings
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

// Redis holds overview cache settings. The cache is optional: an empty
// address disables it.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	TTLSec   int    `envconfig:"OVERVIEW_CACHE_TTL_SEC" default:"60"`
}

// Auth holds token settings
type Auth struct {
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"168"`
	BCryptCost    int    `envconfig:"BCRYPT_COST" default:"10"`
}

// NLQ holds natural-language query settings
type NLQ struct {
	APIKey  string `envconfig:"NLQ_API_KEY" default:""`
	BaseURL string `envconfig:"NLQ_BASE_URL" default:""`
	Model   string `envconfig:"NLQ_MODEL" default:"gpt-4o-mini"`
}

// GeoIP holds ingestion-side geolocation settings. An empty path disables
// enrichment; events are stored without country/continent.
type GeoIP struct {
	DatabasePath string `envconfig:"GEOIP_DB_PATH" default:""`
}

// Consumer holds ingestion pipeline settings
type Consumer struct {
	BatchSizeMax    int    `envconfig:"CONSUMER_BATCH_SIZE_MAX" default:"2000"`
	BatchTimeoutSec int    `envconfig:"CONSUMER_BATCH_TIMEOUT_SEC" default:"10"`
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
}

// Analytics holds overview computation settings
type Analytics struct {
	QueryTimeoutSec int `envconfig:"ANALYTICS_QUERY_TIMEOUT_SEC" default:"5"`
}

// Config is the full service configuration
type Config struct {
	Service    Service
	Postgres   Postgres
	ClickHouse ClickHouse
	SQS        SQS
	Redis      Redis
	Auth       Auth
	NLQ        NLQ
	GeoIP      GeoIP
	Consumer   Consumer
	Analytics  Analytics
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// DSN builds the Postgres connection string
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		p.Host, p.Port, p.Database, p.User, p.Password, p.SSLMode)
}
