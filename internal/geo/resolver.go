// Package geo resolves client IPs to coarse location at ingestion time.
// Country and continent are attached to events here, before the IP itself
// is hashed or dropped; nothing downstream ever sees a raw address.
package geo

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

// Location is the coarse result of an IP lookup. Continent names follow
// the MaxMind English names, which match the dashboard's taxonomy.
type Location struct {
	CountryISO string
	Continent  string
}

// Resolver maps a client IP to a Location. Implementations must degrade
// to the zero Location on any failure; ingestion never fails on lookup
// errors.
type Resolver interface {
	Resolve(ip string) Location
	Close() error
}

// MaxMindResolver implements Resolver backed by a GeoLite2 database file.
type MaxMindResolver struct {
	reader *geoip2.Reader
	log    *zap.Logger
}

// NewMaxMindResolver opens the GeoLite2 database at path.
func NewMaxMindResolver(path string, log *zap.Logger) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP database: %w", err)
	}

	log.Info("GeoIP database loaded", zap.String("path", path))

	return &MaxMindResolver{reader: reader, log: log}, nil
}

// Resolve looks up the IP's country and continent. Unparseable or
// unknown addresses yield the zero Location.
func (r *MaxMindResolver) Resolve(ip string) Location {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Location{}
	}

	record, err := r.reader.Country(parsed)
	if err != nil {
		r.log.Warn("GeoIP lookup failed", zap.Error(err))
		return Location{}
	}

	return Location{
		CountryISO: record.Country.IsoCode,
		Continent:  record.Continent.Names["en"],
	}
}

// Close closes the database reader.
func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}

// NopResolver implements Resolver without a database; every lookup yields
// the zero Location. Used when no GeoIP database is configured.
type NopResolver struct{}

// Resolve always returns the zero Location.
func (NopResolver) Resolve(string) Location {
	return Location{}
}

// Close is a no-op.
func (NopResolver) Close() error {
	return nil
}
