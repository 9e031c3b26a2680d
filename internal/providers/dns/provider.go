// Package dns holds the authoritative-DNS provider abstraction and the
// idempotent record sync built on top of it.
package dns

import (
	"context"
)

// Zone is a provider-hosted DNS zone.
type Zone struct {
	ID          string
	Name        string
	NameServers []string
}

// Record is a record as reported by the provider. Name is fully qualified.
type Record struct {
	ID      string
	Type    string
	Name    string
	Content string
	TTL     int
	Proxied bool
}

// Provider is the authoritative DNS API surface the sync needs.
// ResolveZone returns domain.ErrZoneNotFound when the zone does not exist.
type Provider interface {
	Name() string
	ResolveZone(ctx context.Context, domainName string) (*Zone, error)
	CreateZone(ctx context.Context, domainName string) (*Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]Record, error)
	CreateRecord(ctx context.Context, zoneID string, record *Record) error
}
