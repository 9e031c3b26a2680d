package dns

import (
	"context"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain/entity"
)

type UpsertStatus string

const (
	StatusExists  UpsertStatus = "exists"
	StatusCreated UpsertStatus = "created"
)

// SyncResult reports one upserted record.
type SyncResult struct {
	FQDN    string
	Type    string
	Content string
	Status  UpsertStatus
}

// Syncer upserts desired records into a zone. Upserts are keyed by
// (type, fqdn, content); a matching record means no write at all, so
// re-running with identical desired state issues zero creates.
type Syncer struct {
	provider Provider
}

func NewSyncer(provider Provider) *Syncer {
	return &Syncer{provider: provider}
}

// Upsert lists the zone and creates the record only when no record with
// the same type, name, and content exists. Content comparison ignores a
// trailing dot on either side.
func (s *Syncer) Upsert(ctx context.Context, zoneID, domainName string, desired entity.Record) (*SyncResult, error) {
	fqdn := desired.FQDN(domainName)
	result := &SyncResult{
		FQDN:    fqdn,
		Type:    string(desired.Type),
		Content: desired.Content,
	}

	existing, err := s.provider.ListRecords(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	for _, record := range existing {
		if record.Type == string(desired.Type) &&
			record.Name == fqdn &&
			contentEqual(record.Content, desired.Content) {
			result.Status = StatusExists
			return result, nil
		}
	}

	err = s.provider.CreateRecord(ctx, zoneID, &Record{
		Type:    string(desired.Type),
		Name:    fqdn,
		Content: desired.Content,
		TTL:     desired.TTL,
		Proxied: desired.Proxied,
	})
	if err != nil {
		return nil, err
	}

	result.Status = StatusCreated
	return result, nil
}

// SyncAll upserts every desired record in order, stopping on the first
// provider error.
func (s *Syncer) SyncAll(ctx context.Context, zoneID, domainName string, desired []entity.Record) ([]*SyncResult, error) {
	var results []*SyncResult
	for _, record := range desired {
		result, err := s.Upsert(ctx, zoneID, domainName, record)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func contentEqual(a, b string) bool {
	return strings.TrimSuffix(a, ".") == strings.TrimSuffix(b, ".")
}
