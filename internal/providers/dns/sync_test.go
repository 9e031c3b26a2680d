package dns

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northroot-labs/pagesops/internal/domain/entity"
)

// fakeProvider records every call so tests can assert on write counts.
type fakeProvider struct {
	records []Record

	listCalls   int
	createCalls int
	createErr   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) ResolveZone(ctx context.Context, domainName string) (*Zone, error) {
	return &Zone{ID: "zone-1", Name: domainName}, nil
}

func (f *fakeProvider) CreateZone(ctx context.Context, domainName string) (*Zone, error) {
	return &Zone{ID: "zone-1", Name: domainName, NameServers: []string{"a.ns", "b.ns"}}, nil
}

func (f *fakeProvider) ListRecords(ctx context.Context, zoneID string) ([]Record, error) {
	f.listCalls++
	return append([]Record(nil), f.records...), nil
}

func (f *fakeProvider) CreateRecord(ctx context.Context, zoneID string, record *Record) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	record.ID = fmt.Sprintf("rec-%d", f.createCalls)
	f.records = append(f.records, *record)
	return nil
}

func desiredPagesRecords() []entity.Record {
	site := entity.DefaultSite()
	return site.DesiredRecords()
}

func TestSyncer_Upsert_CreatesWhenAbsent(t *testing.T) {
	provider := &fakeProvider{}
	syncer := NewSyncer(provider)

	result, err := syncer.Upsert(context.Background(), "zone-1", "northrootlabs.com", entity.Record{
		Type: entity.RecordTypeA, Name: "@", Content: "185.199.108.153", TTL: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, result.Status)
	assert.Equal(t, "northrootlabs.com", result.FQDN)
	assert.Equal(t, 1, provider.createCalls)
}

func TestSyncer_Upsert_ExistsPerformsNoWrite(t *testing.T) {
	provider := &fakeProvider{
		records: []Record{
			{Type: "A", Name: "northrootlabs.com", Content: "185.199.108.153", TTL: 300},
		},
	}
	syncer := NewSyncer(provider)

	result, err := syncer.Upsert(context.Background(), "zone-1", "northrootlabs.com", entity.Record{
		Type: entity.RecordTypeA, Name: "@", Content: "185.199.108.153", TTL: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExists, result.Status)
	assert.Zero(t, provider.createCalls)
}

func TestSyncer_Upsert_TrailingDotInsensitive(t *testing.T) {
	provider := &fakeProvider{
		records: []Record{
			{Type: "CNAME", Name: "www.northrootlabs.com", Content: "northroot-labs.github.io."},
		},
	}
	syncer := NewSyncer(provider)

	result, err := syncer.Upsert(context.Background(), "zone-1", "northrootlabs.com", entity.Record{
		Type: entity.RecordTypeCNAME, Name: "www", Content: "northroot-labs.github.io", TTL: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExists, result.Status)
	assert.Zero(t, provider.createCalls)
}

func TestSyncer_Upsert_SameNameDifferentContentCreates(t *testing.T) {
	provider := &fakeProvider{
		records: []Record{
			{Type: "A", Name: "northrootlabs.com", Content: "185.199.108.153"},
		},
	}
	syncer := NewSyncer(provider)

	result, err := syncer.Upsert(context.Background(), "zone-1", "northrootlabs.com", entity.Record{
		Type: entity.RecordTypeA, Name: "@", Content: "185.199.109.153", TTL: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, result.Status)
	assert.Equal(t, 1, provider.createCalls)
}

func TestSyncer_SyncAll_Idempotent(t *testing.T) {
	provider := &fakeProvider{}
	syncer := NewSyncer(provider)
	desired := desiredPagesRecords()

	first, err := syncer.SyncAll(context.Background(), "zone-1", "northrootlabs.com", desired)
	require.NoError(t, err)
	require.Len(t, first, len(desired))
	for _, result := range first {
		assert.Equal(t, StatusCreated, result.Status)
	}
	assert.Equal(t, len(desired), provider.createCalls)

	second, err := syncer.SyncAll(context.Background(), "zone-1", "northrootlabs.com", desired)
	require.NoError(t, err)
	require.Len(t, second, len(desired))
	for _, result := range second {
		assert.Equal(t, StatusExists, result.Status)
	}
	// No additional writes on the second pass.
	assert.Equal(t, len(desired), provider.createCalls)
}

func TestSyncer_SyncAll_StopsOnProviderError(t *testing.T) {
	provider := &fakeProvider{createErr: fmt.Errorf("boom")}
	syncer := NewSyncer(provider)

	results, err := syncer.SyncAll(context.Background(), "zone-1", "northrootlabs.com", desiredPagesRecords())
	require.Error(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, provider.createCalls)
}
