package dns

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v2"
	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"
	"github.com/cloudflare/cloudflare-go/v2/zones"

	domainerr "github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
)

type CloudflareProvider struct {
	client    *cloudflare.Client
	accountID string
}

func NewCloudflareProvider(apiToken string, accountID string) *CloudflareProvider {
	client := cloudflare.NewClient(
		option.WithAPIToken(apiToken),
	)
	return &CloudflareProvider{client: client, accountID: accountID}
}

func (p *CloudflareProvider) Name() string {
	return "cloudflare"
}

func (p *CloudflareProvider) ResolveZone(ctx context.Context, domainName string) (*Zone, error) {
	logger.Debug("resolving zone", "provider", "cloudflare", "domain", domainName)

	resp, err := p.client.Zones.List(ctx, zones.ZoneListParams{
		Name: cloudflare.F(domainName),
	})
	if err != nil {
		return nil, domainerr.WrapOp("list zones", err)
	}
	if len(resp.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrZoneNotFound, domainName)
	}

	zone := resp.Result[0]
	return &Zone{ID: zone.ID, Name: zone.Name, NameServers: zone.NameServers}, nil
}

func (p *CloudflareProvider) CreateZone(ctx context.Context, domainName string) (*Zone, error) {
	logger.Debug("creating zone", "provider", "cloudflare", "domain", domainName, "account", p.accountID)

	zone, err := p.client.Zones.New(ctx, zones.ZoneNewParams{
		Account: cloudflare.F(zones.ZoneNewParamsAccount{
			ID: cloudflare.F(p.accountID),
		}),
		Name: cloudflare.F(domainName),
		Type: cloudflare.F(zones.TypeFull),
	})
	if err != nil {
		return nil, domainerr.WrapOp("create zone", err)
	}

	logger.Info("zone created", "provider", "cloudflare", "domain", domainName, "zone_id", zone.ID)
	return &Zone{ID: zone.ID, Name: zone.Name, NameServers: zone.NameServers}, nil
}

func (p *CloudflareProvider) ListRecords(ctx context.Context, zoneID string) ([]Record, error) {
	var records []Record
	pager := p.client.DNS.Records.ListAutoPaging(ctx, cfdns.RecordListParams{
		ZoneID: cloudflare.F(zoneID),
	})
	for pager.Next() {
		record := pager.Current()
		content := ""
		if str, ok := record.Content.(string); ok {
			content = str
		}
		records = append(records, Record{
			ID:      record.ID,
			Type:    string(record.Type),
			Name:    record.Name,
			Content: content,
			TTL:     int(record.TTL),
			Proxied: record.Proxied,
		})
	}
	if err := pager.Err(); err != nil {
		return nil, domainerr.WrapOp("list records", err)
	}

	logger.Debug("listed records", "provider", "cloudflare", "zone_id", zoneID, "count", len(records))
	return records, nil
}

func (p *CloudflareProvider) CreateRecord(ctx context.Context, zoneID string, record *Record) error {
	ttl := record.TTL
	if ttl == 0 {
		ttl = 1
	}

	params := cfdns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Record: buildRecordParam(record, ttl),
	}

	if _, err := p.client.DNS.Records.New(ctx, params); err != nil {
		logger.Error("failed to create record", "zone_id", zoneID, "name", record.Name, "error", err)
		return domainerr.WrapOp("create record", err)
	}

	logger.Info("record created", "provider", "cloudflare", "zone_id", zoneID, "name", record.Name, "type", record.Type)
	return nil
}

func buildRecordParam(record *Record, ttl int) cfdns.RecordUnionParam {
	switch record.Type {
	case "CNAME":
		return cfdns.CNAMERecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(cfdns.CNAMERecordTypeCNAME),
			Content: cloudflare.F[interface{}](record.Content),
			TTL:     cloudflare.F(cfdns.TTL(ttl)),
			Proxied: cloudflare.F(record.Proxied),
		}
	default:
		return cfdns.ARecordParam{
			Name:    cloudflare.F(record.Name),
			Type:    cloudflare.F(cfdns.ARecordTypeA),
			Content: cloudflare.F(record.Content),
			TTL:     cloudflare.F(cfdns.TTL(ttl)),
			Proxied: cloudflare.F(record.Proxied),
		}
	}
}
