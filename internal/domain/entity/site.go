package entity

import (
	"fmt"
	"net"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeCNAME RecordType = "CNAME"
)

// Record is one desired DNS record, named by label relative to the site
// domain ("@" for the apex).
type Record struct {
	Type    RecordType `yaml:"type"`
	Name    string     `yaml:"name"`
	Content string     `yaml:"content"`
	TTL     int        `yaml:"ttl"`
	Proxied bool       `yaml:"proxied"`
}

func (r *Record) Validate() error {
	if r.Type != RecordTypeA && r.Type != RecordTypeCNAME {
		return fmt.Errorf("%w: %s", domain.ErrInvalidType, r.Type)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.Content == "" {
		return domain.RequiredField("content")
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTTL, r.TTL)
	}
	if r.Type == RecordTypeA {
		if ip := net.ParseIP(r.Content); ip == nil || ip.To4() == nil {
			return fmt.Errorf("%w: %s", domain.ErrInvalidIP, r.Content)
		}
	}
	return nil
}

// FQDN resolves the record label against a domain.
func (r *Record) FQDN(domainName string) string {
	if r.Name == "@" || r.Name == "" {
		return domainName
	}
	return r.Name + "." + domainName
}

// Site is the desired public state of the pages site. The zero set of
// Records means "derive from ExpectedIPs and PagesTarget".
type Site struct {
	Domain          string   `yaml:"domain"`
	PagesTarget     string   `yaml:"pages_target"`
	ExpectedIPs     []string `yaml:"expected_ips"`
	Records         []Record `yaml:"records"`
	RestrictedTerms []string `yaml:"restricted_terms"`
}

const (
	DefaultDomain      = "northrootlabs.com"
	DefaultPagesTarget = "northroot-labs.github.io"
	DefaultTTL         = 300
)

// DefaultExpectedIPs are the GitHub Pages apex addresses.
func DefaultExpectedIPs() []string {
	return []string{
		"185.199.108.153",
		"185.199.109.153",
		"185.199.110.153",
		"185.199.111.153",
	}
}

func DefaultSite() *Site {
	return &Site{
		Domain:      DefaultDomain,
		PagesTarget: DefaultPagesTarget,
		ExpectedIPs: DefaultExpectedIPs(),
	}
}

// DesiredRecords returns the explicit record set, or the apex+www pattern
// derived from ExpectedIPs and PagesTarget when none is configured.
func (s *Site) DesiredRecords() []Record {
	if len(s.Records) > 0 {
		return s.Records
	}
	var records []Record
	for _, ip := range s.ExpectedIPs {
		records = append(records, Record{Type: RecordTypeA, Name: "@", Content: ip, TTL: DefaultTTL})
	}
	records = append(records, Record{Type: RecordTypeCNAME, Name: "www", Content: s.PagesTarget, TTL: DefaultTTL})
	return records
}

func (s *Site) Validate() error {
	if s.Domain == "" {
		return domain.RequiredField("domain")
	}
	if !strings.Contains(s.Domain, ".") {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDomain, s.Domain)
	}
	if s.PagesTarget == "" {
		return domain.RequiredField("pages_target")
	}
	for _, ip := range s.ExpectedIPs {
		if parsed := net.ParseIP(ip); parsed == nil || parsed.To4() == nil {
			return fmt.Errorf("%w: %s", domain.ErrInvalidIP, ip)
		}
	}
	for i := range s.Records {
		if err := s.Records[i].Validate(); err != nil {
			return fmt.Errorf("records[%d]: %w", i, err)
		}
	}
	return nil
}
