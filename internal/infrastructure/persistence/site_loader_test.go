package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/domain/entity"
)

func writeSiteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagesops.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSite_AbsentFileUsesDefaults(t *testing.T) {
	site, err := LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	if site.Domain != entity.DefaultDomain {
		t.Fatalf("Domain = %q, want default", site.Domain)
	}
	if len(site.DesiredRecords()) != 5 {
		t.Fatalf("DesiredRecords() = %d records, want 5", len(site.DesiredRecords()))
	}
}

func TestLoadSite_OverridesDefaults(t *testing.T) {
	path := writeSiteFile(t, `
domain: example.org
pages_target: example.github.io
restricted_terms:
  - draft only
`)
	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	if site.Domain != "example.org" {
		t.Fatalf("Domain = %q, want example.org", site.Domain)
	}
	if site.PagesTarget != "example.github.io" {
		t.Fatalf("PagesTarget = %q", site.PagesTarget)
	}
	// Untouched keys keep their defaults.
	if len(site.ExpectedIPs) != 4 {
		t.Fatalf("ExpectedIPs = %v, want the 4 defaults", site.ExpectedIPs)
	}
	if len(site.RestrictedTerms) != 1 || site.RestrictedTerms[0] != "draft only" {
		t.Fatalf("RestrictedTerms = %v", site.RestrictedTerms)
	}
	// Derived records pick up the new target.
	records := site.DesiredRecords()
	if records[4].Content != "example.github.io" {
		t.Fatalf("www record content = %q", records[4].Content)
	}
}

func TestLoadSite_ExplicitRecords(t *testing.T) {
	path := writeSiteFile(t, `
records:
  - type: A
    name: "@"
    content: 203.0.113.10
    ttl: 60
`)
	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	records := site.DesiredRecords()
	if len(records) != 1 || records[0].Content != "203.0.113.10" {
		t.Fatalf("DesiredRecords() = %+v", records)
	}
}

func TestLoadSite_InvalidYAML(t *testing.T) {
	path := writeSiteFile(t, "domain: [unclosed")
	_, err := LoadSite(path)
	if !errors.Is(err, domain.ErrConfigParseFail) {
		t.Fatalf("LoadSite() error = %v, want ErrConfigParseFail", err)
	}
}

func TestLoadSite_InvalidSite(t *testing.T) {
	path := writeSiteFile(t, "domain: bad")
	_, err := LoadSite(path)
	if !errors.Is(err, domain.ErrInvalidDomain) {
		t.Fatalf("LoadSite() error = %v, want ErrInvalidDomain", err)
	}
}
