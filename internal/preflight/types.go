package preflight

// Provider is one of the fixed set of external services the site
// operations depend on.
type Provider string

const (
	ProviderGitHub     Provider = "github"
	ProviderCloudflare Provider = "cloudflare"
	ProviderGcloud     Provider = "gcloud"
	ProviderNamecheap  Provider = "namecheap"
)

// Providers returns every known provider in report order.
func Providers() []Provider {
	return []Provider{ProviderGitHub, ProviderCloudflare, ProviderGcloud, ProviderNamecheap}
}

// Known reports whether name is a valid provider selector.
func Known(name string) bool {
	for _, p := range Providers() {
		if string(p) == name {
			return true
		}
	}
	return false
}

// CheckResult is the outcome of one provider probe: a readiness flag, a
// one-line summary, and ordered remediation details.
type CheckResult struct {
	Provider Provider
	OK       bool
	Summary  string
	Details  []string
}
