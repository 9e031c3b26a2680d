// Package credentials is the single lookup point for provider secrets.
// Every command reads environment variables through a Source so that the
// missing-variable failure message is uniform and tests can inject values.
package credentials

import (
	"os"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain"
)

// Environment variables consumed across providers. The names are part of
// the operational contract and must not change.
const (
	EnvCloudflareAPIToken  = "CLOUDFLARE_API_TOKEN"
	EnvCloudflareAccountID = "CLOUDFLARE_ACCOUNT_ID"

	EnvNamecheapAPIUser  = "NAMECHEAP_API_USER"
	EnvNamecheapAPIKey   = "NAMECHEAP_API_KEY"
	EnvNamecheapUsername = "NAMECHEAP_USERNAME"
	EnvNamecheapClientIP = "NAMECHEAP_CLIENT_IP"

	EnvGCPWorkloadIdentityProvider = "GCP_WORKLOAD_IDENTITY_PROVIDER"
	EnvGCPServiceAccount           = "GCP_SERVICE_ACCOUNT"
	EnvGoogleCredentialsJSON       = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
)

func NamecheapVars() []string {
	return []string{
		EnvNamecheapAPIUser,
		EnvNamecheapAPIKey,
		EnvNamecheapUsername,
		EnvNamecheapClientIP,
	}
}

type Source struct {
	getenv func(string) string
}

func New() *Source {
	return &Source{getenv: os.Getenv}
}

// NewFromGetenv builds a Source over an injected lookup function.
func NewFromGetenv(getenv func(string) string) *Source {
	return &Source{getenv: getenv}
}

// Get returns the trimmed value, empty when unset.
func (s *Source) Get(name string) string {
	return strings.TrimSpace(s.getenv(name))
}

// Require returns the trimmed value or an error naming the variable.
func (s *Source) Require(name string) (string, error) {
	value := s.Get(name)
	if value == "" {
		return "", domain.MissingCredential(name)
	}
	return value, nil
}

// Missing filters names down to the unset ones, preserving order.
func (s *Source) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if s.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// NamecheapAuth bundles the four registrar credentials.
type NamecheapAuth struct {
	APIUser  string
	APIKey   string
	Username string
	ClientIP string
}

// Namecheap resolves all four registrar variables, failing on the first
// missing one.
func (s *Source) Namecheap() (NamecheapAuth, error) {
	var auth NamecheapAuth
	var err error
	if auth.APIUser, err = s.Require(EnvNamecheapAPIUser); err != nil {
		return NamecheapAuth{}, err
	}
	if auth.APIKey, err = s.Require(EnvNamecheapAPIKey); err != nil {
		return NamecheapAuth{}, err
	}
	if auth.Username, err = s.Require(EnvNamecheapUsername); err != nil {
		return NamecheapAuth{}, err
	}
	if auth.ClientIP, err = s.Require(EnvNamecheapClientIP); err != nil {
		return NamecheapAuth{}, err
	}
	return auth, nil
}
