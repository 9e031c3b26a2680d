package preflight

import (
	"context"
	"strings"

	"github.com/northroot-labs/pagesops/internal/infrastructure/credentials"
	"github.com/northroot-labs/pagesops/internal/infrastructure/shell"
)

// Checker probes local CLI auth state and environment variables for each
// provider. Probes never mutate anything and every probe always runs.
type Checker struct {
	runner shell.Runner
	creds  *credentials.Source
}

func NewChecker(runner shell.Runner, creds *credentials.Source) *Checker {
	return &Checker{runner: runner, creds: creds}
}

// CheckAll runs every probe in report order.
func (c *Checker) CheckAll(ctx context.Context) []CheckResult {
	var results []CheckResult
	for _, provider := range Providers() {
		results = append(results, c.Check(ctx, provider))
	}
	return results
}

func (c *Checker) Check(ctx context.Context, provider Provider) CheckResult {
	switch provider {
	case ProviderGitHub:
		return c.checkGitHub(ctx)
	case ProviderCloudflare:
		return c.checkCloudflare()
	case ProviderGcloud:
		return c.checkGcloud(ctx)
	case ProviderNamecheap:
		return c.checkNamecheap()
	}
	return CheckResult{Provider: provider, Summary: "unknown provider"}
}

func (c *Checker) checkGitHub(ctx context.Context) CheckResult {
	result := CheckResult{Provider: ProviderGitHub}
	if !c.runner.LookPath("gh") {
		result.Summary = "GitHub CLI missing"
		result.Details = []string{"Install gh and run: gh auth login"}
		return result
	}
	if _, err := c.runner.Run(ctx, "gh", "auth", "status"); err != nil {
		result.Summary = "GitHub auth missing"
		result.Details = []string{
			"gh found but not authenticated.",
			"Run: gh auth login",
		}
		return result
	}
	result.OK = true
	result.Summary = "GitHub auth ready"
	return result
}

func (c *Checker) checkCloudflare() CheckResult {
	result := CheckResult{Provider: ProviderCloudflare}
	if c.creds.Get(credentials.EnvCloudflareAPIToken) != "" {
		result.OK = true
		result.Summary = "Cloudflare token present"
		return result
	}
	result.Summary = "Cloudflare token missing"
	result.Details = []string{
		"Set CLOUDFLARE_API_TOKEN (and CLOUDFLARE_ACCOUNT_ID if creating zones).",
		"For CI, put these in protected environment secrets.",
	}
	return result
}

// checkGcloud accepts any of: an active gcloud account, workload identity
// wiring, or a service-account JSON secret. The first satisfied condition
// decides the summary.
func (c *Checker) checkGcloud(ctx context.Context) CheckResult {
	result := CheckResult{Provider: ProviderGcloud}
	if !c.runner.LookPath("gcloud") {
		result.Summary = "gcloud CLI missing"
		result.Details = []string{"Install gcloud SDK and run: gcloud auth login"}
		return result
	}

	account, _ := c.runner.Run(ctx, "gcloud", "auth", "list", "--filter=status:ACTIVE", "--format=value(account)")
	account = strings.TrimSpace(account)
	project, _ := c.runner.Run(ctx, "gcloud", "config", "get-value", "project")
	project = strings.TrimSpace(project)

	workloadProvider := c.creds.Get(credentials.EnvGCPWorkloadIdentityProvider)
	serviceAccount := c.creds.Get(credentials.EnvGCPServiceAccount)
	credsJSON := c.creds.Get(credentials.EnvGoogleCredentialsJSON)

	switch {
	case account != "":
		result.OK = true
		result.Summary = "gcloud auth ready"
		if project == "" {
			project = "(unset)"
		}
		result.Details = []string{"active_account=" + account, "project=" + project}
	case workloadProvider != "" && serviceAccount != "":
		result.OK = true
		result.Summary = "GCP workload identity wiring present"
		result.Details = []string{"Using workload identity provider + service account env vars."}
	case credsJSON != "":
		result.OK = true
		result.Summary = "GCP service account JSON secret present"
		result.Details = []string{"Prefer workload identity over long-lived key JSON when possible."}
	default:
		result.Summary = "Google Cloud auth missing"
		result.Details = []string{
			"No active gcloud auth account found.",
			"Local: gcloud auth login && gcloud config set project <project_id>",
			"CI preferred: set GCP_WORKLOAD_IDENTITY_PROVIDER + GCP_SERVICE_ACCOUNT.",
		}
	}
	return result
}

func (c *Checker) checkNamecheap() CheckResult {
	result := CheckResult{Provider: ProviderNamecheap}
	missing := c.creds.Missing(credentials.NamecheapVars()...)
	if len(missing) == 0 {
		result.OK = true
		result.Summary = "Namecheap fallback creds present"
		return result
	}
	result.Summary = "Namecheap fallback creds missing"
	result.Details = []string{
		"Missing: " + strings.Join(missing, ", "),
		"Fallback only: prefer Cloudflare DNS authority for routine operations.",
	}
	return result
}

// MissingRequired filters results down to providers that were declared
// required but are not ready, preserving report order.
func MissingRequired(results []CheckResult, required map[Provider]bool) []Provider {
	var missing []Provider
	for _, result := range results {
		if required[result.Provider] && !result.OK {
			missing = append(missing, result.Provider)
		}
	}
	return missing
}
