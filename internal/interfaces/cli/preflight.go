package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/infrastructure/credentials"
	"github.com/northroot-labs/pagesops/internal/infrastructure/shell"
	"github.com/northroot-labs/pagesops/internal/preflight"
)

var (
	preflightRequire []string
	preflightStrict  bool
	preflightContext string
)

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Check provider credentials and toolchain auth",
	Long: "Probe local CLI auth state and environment variables for GitHub, " +
		"Cloudflare, Google Cloud, and Namecheap. Non-fatal by default; " +
		"--strict fails when a required provider is not ready.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runPreflight())
	},
}

func init() {
	rootCmd.AddCommand(preflightCmd)

	preflightCmd.Flags().StringSliceVar(&preflightRequire, "require", nil, "Providers that must be ready (github, cloudflare, gcloud, namecheap)")
	preflightCmd.Flags().BoolVar(&preflightStrict, "strict", false, "Fail if any required provider is not ready")
	preflightCmd.Flags().StringVar(&preflightContext, "context", "local", "Execution context (local, ci)")
}

func runPreflight() int {
	if preflightContext != "local" && preflightContext != "ci" {
		fmt.Fprintf(os.Stderr, "invalid --context %q (choices: local, ci)\n", preflightContext)
		return domain.ExitMissingConfig
	}

	required := map[preflight.Provider]bool{}
	for _, name := range preflightRequire {
		if !preflight.Known(name) {
			fmt.Fprintf(os.Stderr, "unknown provider %q (choices: github, cloudflare, gcloud, namecheap)\n", name)
			return domain.ExitMissingConfig
		}
		required[preflight.Provider(name)] = true
	}

	checker := preflight.NewChecker(shell.New(), credentials.New())
	results := checker.CheckAll(context.Background())

	fmt.Printf("preflight context: %s\n", preflightContext)
	for _, result := range results {
		marker := okStyle.Render("[OK]")
		if !result.OK {
			marker = warnStyle.Render("[WARN]")
		}
		requiredMarker := ""
		if required[result.Provider] {
			requiredMarker = " (required)"
		}
		fmt.Printf("%s %s%s: %s\n", marker, result.Provider, requiredMarker, result.Summary)
		for _, detail := range result.Details {
			fmt.Printf("  - %s\n", detail)
		}
	}

	missing := preflight.MissingRequired(results, required)
	if len(missing) == 0 {
		return domain.ExitOK
	}

	names := make([]string, len(missing))
	for i, provider := range missing {
		names[i] = string(provider)
	}

	if preflightStrict {
		fmt.Println(failStyle.Render("FAIL:") + " required providers not ready: " + strings.Join(names, ", "))
		return domain.ExitFailure
	}

	fmt.Println("INFO: required providers missing but strict mode disabled; continuing with guidance above.")
	return domain.ExitOK
}
