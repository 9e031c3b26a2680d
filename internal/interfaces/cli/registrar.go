package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/infrastructure/credentials"
	"github.com/northroot-labs/pagesops/internal/providers/registrar"
)

var (
	registrarApply bool
	registrarNS    []string
)

var registrarCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Namecheap registrar fallback operations",
	Long: "Operate on the domain directly at the Namecheap registrar: delegate " +
		"to custom nameservers, or set the host records at the registrar itself.",
}

var registrarNameserversCmd = &cobra.Command{
	Use:   "nameservers",
	Short: "Point the domain at custom nameservers",
	Long:  "Call namecheap.domains.dns.setCustom with two nameservers. Dry-run by default.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runRegistrarNameservers())
	},
}

var registrarHostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Set the GitHub Pages host records at the registrar",
	Long:  "Call namecheap.domains.dns.setHosts with the apex A and www CNAME table. Dry-run by default.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runRegistrarHosts())
	},
}

func init() {
	rootCmd.AddCommand(registrarCmd)

	registrarCmd.AddCommand(registrarNameserversCmd)
	registrarNameserversCmd.Flags().StringSliceVar(&registrarNS, "ns", nil, "Two nameservers (repeat the flag or comma-separate)")
	_ = registrarNameserversCmd.MarkFlagRequired("ns")
	registrarNameserversCmd.Flags().BoolVar(&registrarApply, "apply", false, "Execute the API call")

	registrarCmd.AddCommand(registrarHostsCmd)
	registrarHostsCmd.Flags().BoolVar(&registrarApply, "apply", false, "Execute the API call")
}

func runRegistrarNameservers() int {
	if len(registrarNS) != 2 {
		fmt.Fprintf(os.Stderr, "exactly two nameservers are required, got %d\n", len(registrarNS))
		return domain.ExitMissingConfig
	}

	site := loadSite()
	auth, err := credentials.New().Namecheap()
	if err != nil {
		fmt.Println(err)
		return domain.ExitMissingConfig
	}

	sld, tld, err := registrar.ParseDomain(site.Domain)
	if err != nil {
		fmt.Println(err)
		return domain.ExitMissingConfig
	}

	req := registrar.NewSetCustomRequest(auth, sld, tld, registrarNS)
	fmt.Println("Prepared Namecheap setCustom request:")
	fmt.Println(req.RedactedEncode())

	return executeRegistrar(req)
}

func runRegistrarHosts() int {
	site := loadSite()
	auth, err := credentials.New().Namecheap()
	if err != nil {
		fmt.Println(err)
		return domain.ExitMissingConfig
	}

	sld, tld, err := registrar.ParseDomain(site.Domain)
	if err != nil {
		fmt.Println(err)
		return domain.ExitMissingConfig
	}

	req := registrar.NewSetHostsRequest(auth, sld, tld, site.DesiredRecords())
	fmt.Println("Prepared Namecheap request:")
	fmt.Println(req.RedactedEncode())

	return executeRegistrar(req)
}

// executeRegistrar performs the single API call when --apply is set. The
// request has already been printed with the key redacted.
func executeRegistrar(req *registrar.Request) int {
	if !registrarApply {
		fmt.Println("Dry-run only. Re-run with --apply to execute.")
		return domain.ExitOK
	}

	client := registrar.NewClient()
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		fmt.Printf("Namecheap API call failed: %v\n", err)
		return domain.ExitFailure
	}

	fmt.Println("Namecheap API response (first 500 chars):")
	fmt.Println(resp.Truncated(500))

	if resp.Failed() {
		fmt.Println("Namecheap reported errors:")
		for _, apiErr := range resp.Errors {
			fmt.Printf("- %s\n", apiErr)
		}
		return domain.ExitFailure
	}
	return domain.ExitOK
}
