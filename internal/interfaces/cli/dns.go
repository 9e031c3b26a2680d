package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/domain/entity"
	"github.com/northroot-labs/pagesops/internal/infrastructure/credentials"
	"github.com/northroot-labs/pagesops/internal/providers/dns"
)

var (
	dnsApply      bool
	dnsCreateZone bool
)

var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "Cloudflare DNS management",
	Long:  "Manage the site's authoritative DNS records on Cloudflare.",
}

var dnsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upsert the GitHub Pages record set",
	Long: "Ensure the apex A records and www CNAME exist in the Cloudflare zone. " +
		"Dry-run by default; --apply performs the writes.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runDNSSync())
	},
}

var dnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the zone's DNS records",
	Long:  "Resolve the zone and print every record. Read-only.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runDNSList())
	},
}

func init() {
	rootCmd.AddCommand(dnsCmd)

	dnsCmd.AddCommand(dnsSyncCmd)
	dnsSyncCmd.Flags().BoolVar(&dnsApply, "apply", false, "Apply DNS changes")
	dnsSyncCmd.Flags().BoolVar(&dnsCreateZone, "create-zone", false, "Create zone if missing (requires CLOUDFLARE_ACCOUNT_ID)")

	dnsCmd.AddCommand(dnsListCmd)
}

func printPlan(site *entity.Site, desired []entity.Record) {
	for _, record := range desired {
		fmt.Printf("would upsert: %s %s -> %s\n", record.Type, record.FQDN(site.Domain), record.Content)
	}
}

func runDNSSync() int {
	site := loadSite()
	desired := site.DesiredRecords()
	creds := credentials.New()

	token := creds.Get(credentials.EnvCloudflareAPIToken)
	if token == "" {
		if dnsApply {
			fmt.Println(domain.MissingCredential(credentials.EnvCloudflareAPIToken))
			return domain.ExitMissingConfig
		}
		// Credential-free dry run: print the plan, no network calls.
		fmt.Println("No CLOUDFLARE_API_TOKEN found; dry-run plan only.")
		printPlan(site, desired)
		if dnsCreateZone {
			fmt.Println("would create zone if missing (requires CLOUDFLARE_ACCOUNT_ID + API token).")
		}
		return domain.ExitOK
	}

	ctx := context.Background()
	provider := dns.NewCloudflareProvider(token, creds.Get(credentials.EnvCloudflareAccountID))

	zone, err := provider.ResolveZone(ctx, site.Domain)
	if err != nil && !errors.Is(err, domain.ErrZoneNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}

	if zone == nil {
		fmt.Printf("Zone not found for %s.\n", site.Domain)
		if !dnsCreateZone {
			fmt.Println("Re-run with --create-zone to create it.")
			return domain.ExitFailure
		}
		if _, err := creds.Require(credentials.EnvCloudflareAccountID); err != nil {
			fmt.Println(err)
			return domain.ExitMissingConfig
		}
		if !dnsApply {
			fmt.Println("Dry-run: would create zone.")
			return domain.ExitOK
		}
		zone, err = provider.CreateZone(ctx, site.Domain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return domain.ExitFailure
		}
		fmt.Printf("Zone created: %s\n", zone.ID)
		if len(zone.NameServers) > 0 {
			fmt.Println("Assigned nameservers:")
			for _, ns := range zone.NameServers {
				fmt.Printf("- %s\n", ns)
			}
		}
	}

	if !dnsApply {
		fmt.Printf("Dry-run: zone %s\n", zone.ID)
		printPlan(site, desired)
		return domain.ExitOK
	}

	syncer := dns.NewSyncer(provider)
	results, err := syncer.SyncAll(ctx, zone.ID, site.Domain, desired)
	for _, result := range results {
		fmt.Printf("%s: %s %s -> %s\n", result.Status, result.Type, result.FQDN, result.Content)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}

	fmt.Println("Cloudflare DNS parity ensured.")
	return domain.ExitOK
}

func runDNSList() int {
	site := loadSite()
	creds := credentials.New()

	token, err := creds.Require(credentials.EnvCloudflareAPIToken)
	if err != nil {
		fmt.Println(err)
		return domain.ExitMissingConfig
	}

	ctx := context.Background()
	provider := dns.NewCloudflareProvider(token, creds.Get(credentials.EnvCloudflareAccountID))

	zone, err := provider.ResolveZone(ctx, site.Domain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}

	records, err := provider.ListRecords(ctx, zone.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}

	fmt.Printf("Zone %s (%s): %d records\n", zone.Name, zone.ID, len(records))
	for _, record := range records {
		fmt.Printf("  %-6s %-30s -> %-40s (ttl: %d)\n", record.Type, record.Name, record.Content, record.TTL)
	}
	return domain.ExitOK
}
