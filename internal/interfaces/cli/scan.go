package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan public content for secrets and restricted terms",
	Long:  "Scan an HTML file for secret-shaped tokens and restricted phrases before publishing. Defaults to index.html.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "index.html"
		if len(args) > 0 {
			path = args[0]
		}
		exit(runScan(path))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(path string) int {
	site := loadSite()
	scanner := scan.NewScanner(site.RestrictedTerms...)

	findings, err := scanner.ScanFile(path)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFile) {
			fmt.Printf("%s is required\n", path)
			return domain.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}

	if len(findings) > 0 {
		fmt.Println("Public content checks failed:")
		for _, finding := range findings {
			fmt.Printf("- %s\n", finding)
		}
		return domain.ExitFailure
	}

	fmt.Println("Public content checks passed.")
	return domain.ExitOK
}
