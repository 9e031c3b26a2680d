package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/infrastructure/shell"
	"github.com/northroot-labs/pagesops/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the DNS cutover and site reachability",
	Long: "Query live DNS and HTTP state through dig and curl and check that " +
		"the domain resolves to GitHub Pages with no registrar parking left over.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(runVerify())
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify() int {
	site := loadSite()
	verifier := verify.New(shell.New(), site)
	report := verifier.Run(context.Background(), site.Domain)

	fmt.Println("NS:")
	for _, ns := range report.NS {
		fmt.Printf("- %s\n", ns)
	}
	fmt.Println("A:")
	for _, a := range report.A {
		fmt.Printf("- %s\n", a)
	}
	cname := report.WWWCname
	if cname == "" {
		cname = "(none)"
	}
	fmt.Printf("CNAME www: %s\n", cname)

	for _, failure := range report.Failures {
		fmt.Println(failStyle.Render("FAIL:") + " " + failure)
	}

	if !report.Passed() {
		return domain.ExitFailure
	}
	fmt.Println(passStyle.Render("PASS:") + " DNS cutover checks look good.")
	return domain.ExitOK
}
