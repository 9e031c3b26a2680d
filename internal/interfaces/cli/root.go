package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/domain/entity"
	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
	"github.com/northroot-labs/pagesops/internal/infrastructure/persistence"
)

var (
	siteDomain  string
	configFile  string
	showVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pagesops",
	Short: "DNS and publishing safety operations for the pages site",
	Long: "Pagesops configures and verifies DNS for a GitHub Pages site across " +
		"Cloudflare and the Namecheap registrar fallback, scans public content " +
		"for secrets, and checks provider credentials.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&siteDomain, "domain", "d", "", "Domain to operate on (default "+entity.DefaultDomain+")")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Site config file (default "+persistence.DefaultSiteFile+")")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

// initConfig loads an optional .env and binds PAGESOPS_* environment
// variables to any persistent flag not set on the command line.
func initConfig() {
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	viper.SetEnvPrefix("PAGESOPS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if err := rootCmd.PersistentFlags().Set(f.Name, fmt.Sprint(viper.Get(f.Name))); err != nil {
				logger.Warn("failed to bind flag from environment", "flag", f.Name, "error", err)
			}
		}
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(domain.ExitFailure)
	}
}

// loadSite reads the site config (or defaults) and applies the --domain
// override. Configuration problems are a missing-configuration failure.
func loadSite() *entity.Site {
	site, err := persistence.LoadSite(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading site config: %v\n", err)
		os.Exit(domain.ExitMissingConfig)
	}
	if siteDomain != "" {
		site.Domain = siteDomain
	}
	return site
}

func exit(code int) {
	if code != domain.ExitOK {
		os.Exit(code)
	}
}
