// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool

	// Shared logger, configured from the global flags before any command runs.
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "swatch",
		Short: "Generate accessible CSS colour themes from brand colours",
		Long: `Swatch turns a handful of brand colours into a complete CSS custom-property
theme: light and dark mode, semantic tokens, and optional utility classes,
with every text and UI pairing selected to meet WCAG contrast ratios.

Give it a neutral and an accent colour and it produces a stylesheet you can
drop into a project; add extra palettes (success, warning, error) and they
become matching semantic tokens.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if flagVerbose {
				level = hclog.Debug
			}
			if flagQuiet {
				level = hclog.Error
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "swatch",
				Output: os.Stderr,
				Level:  level,
			})
		},
	}
)

// NewRootCmd returns the fully wired root command. Exposed for main and
// for tests that drive the CLI in-process.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(previewCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
