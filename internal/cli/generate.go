package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/theme"
)

var (
	genFlags  themeFlags
	genOutput string
	genReport bool
	genDryRun bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a CSS theme from brand colours",
		Long: `Generate builds the full ramp for each configured palette, selects light
and dark semantic tokens that satisfy the configured contrast level, and
writes the resulting stylesheet.

Palettes come from a config file, from repeated --colour flags, or both;
flags override file entries with the same name. At minimum a neutral and
an accent colour are required.`,
		Example: `  swatch generate --colour neutral=#6B7280 --colour accent=#3B82F6
  swatch generate -c theme.yaml -o theme.css
  swatch generate -c theme.json --contrast AAA --report`,
		RunE: runGenerate,
	}
)

func init() {
	genFlags.register(generateCmd)
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write CSS to this file instead of stdout")
	generateCmd.Flags().BoolVar(&genReport, "report", false, "print a contrast report for both modes to stderr")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "run selection and report without writing any CSS")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := genFlags.resolve(cmd)
	if err != nil {
		return err
	}

	result, err := theme.Generate(cfg)
	if err != nil {
		return err
	}

	warnDegraded(result)

	if genReport {
		if err := printReports(result, cfg); err != nil {
			return err
		}
	}

	if genDryRun {
		logger.Info("dry run, skipping CSS output")
		return nil
	}

	if genOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.CSS)
		return nil
	}
	if err := os.WriteFile(genOutput, []byte(result.CSS), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", genOutput, err)
	}
	logger.Info("wrote stylesheet", "path", genOutput, "bytes", len(result.CSS))
	return nil
}

// warnDegraded logs when a mode's accent foreground could not reach the
// configured text ratio. Generation still succeeds; the warning is the
// signal to pick a different accent or drop to AA.
func warnDegraded(result *theme.Result) {
	for _, mode := range []modeTokens{{"light", result.Light}, {"dark", result.Dark}} {
		if !mode.ts.AccentFgAccessible {
			logger.Warn("accent text falls short of the configured contrast level",
				"mode", mode.name)
		}
	}
}

func printReports(result *theme.Result, cfg theme.Config) error {
	extras := result.Registry.Extras()
	for _, mode := range []modeTokens{{"light", result.Light}, {"dark", result.Dark}} {
		pairs, err := theme.ContrastReport(mode.ts, extras, cfg.ContrastLevel)
		if err != nil {
			return err
		}

		table := NewTable("Foreground", "Background", "Ratio", "Required", "Result")
		for _, p := range pairs {
			verdict := "pass"
			if !p.Pass {
				verdict = "FAIL"
			}
			table.AddRow(p.Foreground, p.Background,
				fmt.Sprintf("%.2f", p.Ratio),
				fmt.Sprintf("%.1f", p.Required),
				verdict)
		}

		fmt.Fprintf(os.Stderr, "\nContrast report (%s mode, %s):\n", mode.name, cfg.ContrastLevel)
		table.Render(os.Stderr)
	}
	return nil
}
