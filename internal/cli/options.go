package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/theme"
)

// themeFlags are the policy flags shared by the generate and preview
// commands. Flags only override the config file when explicitly set.
type themeFlags struct {
	configPath     string
	colours        []string
	contrast       string
	preferWhite    bool
	prefix         string
	darkSelector   string
	noPaletteVars  bool
	noUtilClasses  bool
	noSystemPrefer bool
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to theme config file (JSON, YAML, or TOML)")
	cmd.Flags().StringArrayVar(&f.colours, "colour", []string{}, "palette colour (name=hex, repeatable; neutral and accent are required)")
	cmd.Flags().StringVar(&f.contrast, "contrast", "", "contrast level (AA, AAA)")
	cmd.Flags().BoolVar(&f.preferWhite, "prefer-white-text", false, "prefer white text on accent colours")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "prefix for generated variable names")
	cmd.Flags().StringVar(&f.darkSelector, "dark-selector", "", "CSS selector for dark-mode overrides")
	cmd.Flags().BoolVar(&f.noPaletteVars, "no-palette-vars", false, "omit raw palette variables")
	cmd.Flags().BoolVar(&f.noUtilClasses, "no-utility-classes", false, "omit utility classes")
	cmd.Flags().BoolVar(&f.noSystemPrefer, "no-system-preference", false, "omit the prefers-color-scheme media query")
}

// resolve builds the effective generation policy from the config file and
// any explicitly set flags.
func (f *themeFlags) resolve(cmd *cobra.Command) (theme.Config, error) {
	cfg := theme.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return theme.Config{}, err
		}
		cfg = loaded
	}

	for _, spec := range f.colours {
		name, base, ok := strings.Cut(spec, "=")
		if !ok {
			return theme.Config{}, fmt.Errorf("invalid colour %q: expected name=hex", spec)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return theme.Config{}, fmt.Errorf("invalid colour %q: empty palette name", spec)
		}
		cfg.Palettes[name] = theme.PaletteConfig{Base: strings.TrimSpace(base)}
	}

	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		logger.Debug("flag override", "flag", f.Name, "value", f.Value.String())
	})
	if flags.Changed("contrast") {
		cfg.ContrastLevel = theme.ContrastLevel(strings.ToUpper(f.contrast))
	}
	if flags.Changed("prefer-white-text") {
		cfg.PreferWhiteText = f.preferWhite
	}
	if flags.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if flags.Changed("dark-selector") {
		cfg.DarkModeSelector = f.darkSelector
	}
	if f.noPaletteVars {
		cfg.IncludePaletteVars = false
	}
	if f.noUtilClasses {
		cfg.IncludeUtilityClasses = false
	}
	if f.noSystemPrefer {
		cfg.RespectSystemPreference = false
	}

	return cfg, nil
}
