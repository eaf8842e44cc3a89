// Package config loads theme generation policies from config files.
// JSON, YAML, and TOML are supported; palette entries may be a bare hex
// string or an object with base and name fields.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jmylchreest/swatch/internal/theme"
)

// Load reads the config file at path and maps it onto a theme.Config.
// Fields absent from the file keep the defaults from theme.DefaultConfig.
// Note that palette names are treated case-insensitively and come back
// lowercased.
func Load(path string) (theme.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return theme.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	defaults := theme.DefaultConfig()
	v.SetDefault("contrastLevel", string(defaults.ContrastLevel))
	v.SetDefault("preferWhiteText", defaults.PreferWhiteText)
	v.SetDefault("includePaletteVars", defaults.IncludePaletteVars)
	v.SetDefault("includeUtilityClasses", defaults.IncludeUtilityClasses)
	v.SetDefault("darkModeSelector", defaults.DarkModeSelector)
	v.SetDefault("respectSystemPreference", defaults.RespectSystemPreference)
	v.SetDefault("prefix", defaults.Prefix)
}

func fromViper(v *viper.Viper) (theme.Config, error) {
	cfg := theme.DefaultConfig()

	cfg.ContrastLevel = theme.ContrastLevel(strings.ToUpper(v.GetString("contrastLevel")))
	if !cfg.ContrastLevel.Valid() {
		return theme.Config{}, fmt.Errorf("contrastLevel must be %q or %q, got %q",
			theme.ContrastAA, theme.ContrastAAA, v.GetString("contrastLevel"))
	}
	cfg.PreferWhiteText = v.GetBool("preferWhiteText")
	cfg.IncludePaletteVars = v.GetBool("includePaletteVars")
	cfg.IncludeUtilityClasses = v.GetBool("includeUtilityClasses")
	cfg.DarkModeSelector = v.GetString("darkModeSelector")
	cfg.RespectSystemPreference = v.GetBool("respectSystemPreference")
	cfg.Prefix = v.GetString("prefix")

	palettes, err := parsePalettes(v.GetStringMap("palettes"))
	if err != nil {
		return theme.Config{}, err
	}
	cfg.Palettes = palettes

	return cfg, nil
}

// parsePalettes resolves the string-or-object form of each palette entry.
func parsePalettes(raw map[string]any) (map[string]theme.PaletteConfig, error) {
	palettes := make(map[string]theme.PaletteConfig, len(raw))
	for name, value := range raw {
		switch entry := value.(type) {
		case string:
			palettes[name] = theme.PaletteConfig{Base: entry}
		case map[string]any:
			pc := theme.PaletteConfig{}
			if base, ok := entry["base"].(string); ok {
				pc.Base = base
			}
			if label, ok := entry["name"].(string); ok {
				pc.Name = label
			}
			if pc.Base == "" {
				return nil, fmt.Errorf("palette %q: missing base colour", name)
			}
			palettes[name] = pc
		default:
			return nil, fmt.Errorf("palette %q: expected a colour string or an object, got %T", name, value)
		}
	}
	return palettes, nil
}
