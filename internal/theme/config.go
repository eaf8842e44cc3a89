package theme

import "fmt"

// Names of the two palettes every config must provide. Everything else in
// Config.Palettes is an additional semantic palette (success, warning, ...).
const (
	PaletteNeutral = "neutral"
	PaletteAccent  = "accent"
)

// NonTextMinContrast is the WCAG 1.4.11 minimum ratio for non-text UI
// elements such as borders and focus indicators.
const NonTextMinContrast = 3.0

// ContrastLevel selects the WCAG conformance target for text pairings.
type ContrastLevel string

const (
	// ContrastAA requires 4.5:1 for text (WCAG 2.1 level AA).
	ContrastAA ContrastLevel = "AA"
	// ContrastAAA requires 7:1 for text (WCAG 2.1 level AAA).
	ContrastAAA ContrastLevel = "AAA"
)

// RequiredRatio returns the minimum contrast ratio for normal text at this
// level.
func (l ContrastLevel) RequiredRatio() float64 {
	if l == ContrastAAA {
		return 7.0
	}
	return 4.5
}

// Valid reports whether l is a recognised contrast level.
func (l ContrastLevel) Valid() bool {
	return l == ContrastAA || l == ContrastAAA
}

// PaletteConfig describes one brand colour input. Base must parse as a hex
// colour; Name is an optional display label and defaults to the map key.
type PaletteConfig struct {
	Base string
	Name string
}

// Config is the full generation policy. It is a plain value: building the
// registry, selecting tokens, and rendering never mutate it.
type Config struct {
	// Palettes maps palette names to their brand colour. Must contain
	// "neutral" and "accent"; other keys are additional semantic palettes.
	Palettes map[string]PaletteConfig

	ContrastLevel   ContrastLevel
	PreferWhiteText bool

	// Output shaping. None of these affect colour selection.
	IncludePaletteVars      bool
	IncludeUtilityClasses   bool
	DarkModeSelector        string
	RespectSystemPreference bool
	Prefix                  string
}

// DefaultConfig returns the generation policy used when a field is not set:
// AA contrast, black-text preference, all output sections enabled.
func DefaultConfig() Config {
	return Config{
		Palettes:                map[string]PaletteConfig{},
		ContrastLevel:           ContrastAA,
		IncludePaletteVars:      true,
		IncludeUtilityClasses:   true,
		DarkModeSelector:        `[data-theme="dark"]`,
		RespectSystemPreference: true,
	}
}

// Validate checks the policy fields that selection depends on. Base colour
// parsing is validated later, by BuildRegistry, so that errors can name the
// offending palette key.
func (c Config) Validate() error {
	if !c.ContrastLevel.Valid() {
		return fmt.Errorf("invalid contrast level %q: must be %q or %q", c.ContrastLevel, ContrastAA, ContrastAAA)
	}
	if len(c.Palettes) == 0 {
		return fmt.Errorf("no palettes configured")
	}
	for _, required := range []string{PaletteNeutral, PaletteAccent} {
		if _, ok := c.Palettes[required]; !ok {
			return &PaletteNotFoundError{Name: required}
		}
	}
	return nil
}
