// Package theme turns a small set of brand colours into a WCAG-compliant
// CSS custom-property theme: palette ramps are built once per run, semantic
// tokens are selected per mode, and the result is rendered to CSS text.
package theme

import "fmt"

// InvalidColorError reports a configured base colour that failed to parse.
// Key names the offending palette entry.
type InvalidColorError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("palette %q: invalid base colour %q: %v", e.Key, e.Value, e.Err)
}

func (e *InvalidColorError) Unwrap() error {
	return e.Err
}

// PaletteNotFoundError reports a lookup of a palette the registry does not
// hold. Seen when a config omits one of the required palettes.
type PaletteNotFoundError struct {
	Name string
}

func (e *PaletteNotFoundError) Error() string {
	return fmt.Sprintf("palette %q not found", e.Name)
}
