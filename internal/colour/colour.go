// Package colour provides the colour math the theme generator is built on:
// WCAG luminance and contrast, hex parsing, palette ramps, and
// contrast-driven swatch search.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// White and Black are the reference extremes used for text foregrounds.
var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
)

// ParseHex parses a hex colour string (#RRGGBB, #RGB, with or without the
// leading hash). Returns an error for anything that is not a valid hex colour.
func ParseHex(s string) (colorful.Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return colorful.Color{}, fmt.Errorf("empty colour string")
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	return c, nil
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c colorful.Color) float64 {
	r := gammaCorrect(c.R)
	g := gammaCorrect(c.G)
	b := gammaCorrect(c.B)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). WCAG AA requires 4.5:1 for normal text and
// 3:1 for large text or non-text UI; AAA requires 7:1 for normal text.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 colorful.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
