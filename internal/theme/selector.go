package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Semantic token names. These are the output contract: renamed tokens break
// every stylesheet written against the generated variables.
const (
	TokenBg           = "color-bg"
	TokenBgSubtle     = "color-bg-subtle"
	TokenBgElevated   = "color-bg-elevated"
	TokenBgSurface    = "color-bg-surface"
	TokenFg           = "color-fg"
	TokenFgMuted      = "color-fg-muted"
	TokenBorder       = "color-border"
	TokenBorderSubtle = "color-border-subtle"
	TokenAccent       = "color-accent"
	TokenAccentHover  = "color-accent-hover"
	TokenAccentActive = "color-accent-active"
	TokenAccentFg     = "color-accent-fg"
	TokenFocusRing    = "color-focus-ring"
)

// ExtraToken returns the token name for an additional semantic palette, and
// ExtraFgToken the name of its paired text colour.
func ExtraToken(name string) string   { return "color-" + name }
func ExtraFgToken(name string) string { return "color-" + name + "-fg" }

// TokenSet is the resolved semantic token map for one mode, in emission
// order. It is pure derived data, recomputed from scratch on every
// selection.
type TokenSet struct {
	names  []string
	values map[string]string

	// AccentFgAccessible reports whether the preferred foreground policy
	// held on the selected accent. False means selection fell through to a
	// degraded tier and callers wanting a compliance guarantee should
	// verify the output.
	AccentFgAccessible bool
}

func newTokenSet() *TokenSet {
	return &TokenSet{values: make(map[string]string)}
}

func (ts *TokenSet) put(name, value string) {
	if _, exists := ts.values[name]; !exists {
		ts.names = append(ts.names, name)
	}
	ts.values[name] = value
}

// Get returns the value of a token and whether it is present.
func (ts *TokenSet) Get(name string) (string, bool) {
	v, ok := ts.values[name]
	return v, ok
}

// Names returns the token names in emission order.
func (ts *TokenSet) Names() []string {
	out := make([]string, len(ts.names))
	copy(out, ts.names)
	return out
}

// Len returns the number of tokens in the set.
func (ts *TokenSet) Len() int {
	return len(ts.names)
}

// clampIndex clamps i into [0, last]. Every relative index computed by the
// selector goes through here so that short palettes never panic.
func clampIndex(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

// SelectTokens computes the full semantic token set for one mode. It is a
// pure function of the registry and policy: no state is carried between the
// light and dark invocations.
//
// Backgrounds come from fixed offsets off the light or dark end of the
// neutral ramp; the ramp extremes are held back for the subtle tier so that
// working surfaces never sit on pure white or black. Foreground, border,
// accent, and focus-ring selection are all contrast searches, described at
// the point of each pick.
func SelectTokens(reg *Registry, isDark bool, cfg Config) (*TokenSet, error) {
	neutral, err := reg.Get(PaletteNeutral)
	if err != nil {
		return nil, err
	}
	accent, err := reg.Get(PaletteAccent)
	if err != nil {
		return nil, err
	}

	ratio := cfg.ContrastLevel.RequiredRatio()
	last := len(neutral.Swatches) - 1

	var bgIdx, subtleIdx, elevatedIdx, surfaceIdx int
	if isDark {
		bgIdx, subtleIdx, elevatedIdx, surfaceIdx = last-2, last-1, last-4, last-3
	} else {
		bgIdx, subtleIdx, elevatedIdx, surfaceIdx = 1, 0, 2, 1
	}
	bg := neutral.Swatches[clampIndex(bgIdx, last)]

	ts := newTokenSet()
	ts.put(TokenBg, bg.Hex())
	ts.put(TokenBgSubtle, neutral.Swatches[clampIndex(subtleIdx, last)].Hex())
	ts.put(TokenBgElevated, neutral.Swatches[clampIndex(elevatedIdx, last)].Hex())
	ts.put(TokenBgSurface, neutral.Swatches[clampIndex(surfaceIdx, last)].Hex())

	fg, _ := colour.BlackOrWhite(bg, ratio, cfg.PreferWhiteText)
	ts.put(TokenFg, fg.Hex())

	fgMuted, _ := colour.BestContrastSwatch(neutral.Swatches, bg, ratio)
	ts.put(TokenFgMuted, fgMuted.Hex())

	// Borders are non-text UI, so the 3:1 minimum applies rather than the
	// text ratio. The subtle variant is the same tone shifted two steps.
	border, borderIdx := colour.BestContrastSwatch(neutral.Swatches, bg, NonTextMinContrast)
	ts.put(TokenBorder, border.Hex())
	subtleShift := 2
	if isDark {
		subtleShift = -2
	}
	ts.put(TokenBorderSubtle, neutral.Swatches[clampIndex(borderIdx+subtleShift, last)].Hex())

	accentColor, accentIdx, fgAccessible := selectAccent(accent.Swatches, bg, ratio, cfg.PreferWhiteText)
	ts.put(TokenAccent, accentColor.Hex())

	// Hover nudges two steps towards better visibility for the mode, active
	// nudges the same distance the other way. The two picks straddle the
	// base accent; keep the signed arithmetic as is.
	accentLast := len(accent.Swatches) - 1
	step := 2
	if isDark {
		step = -2
	}
	ts.put(TokenAccentHover, accent.Swatches[clampIndex(accentIdx-step, accentLast)].Hex())
	ts.put(TokenAccentActive, accent.Swatches[clampIndex(accentIdx+step, accentLast)].Hex())

	accentFg := colour.Black
	if cfg.PreferWhiteText {
		accentFg = colour.White
	}
	if !fgAccessible {
		accentFg, _ = colour.BlackOrWhite(accentColor, ratio, cfg.PreferWhiteText)
	}
	ts.put(TokenAccentFg, accentFg.Hex())

	// The focus ring is selected like a border but from the accent ramp.
	// It is independent of the accent pick above and may differ from it.
	focusRing, _ := colour.BestContrastSwatch(accent.Swatches, bg, NonTextMinContrast)
	ts.put(TokenFocusRing, focusRing.Hex())

	for _, name := range reg.Extras() {
		p, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		c, _ := colour.BestContrastSwatch(p.Swatches, bg, ratio)
		extraFg, _ := colour.BlackOrWhite(c, ratio, cfg.PreferWhiteText)
		ts.put(ExtraToken(name), c.Hex())
		ts.put(ExtraFgToken(name), extraFg.Hex())
	}

	ts.AccentFgAccessible = fgAccessible
	return ts, nil
}

// selectAccent picks the accent swatch for the given background, returning
// the swatch, its ramp index, and whether the preferred foreground colour
// is accessible on it.
//
// Three escalating strategies:
//
//  1. Swatches that are both visible against the background (3:1) and
//     carry the preferred text colour at the required ratio. The one with
//     the highest background contrast wins, maximising prominence; the
//     first of equal candidates is kept.
//  2. Any swatch visible against the background, scanned darkest-first
//     when white text is preferred and lightest-first otherwise. The
//     preferred foreground may or may not be accessible on this pick.
//  3. Nothing reaches 3:1 at all, which takes a pathologically
//     low-contrast base colour. Fall back to the plain best-contrast
//     search for text.
func selectAccent(swatches []colorful.Color, bg colorful.Color, ratio float64, preferWhite bool) (colorful.Color, int, bool) {
	preferredFg := colour.Black
	if preferWhite {
		preferredFg = colour.White
	}

	bestIdx := -1
	bestBgContrast := 0.0
	for i, s := range swatches {
		bgContrast := colour.ContrastRatio(s, bg)
		if bgContrast < NonTextMinContrast {
			continue
		}
		if colour.ContrastRatio(s, preferredFg) < ratio {
			continue
		}
		if bgContrast > bestBgContrast {
			bestBgContrast = bgContrast
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return swatches[bestIdx], bestIdx, true
	}

	if preferWhite {
		for i := len(swatches) - 1; i >= 0; i-- {
			if colour.ContrastRatio(swatches[i], bg) >= NonTextMinContrast {
				return swatches[i], i, colour.ContrastRatio(swatches[i], preferredFg) >= ratio
			}
		}
	} else {
		for i, s := range swatches {
			if colour.ContrastRatio(s, bg) >= NonTextMinContrast {
				return s, i, colour.ContrastRatio(s, preferredFg) >= ratio
			}
		}
	}

	c, idx := colour.BestContrastSwatch(swatches, bg, ratio)
	return c, idx, false
}
