package theme

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

// PairResult is one measured pairing from a generated token set. Pass is
// judged against Required, which is the text ratio for text roles and the
// 3:1 non-text minimum for borders and focus indicators.
type PairResult struct {
	Foreground string
	Background string
	Ratio      float64
	Required   float64
	Pass       bool
}

// ContrastReport measures every pairing the generator contracts for in one
// token set: text on background, muted text, text on accent, text on each
// additional semantic colour, and the non-text border, focus-ring, and
// accent visibility pairings.
//
// A failing pair is not an error here. The selector degrades deliberately
// when a palette cannot reach the target, and this report is how callers
// surface that.
func ContrastReport(ts *TokenSet, extras []string, level ContrastLevel) ([]PairResult, error) {
	ratio := level.RequiredRatio()

	pairs := []struct {
		fg, bg   string
		required float64
	}{
		{TokenFg, TokenBg, ratio},
		{TokenFgMuted, TokenBg, ratio},
		{TokenAccentFg, TokenAccent, ratio},
		{TokenBorder, TokenBg, NonTextMinContrast},
		{TokenFocusRing, TokenBg, NonTextMinContrast},
		{TokenAccent, TokenBg, NonTextMinContrast},
	}
	for _, name := range extras {
		pairs = append(pairs, struct {
			fg, bg   string
			required float64
		}{ExtraFgToken(name), ExtraToken(name), ratio})
	}

	results := make([]PairResult, 0, len(pairs))
	for _, p := range pairs {
		fgHex, ok := ts.Get(p.fg)
		if !ok {
			return nil, fmt.Errorf("token %q missing from token set", p.fg)
		}
		bgHex, ok := ts.Get(p.bg)
		if !ok {
			return nil, fmt.Errorf("token %q missing from token set", p.bg)
		}
		fg, err := colour.ParseHex(fgHex)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", p.fg, err)
		}
		bg, err := colour.ParseHex(bgHex)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", p.bg, err)
		}

		measured := colour.ContrastRatio(fg, bg)
		results = append(results, PairResult{
			Foreground: p.fg,
			Background: p.bg,
			Ratio:      measured,
			Required:   p.required,
			Pass:       measured >= p.required,
		})
	}
	return results, nil
}
