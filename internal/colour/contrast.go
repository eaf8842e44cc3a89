// Package colour provides contrast-driven swatch selection.
package colour

import "github.com/lucasb-eyer/go-colorful"

// BestContrastSwatch scans swatches in index order and returns the swatch
// that clears minRatio against ref by the smallest margin, together with
// its index. Clearing the bar narrowly keeps the pick tonally close to the
// rest of the palette instead of jumping straight to an extreme.
//
// If no swatch reaches minRatio the highest-contrast swatch is returned
// instead, so callers always get a usable colour. Ties keep the first
// matching index.
func BestContrastSwatch(swatches []colorful.Color, ref colorful.Color, minRatio float64) (colorful.Color, int) {
	bestIdx := -1
	bestRatio := 0.0
	fallbackIdx := 0
	fallbackRatio := 0.0

	for i, s := range swatches {
		ratio := ContrastRatio(s, ref)
		if ratio > fallbackRatio {
			fallbackRatio = ratio
			fallbackIdx = i
		}
		if ratio >= minRatio && (bestIdx < 0 || ratio < bestRatio) {
			bestRatio = ratio
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		return swatches[bestIdx], bestIdx
	}
	if len(swatches) == 0 {
		return colorful.Color{}, -1
	}
	return swatches[fallbackIdx], fallbackIdx
}

// BlackOrWhite picks pure white or pure black as a text colour for bg.
// preferWhite only breaks the tie when both extremes meet minRatio; when
// exactly one meets it that one wins, and when neither does the higher
// ratio wins. The second return reports whether the pick meets minRatio.
func BlackOrWhite(bg colorful.Color, minRatio float64, preferWhite bool) (colorful.Color, bool) {
	whiteRatio := ContrastRatio(White, bg)
	blackRatio := ContrastRatio(Black, bg)

	whiteMeets := whiteRatio >= minRatio
	blackMeets := blackRatio >= minRatio

	switch {
	case whiteMeets && blackMeets:
		if preferWhite {
			return White, true
		}
		return Black, true
	case whiteMeets:
		return White, true
	case blackMeets:
		return Black, true
	case whiteRatio >= blackRatio:
		return White, false
	default:
		return Black, false
	}
}
