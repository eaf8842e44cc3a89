// Package colour provides palette ramp generation.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RampSize is the number of swatches in a generated ramp. Consumers must
// not rely on the exact value; all selection logic indexes relative to the
// ramp length.
const RampSize = 57

// Lightness endpoints of a ramp. The first swatch stays just short of pure
// white and the last just short of pure black so that the extremes remain
// usable as subtle background tones.
const (
	rampMaxLightness = 0.97
	rampMinLightness = 0.03
)

// BuildRamp expands a base colour into an ordered light-to-dark swatch
// sequence. Steps are equal in LAB lightness, which reads as perceptually
// uniform, and the base hue is held constant across the ramp. Chroma is
// carried in full at the middle of the ramp and tapered towards the
// endpoints so that the lightest and darkest swatches approach neutral
// white and black without leaving the sRGB gamut.
func BuildRamp(base colorful.Color) []colorful.Color {
	h, c, _ := base.Hcl()

	ramp := make([]colorful.Color, RampSize)
	for i := range ramp {
		t := float64(i) / float64(RampSize-1)
		l := rampMaxLightness - (rampMaxLightness-rampMinLightness)*t
		chroma := c * (1 - math.Abs(2*t-1))
		ramp[i] = colorful.Hcl(h, chroma, l).Clamped()
	}
	return ramp
}
