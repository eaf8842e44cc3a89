package extract

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Suggestion holds brand colour candidates derived from an image, ready to
// be dropped into a theme config.
type Suggestion struct {
	Neutral colorful.Color
	Accent  colorful.Color
}

// Suggest extracts dominant colours and picks a neutral and an accent
// candidate: the neutral is the heaviest low-chroma cluster (falling back
// to the least saturated overall), the accent the most saturated cluster.
func (e *Extractor) Suggest(img image.Image, count int) (Suggestion, error) {
	colours, weights, err := e.Dominant(img, count)
	if err != nil {
		return Suggestion{}, err
	}

	neutralIdx, accentIdx := -1, 0
	neutralWeight := 0.0
	accentChroma := -1.0
	for i, c := range colours {
		_, chroma, _ := c.Hcl()
		if chroma < 0.12 && weights[i] > neutralWeight {
			neutralWeight = weights[i]
			neutralIdx = i
		}
		if chroma > accentChroma {
			accentChroma = chroma
			accentIdx = i
		}
	}

	if neutralIdx == -1 {
		// Nothing muted enough; take the least saturated cluster.
		minChroma := accentChroma + 1
		for i, c := range colours {
			if _, chroma, _ := c.Hcl(); chroma < minChroma {
				minChroma = chroma
				neutralIdx = i
			}
		}
	}

	return Suggestion{Neutral: colours[neutralIdx], Accent: colours[accentIdx]}, nil
}
