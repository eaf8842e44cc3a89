// Package extract derives brand base colours from an image, so that a
// theme config can be bootstrapped from a logo or wallpaper instead of
// hand-picked hex values.
package extract

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Extractor clusters image pixels into dominant colours using k-means.
type Extractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

// New creates an Extractor with default settings. The random source is
// fixed-seeded: repeated extraction from the same image yields the same
// colours.
func New() *Extractor {
	return &Extractor{
		maxIterations: 20,
		convergence:   0.008,
		maxSamples:    2000,
		rng:           rand.New(rand.NewSource(1)),
	}
}

// Dominant extracts the count most dominant colours from an image,
// returned with their relative cluster weights (summing to 1.0), heaviest
// first.
func (e *Extractor) Dominant(img image.Image, count int) ([]colorful.Color, []float64, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 || count > 64 {
		return nil, nil, fmt.Errorf("colour count must be in [1, 64], got %d", count)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniqueColours(points)
	if count >= len(unique) {
		weights := make([]float64, len(unique))
		for i := range weights {
			weights[i] = 1.0 / float64(len(unique))
		}
		return unique, weights, nil
	}

	centroids, weights := e.cluster(points, count)
	sortByWeight(centroids, weights)
	return centroids, weights, nil
}

// samplePixels walks the image on a grid sized to collect at most
// maxSamples pixels.
func (e *Extractor) samplePixels(img image.Image) []colorful.Color {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil
	}

	step := 1
	if total > e.maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)
	}

	points := make([]colorful.Color, 0, e.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue // fully transparent pixel
			}
			points = append(points, c)
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

func uniqueColours(points []colorful.Color) []colorful.Color {
	seen := make(map[string]bool, len(points))
	out := make([]colorful.Color, 0, len(points))
	for _, p := range points {
		hex := p.Hex()
		if !seen[hex] {
			seen[hex] = true
			out = append(out, p)
		}
	}
	return out
}

// cluster runs k-means over the sampled points. Distances are measured in
// RGB space, which is cheap and good enough for picking brand candidates.
func (e *Extractor) cluster(points []colorful.Color, k int) ([]colorful.Color, []float64) {
	centroids := e.seedCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := e.recompute(points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += distance(centroids[i], next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// seedCentroids picks initial centroids with k-means++: each new centroid
// is drawn with probability proportional to its squared distance from the
// nearest existing one.
func (e *Extractor) seedCentroids(points []colorful.Color, k int) []colorful.Color {
	centroids := make([]colorful.Color, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := distance(p, c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids.
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		target := e.rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func (e *Extractor) recompute(points []colorful.Color, assignments []int, k int) []colorful.Color {
	var sums = make([]struct{ r, g, b float64 }, k)
	counts := make([]int, k)
	for i, p := range points {
		a := assignments[i]
		sums[a].r += p.R
		sums[a].g += p.G
		sums[a].b += p.B
		counts[a]++
	}

	centroids := make([]colorful.Color, k)
	for i := range centroids {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = colorful.Color{R: sums[i].r / n, G: sums[i].g / n, B: sums[i].b / n}
		} else {
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}
	return centroids
}

func nearestCentroid(p colorful.Color, centroids []colorful.Color) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := distance(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func distance(a, b colorful.Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func sortByWeight(centroids []colorful.Color, weights []float64) {
	for i := 0; i < len(weights)-1; i++ {
		for j := 0; j < len(weights)-i-1; j++ {
			if weights[j] < weights[j+1] {
				weights[j], weights[j+1] = weights[j+1], weights[j]
				centroids[j], centroids[j+1] = centroids[j+1], centroids[j]
			}
		}
	}
}
