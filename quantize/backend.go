package quantize

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"walrus/rgb"
)

// Backend extracts ranked colors from an already downsampled image.
type Backend func(img image.Image) (Result, error)

const DefaultBackend = "haishoku"

var backends = map[string]Backend{
	"haishoku":      Haishoku,
	"dominantcolor": DominantColor,
	"kmeans":        KMeans,
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q, should be one of %v", name, Backends())
	}
	return b, nil
}

// NewHistogram counts every pixel of img.
func NewHistogram(img image.Image) Histogram {
	h := Histogram{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h.Add(rgb.From(img.At(x, y)))
		}
	}
	return h
}

// Haishoku quantizes the exact color histogram of img.
func Haishoku(img image.Image) (Result, error) {
	return Quantize(NewHistogram(img))
}

// DominantColor ranks the k-means candidates found by dominantcolor.
func DominantColor(img image.Image) (Result, error) {
	if img.Bounds().Empty() {
		return Result{}, ErrNoColors
	}

	candidates := dominantcolor.FindWeight(img, MaxColors*2)
	weighted := make([]WeightedColor, 0, len(candidates))
	for _, c := range candidates {
		weighted = append(weighted, WeightedColor{
			Color:  rgb.New(c.RGBA.R, c.RGBA.G, c.RGBA.B),
			Weight: float32(c.Weight),
		})
	}
	return NewResult(Rank(weighted))
}

const maxKMeansSamples = 12000

// KMeans clusters the pixels of img in Lab space, weighting every cluster
// center by its population.
func KMeans(img image.Image) (Result, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return Result{}, ErrNoColors
	}

	step := 1
	if width*height > maxKMeansSamples {
		step = int(math.Sqrt(float64(width*height)/maxKMeansSamples)) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxKMeansSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			c := rgb.From(img.At(x, y))
			l, la, lb := colorful.Color{
				R: float64(c.R) / 255,
				G: float64(c.G) / 255,
				B: float64(c.B) / 255,
			}.Lab()
			dataset = append(dataset, clusters.Coordinates{l, la, lb})
		}
	}
	if len(dataset) == 0 {
		return Result{}, ErrNoColors
	}

	k := min(MaxColors*2, len(dataset))
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return Result{}, fmt.Errorf("could not partition %d samples: %w", len(dataset), err)
	}

	weighted := make([]WeightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		r, g, b := colorful.Lab(c.Center[0], c.Center[1], c.Center[2]).Clamped().RGB255()
		weighted = append(weighted, WeightedColor{
			Color:  rgb.New(r, g, b),
			Weight: float32(len(c.Observations)),
		})
	}
	return NewResult(Rank(weighted))
}
