// Package quantize reduces a pixel histogram to a short ranked list of
// representative colors.
//
// Pixels are partitioned into a 3x3x3 cube of buckets, every non-empty
// bucket is reduced to its weighted mean color, and the heaviest means are
// kept as long as they are not too close to a heavier one.
package quantize

import (
	"cmp"
	"errors"
	"slices"

	"walrus/rgb"
)

const (
	// Divisions per channel.
	Divisions = 3
	// NumBuckets is the size of the bucket cube.
	NumBuckets = Divisions * Divisions * Divisions
	// MaxColors bounds the number of ranked colors.
	MaxColors = 8
	// MinDistance is the smallest RGB distance allowed between two ranked
	// colors.
	MinDistance = 30

	// bucketScale keeps 255 in the last division.
	bucketScale = 2.99
)

// ErrNoColors is returned when there is nothing to quantize.
var ErrNoColors = errors.New("no colors found")

// Count is an exact color and how many times it was sampled.
type Count struct {
	Color rgb.Color
	N     uint32
}

// WeightedColor is a representative color with its aggregate weight.
type WeightedColor struct {
	Color  rgb.Color
	Weight float32
}

// Histogram maps exact colors to occurrence counts.
type Histogram map[rgb.Color]uint32

func (h Histogram) Add(c rgb.Color) {
	h[c]++
}

// Total returns the number of samples in the histogram.
func (h Histogram) Total() uint64 {
	var n uint64
	for _, v := range h {
		n += uint64(v)
	}
	return n
}

// Entries returns the histogram sorted by red, then green, then blue.
func (h Histogram) Entries() []Count {
	entries := make([]Count, 0, len(h))
	for c, n := range h {
		if n == 0 {
			continue
		}
		entries = append(entries, Count{Color: c, N: n})
	}
	slices.SortFunc(entries, func(a, b Count) int {
		return cmp.Or(
			cmp.Compare(a.Color.R, b.Color.R),
			cmp.Compare(a.Color.G, b.Color.G),
			cmp.Compare(a.Color.B, b.Color.B),
		)
	})
	return entries
}

// BucketIndex maps a channel value to its division, 0 to 2.
func BucketIndex(v uint8) int {
	return int(float32(v) / 255 * bucketScale)
}

// Bucket returns the flat index of the bucket holding c.
func Bucket(c rgb.Color) int {
	return BucketIndex(c.R)*Divisions*Divisions + BucketIndex(c.G)*Divisions + BucketIndex(c.B)
}

// Buckets distributes the entries over the bucket cube, preserving their
// order inside every bucket.
func Buckets(entries []Count) [NumBuckets][]Count {
	var buckets [NumBuckets][]Count
	for _, e := range entries {
		i := Bucket(e.Color)
		buckets[i] = append(buckets[i], e)
	}
	return buckets
}

// WeightedMean returns the total count of the given colors and their
// count-weighted mean, truncated per channel.
func WeightedMean(counts []Count) (float32, rgb.Color) {
	if len(counts) == 0 {
		return 0, rgb.Color{}
	}

	var total uint32
	var r, g, b float32
	for _, c := range counts {
		total += c.N
		n := float32(c.N)
		r += float32(n * float32(c.Color.R))
		g += float32(n * float32(c.Color.G))
		b += float32(n * float32(c.Color.B))
	}

	t := float32(total)
	return t, rgb.Color{
		R: rgb.Channel(r / t),
		G: rgb.Channel(g / t),
		B: rgb.Channel(b / t),
	}
}

// Result is the outcome of a quantization.
type Result struct {
	// Colors is ordered by descending weight.
	Colors   []WeightedColor
	Dominant rgb.Color
}

// Quantize reduces the histogram to at most MaxColors weighted colors.
func Quantize(h Histogram) (Result, error) {
	buckets := Buckets(h.Entries())

	means := make([]WeightedColor, 0, NumBuckets)
	for _, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		w, c := WeightedMean(bucket)
		means = append(means, WeightedColor{Color: c, Weight: w})
	}

	return NewResult(Rank(means))
}

// NewResult wraps ranked colors, failing when there are none.
func NewResult(ranked []WeightedColor) (Result, error) {
	if len(ranked) == 0 {
		return Result{}, ErrNoColors
	}
	return Result{Colors: ranked, Dominant: ranked[0].Color}, nil
}

// Rank orders colors by descending weight, keeps the MaxColors heaviest and
// drops every color closer than MinDistance to a heavier one already kept.
// Zero weight entries are discarded.
func Rank(colors []WeightedColor) []WeightedColor {
	ranked := slices.DeleteFunc(slices.Clone(colors), func(wc WeightedColor) bool {
		return !(wc.Weight > 0)
	})
	slices.SortStableFunc(ranked, func(a, b WeightedColor) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	if len(ranked) > MaxColors {
		ranked = ranked[:MaxColors]
	}

	kept := make([]WeightedColor, 0, len(ranked))
next:
	for _, wc := range ranked {
		for _, k := range kept {
			if rgb.Distance(wc.Color, k.Color) < MinDistance {
				continue next
			}
		}
		kept = append(kept, wc)
	}
	return kept
}

// Palette returns the ranked colors without their weights.
func (r Result) Palette() []rgb.Color {
	colors := make([]rgb.Color, len(r.Colors))
	for i, wc := range r.Colors {
		colors[i] = wc.Color
	}
	return colors
}

// Percentages returns the ranked colors with weights normalized to sum to 1.
func (r Result) Percentages() []WeightedColor {
	var sum float32
	for _, wc := range r.Colors {
		sum += wc.Weight
	}

	out := make([]WeightedColor, len(r.Colors))
	for i, wc := range r.Colors {
		out[i] = WeightedColor{Color: wc.Color, Weight: wc.Weight / sum}
	}
	return out
}
