// Package palette derives the 16 color terminal palette from quantized
// image colors.
package palette

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"walrus/quantize"
	"walrus/rgb"
)

// Size is the number of colors in a terminal palette.
const Size = 16

// Slots with a fixed meaning.
const (
	Background = 0
	Foreground = 7
	Secondary  = 8
	Cursor     = 15
)

// Palette is a terminal palette in slot order.
type Palette [Size]rgb.Color

// FromColors builds a palette from exactly Size colors.
func FromColors(colors []rgb.Color) (Palette, error) {
	var p Palette
	if len(colors) != Size {
		return p, fmt.Errorf("palette needs %d colors, got %d", Size, len(colors))
	}
	copy(p[:], colors)
	return p, nil
}

func (p Palette) Background() rgb.Color { return p[Background] }

// Foreground returns the foreground color, shared with the cursor.
func (p Palette) Foreground() rgb.Color { return p[Cursor] }

func (p Palette) Cursor() rgb.Color { return p[Cursor] }

// Colors converts the palette to a color.Palette.
func (p Palette) Colors() color.Palette {
	pal := make(color.Palette, Size)
	for i, c := range p {
		pal[i] = c
	}
	return pal
}

// Adjust orders colors by luminance, repeats them to fill every slot and
// derives the background and foreground tones for a light or dark scheme.
func Adjust(colors []rgb.Color, light bool) (Palette, error) {
	var p Palette
	if len(colors) == 0 {
		return p, quantize.ErrNoColors
	}

	sorted := slices.Clone(colors)
	slices.SortStableFunc(sorted, func(a, b rgb.Color) int {
		return cmp.Compare(a.YIQ(), b.YIQ())
	})

	raw := make([]rgb.Color, 0, Size+len(sorted))
	for len(raw) < Size {
		raw = append(raw, sorted...)
	}
	copy(p[:], raw)

	p[Background] = p[Background].Lighten(0.40)

	if light {
		for i, c := range p {
			p[i] = c.Saturate(0.60).Darken(0.5)
		}

		p[Background] = p[Background].Lighten(0.95)
		p[Foreground] = p[Background].Darken(0.75)
		p[Secondary] = p[Background].Darken(0.25)
	} else {
		p[Background] = p[Background].Darken(0.80)
		p[Foreground] = p[Background].Lighten(0.75)
		p[Secondary] = p[Background].Lighten(0.25)
	}
	p[Cursor] = p[Foreground]

	return p, nil
}

// Saturate sets the saturation of every accent slot. Factors outside (0,1]
// leave the palette unchanged.
func (p Palette) Saturate(factor float32) Palette {
	if !(factor > 0 && factor <= 1) {
		return p
	}

	for i, c := range p {
		switch i {
		case Background, Foreground, Secondary, Cursor:
			continue
		}
		p[i] = c.Saturate(factor)
	}
	return p
}
