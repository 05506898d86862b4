package rgb

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// sector returns the hue of the color on a [0,6) scale, one unit per 60°
// sector, along with its lightness. ok is false for exact grays.
func (c Color) sector() (h, l float32, ok bool) {
	r, g, b := c.normalized()

	hi := max(r, g, b)
	lo := min(r, g, b)
	diff := hi - lo
	l = (hi + lo) / 2
	if diff == 0 {
		return 0, l, false
	}

	switch hi {
	case r:
		h = (g - b) / diff
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/diff + 2
	default:
		h = (r-g)/diff + 4
	}
	return h, l, true
}

// Saturate rebuilds the color with the given HSL saturation, keeping hue and
// lightness. Grays are returned unchanged.
func (c Color) Saturate(amount float32) Color {
	h, l, ok := c.sector()
	if !ok {
		return c
	}

	s := min(max(amount, 0), 1)
	chroma := (1 - abs32(2*l-1)) * s
	x := chroma * (1 - abs32(mod32(h, 2)-1))
	m := l - chroma/2

	var r, g, b float32
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return Color{
		R: Channel((r + m) * 255),
		G: Channel((g + m) * 255),
		B: Channel((b + m) * 255),
	}
}

// HSLString formats the color as hsl(h, s%, l%) with the hue in degrees and
// every component truncated.
func (c Color) HSLString() string {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cc.Hsl()
	if c.R == c.G && c.G == c.B {
		h, s = 0, 0
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(h), int(s*100), int(l*100))
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

func mod32(f, m float32) float32 {
	return float32(math.Mod(float64(f), float64(m)))
}
