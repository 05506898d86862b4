// Package rgb implements the 8-bit per channel color value the palette
// pipeline works on, together with the tonal transforms used to derive
// terminal palettes.
//
// All arithmetic is carried out in float32 and every conversion back to a
// channel truncates, so results are reproducible across implementations.
package rgb

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an opaque RGB color. It is a comparable value and can be used as
// a map key; transforms never modify the receiver.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

// Model converts any color.Color to a Color, dropping alpha from the
// non-premultiplied representation.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if rc, ok := c.(Color); ok {
		return rc
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{nc.R, nc.G, nc.B}
}

func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// From converts an arbitrary color.Color.
func From(c color.Color) Color {
	return Model.Convert(c).(Color)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	g = uint32(c.G)
	b = uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// Hex returns the lowercase #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexStripped returns the lowercase rrggbb form.
func (c Color) HexStripped() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// YIQ returns the luma component of the color in [0,1]. It is only meant as
// an ordering key.
func (c Color) YIQ() float32 {
	r, g, b := c.normalized()
	return float32(0.299*r) + float32(0.587*g) + float32(0.114*b)
}

// Darken scales every channel by (1 - amount).
func (c Color) Darken(amount float32) Color {
	return Color{
		R: Channel(float32(c.R) * (1 - amount)),
		G: Channel(float32(c.G) * (1 - amount)),
		B: Channel(float32(c.B) * (1 - amount)),
	}
}

// Lighten moves every channel toward 255 by amount of the remaining headroom.
func (c Color) Lighten(amount float32) Color {
	return Color{
		R: lightenChannel(c.R, amount),
		G: lightenChannel(c.G, amount),
		B: lightenChannel(c.B, amount),
	}
}

func lightenChannel(v uint8, amount float32) uint8 {
	f := float32(v)
	return Channel(f + float32((255-f)*amount))
}

// Distance returns the euclidean distance between two colors in RGB space.
func Distance(a, b Color) float32 {
	dr := float32(a.R) - float32(b.R)
	dg := float32(a.G) - float32(b.G)
	db := float32(a.B) - float32(b.B)
	sum := float32(dr*dr) + float32(dg*dg) + float32(db*db)
	return float32(math.Sqrt(float64(sum)))
}

func (c Color) normalized() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Channel truncates toward zero, saturating at the channel bounds.
func Channel(f float32) uint8 {
	switch {
	case f != f, f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
