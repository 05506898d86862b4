package rgb_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walrus/rgb"
)

func TestHex(t *testing.T) {
	c := rgb.New(255, 128, 0)
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, "ff8000", c.HexStripped())
	assert.Equal(t, "rgb(255, 128, 0)", c.RGBString())
	assert.Equal(t, "#000000", rgb.Color{}.Hex())
}

func TestYIQOrdering(t *testing.T) {
	dark := rgb.New(50, 50, 50)
	light := rgb.New(200, 200, 200)
	assert.Less(t, dark.YIQ(), light.YIQ())
	assert.Equal(t, float32(0), rgb.New(0, 0, 0).YIQ())
	assert.InDelta(t, 1.0, rgb.New(255, 255, 255).YIQ(), 1e-6)
	assert.Greater(t, rgb.New(0, 255, 0).YIQ(), rgb.New(255, 0, 0).YIQ())
	assert.Greater(t, rgb.New(255, 0, 0).YIQ(), rgb.New(0, 0, 255).YIQ())
}

func TestDarken(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     rgb.Color
		amount float32
		out    rgb.Color
	}{
		{"none", rgb.New(10, 20, 30), 0, rgb.New(10, 20, 30)},
		{"full", rgb.New(10, 20, 30), 1, rgb.New(0, 0, 0)},
		{"half truncates", rgb.New(255, 101, 3), 0.5, rgb.New(127, 50, 1)},
		{"80%", rgb.New(102, 102, 102), 0.8, rgb.New(20, 20, 20)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, tc.in.Darken(tc.amount))
		})
	}
}

func TestLighten(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     rgb.Color
		amount float32
		out    rgb.Color
	}{
		{"none", rgb.New(10, 20, 30), 0, rgb.New(10, 20, 30)},
		{"full", rgb.New(10, 20, 30), 1, rgb.New(255, 255, 255)},
		{"black 40%", rgb.New(0, 0, 0), 0.4, rgb.New(102, 102, 102)},
		{"white stays", rgb.New(255, 255, 255), 0.75, rgb.New(255, 255, 255)},
		{"half truncates", rgb.New(0, 100, 254), 0.5, rgb.New(127, 177, 254)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, tc.in.Lighten(tc.amount))
		})
	}
}

func TestSaturateGrayIsNoop(t *testing.T) {
	for _, v := range []uint8{0, 1, 64, 127, 128, 200, 255} {
		c := rgb.New(v, v, v)
		for _, amount := range []float32{0, 0.2, 0.6, 1, 2} {
			assert.Equal(t, c, c.Saturate(amount), "gray %d at %v", v, amount)
		}
	}
}

func TestSaturate(t *testing.T) {
	// full saturation keeps hue and lightness, pushing the color to the
	// pure hue at that lightness
	assert.Equal(t, rgb.New(255, 0, 0), rgb.New(191, 64, 64).Saturate(1))
	assert.Equal(t, rgb.New(0, 0, 255), rgb.New(64, 64, 191).Saturate(1))

	// zero saturation collapses to the lightness gray
	got := rgb.New(200, 100, 50).Saturate(0)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)

	// amounts are clamped
	c := rgb.New(180, 90, 40)
	assert.Equal(t, c.Saturate(1), c.Saturate(3))
	assert.Equal(t, c.Saturate(0), c.Saturate(-1))
}

func TestSaturateKeepsDominantChannel(t *testing.T) {
	for _, c := range []rgb.Color{
		rgb.New(200, 10, 10),
		rgb.New(10, 200, 10),
		rgb.New(10, 10, 200),
		rgb.New(120, 90, 60),
		rgb.New(60, 90, 120),
	} {
		s := c.Saturate(1)
		switch max(c.R, c.G, c.B) {
		case c.R:
			assert.GreaterOrEqual(t, s.R, max(s.G, s.B), "%v", c)
		case c.G:
			assert.GreaterOrEqual(t, s.G, max(s.R, s.B), "%v", c)
		default:
			assert.GreaterOrEqual(t, s.B, max(s.R, s.G), "%v", c)
		}
	}
}

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(0, 0%, 50%)", rgb.New(128, 128, 128).HSLString())
	assert.Equal(t, "hsl(0, 100%, 50%)", rgb.New(255, 0, 0).HSLString())
	assert.Equal(t, "hsl(120, 100%, 50%)", rgb.New(0, 255, 0).HSLString())
	assert.Equal(t, "hsl(240, 100%, 50%)", rgb.New(0, 0, 255).HSLString())
}

func TestDistance(t *testing.T) {
	red := rgb.New(255, 0, 0)
	assert.Equal(t, float32(0), rgb.Distance(red, red))
	assert.Greater(t, rgb.Distance(red, rgb.New(0, 255, 0)), float32(0))
	assert.Equal(t, float32(5), rgb.Distance(rgb.New(0, 0, 0), rgb.New(3, 4, 0)))
	assert.Equal(t, rgb.Distance(red, rgb.New(1, 2, 3)), rgb.Distance(rgb.New(1, 2, 3), red))
}

func TestModel(t *testing.T) {
	assert.Equal(t, rgb.New(1, 2, 3), rgb.From(color.RGBA{1, 2, 3, 255}))
	assert.Equal(t, rgb.New(10, 20, 30), rgb.From(color.NRGBA{10, 20, 30, 128}))
	assert.Equal(t, rgb.New(9, 9, 9), rgb.From(rgb.New(9, 9, 9)))

	r, g, b, a := rgb.New(255, 0, 128).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0x8080, 0xffff}, []uint32{r, g, b, a})
}

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out rgb.Color
	}{
		{"#ff8000", rgb.New(255, 128, 0)},
		{"FF8000", rgb.New(255, 128, 0)},
		{"#abc", rgb.New(0xaa, 0xbb, 0xcc)},
		{" #000000\n", rgb.New(0, 0, 0)},
	} {
		c, err := rgb.ParseHex(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, c, tc.in)
	}

	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#12345g", "zzz"} {
		_, err := rgb.ParseHex(in)
		assert.Error(t, err, in)
	}
}
