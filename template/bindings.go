// Package template renders palettes into configuration files.
//
// Templates are plain text files where {name} tokens are replaced by the
// palette bindings: background, foreground, cursor and color0 to color15,
// each also available as name.strip without the leading #.
package template

import (
	"fmt"
	"strconv"

	"walrus/palette"
	"walrus/rgb"
)

type Options struct {
	// Strip drops the leading # from unsuffixed bindings too.
	Strip     bool
	Wallpaper string
	Alpha     int
}

// Bindings returns the token values for p.
func Bindings(p palette.Palette, opts Options) map[string]string {
	vars := make(map[string]string, 2*(palette.Size+3)+2)

	bind := func(name string, c rgb.Color) {
		if opts.Strip {
			vars[name] = c.HexStripped()
		} else {
			vars[name] = c.Hex()
		}
		vars[name+".strip"] = c.HexStripped()
	}

	for i, c := range p {
		bind(fmt.Sprintf("color%d", i), c)
	}
	bind("background", p.Background())
	bind("foreground", p.Foreground())
	bind("cursor", p.Cursor())

	vars["wallpaper"] = opts.Wallpaper
	vars["alpha"] = strconv.Itoa(opts.Alpha)

	return vars
}
