// Package sequences formats a palette as terminal control sequences and
// sends them to the open terminals.
package sequences

import (
	"fmt"
	"strings"

	"walrus/palette"
	"walrus/rgb"
)

// DefaultAlpha is the opaque background alpha, in percent.
const DefaultAlpha = 100

type Options struct {
	// Alpha of the background in percent, only honored by terminals that
	// understand the [alpha] prefix.
	Alpha int
	// VTEFix skips the sequence VTE based terminals print as garbage.
	VTEFix bool
	// Darwin selects the iTerm2 flavored sequences.
	Darwin bool
}

// Build returns the sequences applying p to a terminal.
func Build(p palette.Palette, opts Options) string {
	var sb strings.Builder

	for i, c := range p {
		sb.WriteString(setColor(i, c, opts))
	}

	bg := p.Background()
	fg := p.Foreground()
	cursor := p.Cursor()

	sb.WriteString(setSpecial(10, fg, "g", opts))
	sb.WriteString(setSpecial(11, bg, "h", opts))
	sb.WriteString(setSpecial(12, cursor, "l", opts))
	sb.WriteString(setSpecial(13, fg, "l", opts))
	sb.WriteString(setSpecial(17, fg, "l", opts))
	sb.WriteString(setSpecial(19, bg, "l", opts))
	sb.WriteString(setColor(232, bg, opts))
	fmt.Fprintf(&sb, "\x1b]4;256;%s\x1b\\", fg.Hex())

	if !opts.VTEFix {
		sb.WriteString(setSpecial(708, bg, "l", opts))
	}

	if opts.Darwin {
		sb.WriteString(itermTabColor(bg))
	}

	return sb.String()
}

func setSpecial(index int, c rgb.Color, itermName string, opts Options) string {
	if opts.Alpha != DefaultAlpha && (index == 11 || index == 708) {
		return fmt.Sprintf("\x1b]%d;[%d]%s\x1b\\", index, opts.Alpha, c.Hex())
	}
	if opts.Darwin {
		return fmt.Sprintf("\x1b]P%s%s\x1b\\", itermName, c.HexStripped())
	}
	return fmt.Sprintf("\x1b]%d;%s\x1b\\", index, c.Hex())
}

func setColor(index int, c rgb.Color, opts Options) string {
	if opts.Darwin && index < 20 {
		return fmt.Sprintf("\x1b]P%x%s\x1b\\", index, c.HexStripped())
	}
	return fmt.Sprintf("\x1b]4;%d;%s\x1b\\", index, c.Hex())
}

func itermTabColor(c rgb.Color) string {
	return fmt.Sprintf("\x1b]6;1;bg;red;brightness;%d\x07"+
		"\x1b]6;1;bg;green;brightness;%d\x07"+
		"\x1b]6;1;bg;blue;brightness;%d\x07", c.R, c.G, c.B)
}
