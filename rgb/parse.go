package rgb

import (
	"fmt"
	"strings"
)

// ParseHex reads #rgb or #rrggbb, the leading # being optional.
func ParseHex(s string) (Color, error) {
	var c Color
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return Color{}, fmt.Errorf("invalid hex digits in color %q", s)
	}
	switch len(hex) {
	case 3:
		n, err := fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 6:
		n, err := fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	return c, nil
}
