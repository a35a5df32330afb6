package ui

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses #RGB, #RRGGBB or an SVG colour name ("royalblue") into an opaque colour.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	return c, ok
}

// ParseHexColor parses #RGB or #RRGGBB (alpha 255). Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	black := color.RGBA{A: 255}
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return black, false
		}
	}
	nib := func(i int) uint8 {
		v, _ := hexByte(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	default:
		return black, false
	}
}

// FormatHexColor renders c as #rrggbb, ignoring alpha.
func FormatHexColor(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
