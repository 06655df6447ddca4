package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex converts "#rrggbb" or "#rgb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ColorOf is ParseHex without the error. Invalid input yields magenta.
func ColorOf(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
