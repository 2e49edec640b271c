// Package color defines the RGB value used to select background pixels.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGB value. Alpha is deliberately absent:
// background matching only ever compares the RGB channels of a pixel.
type Color struct {
	R, G, B uint8
}

// White is the default target color when no configuration exists.
var White = Color{R: 255, G: 255, B: 255}

// New returns a Color with the given channel values.
func New(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// String formats the color as rgb(r, g, b).
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parse reads a color from "#rrggbb", "rrggbb", or a decimal "r,g,b" triplet.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		hex := strings.TrimPrefix(s, "#")
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or r,g,b", s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or r,g,b", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color channel %q in %q: %w", p, s, err)
		}
		ch[i] = uint8(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
