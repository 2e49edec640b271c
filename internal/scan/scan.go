// Package scan implements the transparency pass over raw RGBA pixel buffers.
package scan

import (
	"fmt"

	"github.com/nicky-tree55/bgclipper/internal/color"
)

// MakeTransparent sets the alpha byte to zero for every pixel whose RGB
// channels equal target exactly, leaving all other bytes untouched, and
// returns the number of pixels that matched. Matching pixels whose alpha is
// already zero still count; running the scan twice yields the same buffer.
//
// Panics when len(pixels) is not a multiple of 4. A malformed buffer means
// the caller handed over something that is not RGBA pixel data, which is a
// programming error rather than a runtime condition.
func MakeTransparent(pixels []byte, target color.Color) int {
	if len(pixels)%4 != 0 {
		panic(fmt.Sprintf("scan: pixel buffer length must be a multiple of 4, got %d", len(pixels)))
	}

	count := 0
	for i := 0; i < len(pixels); i += 4 {
		if pixels[i] == target.R && pixels[i+1] == target.G && pixels[i+2] == target.B {
			pixels[i+3] = 0
			count++
		}
	}
	return count
}
