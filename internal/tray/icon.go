package tray

import (
	"bytes"
	"image"
	"image/png"
	"math"
)

// iconPNG renders the tray icon at startup: a filled circle fading to a
// transparent checker on its lower-right quadrant, white on transparent with
// antialiased edges. Drawing it beats shipping a binary asset.
func iconPNG() []byte {
	const size = 22
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	const (
		cx, cy = 11.0, 11.0
		radius = 8.0
	)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5

			d := math.Sqrt((fx-cx)*(fx-cx) + (fy-cy)*(fy-cy))
			alpha := 0.0
			switch {
			case d <= radius:
				alpha = 1.0
			case d <= radius+0.8:
				alpha = (radius + 0.8 - d) / 0.8
			}

			// Knock 2x2 checker holes out of the lower-right quadrant to
			// suggest the transparency grid.
			if fx > cx && fy > cy && ((x/2)+(y/2))%2 == 0 {
				alpha = 0.0
			}

			if alpha > 0.0 {
				idx := img.PixOffset(x, y)
				a := uint8(math.Min(alpha, 1.0) * 255.0)
				img.Pix[idx] = 255
				img.Pix[idx+1] = 255
				img.Pix[idx+2] = 255
				img.Pix[idx+3] = a
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding a valid in-memory NRGBA never fails.
		panic(err)
	}
	return buf.Bytes()
}
