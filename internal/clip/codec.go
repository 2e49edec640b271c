package clip

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// decodePNG converts PNG bytes — the interchange format of
// golang.design/x/clipboard — into a raw RGBA Image. Source images in other
// PNG color models (grayscale, palette, opaque truecolor) are converted.
func decodePNG(data []byte) (*Image, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding clipboard png: %w", err)
	}

	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || nrgba.Stride != b.Dx()*4 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}

	return &Image{
		Pixels: nrgba.Pix,
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
	}, nil
}

// encodePNG converts a raw RGBA Image back into PNG bytes for the clipboard.
func encodePNG(img *Image) ([]byte, error) {
	w, h := int(img.Width), int(img.Height)
	if len(img.Pixels) != w*h*4 {
		return nil, fmt.Errorf("image buffer is %d bytes, want %d for %dx%d RGBA",
			len(img.Pixels), w*h*4, w, h)
	}

	nrgba := &image.NRGBA{
		Pix:    img.Pixels,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgba); err != nil {
		return nil, fmt.Errorf("encoding clipboard png: %w", err)
	}
	return buf.Bytes(), nil
}
