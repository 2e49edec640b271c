package clip

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGRoundTrip(t *testing.T) {
	img := &Image{
		Pixels: []byte{
			255, 0, 0, 255, // red
			0, 255, 0, 255, // green
			0, 0, 255, 255, // blue
			255, 255, 255, 0, // white, fully transparent
		},
		Width:  2,
		Height: 2,
	}

	data, err := encodePNG(img)
	require.NoError(t, err)

	got, err := decodePNG(data)
	require.NoError(t, err)
	assert.Equal(t, img.Width, got.Width)
	assert.Equal(t, img.Height, got.Height)
	// Transparent pixels keep their RGB bytes: PNG stores non-premultiplied
	// color, which is what the transparency scan depends on.
	assert.Equal(t, img.Pixels, got.Pixels)
}

func TestDecodeConvertsNonRGBASources(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 0})
	gray.SetGray(1, 0, color.Gray{Y: 200})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gray))

	got, err := decodePNG(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.Width)
	assert.Equal(t, uint32(1), got.Height)
	assert.Equal(t, []byte{0, 0, 0, 255, 200, 200, 200, 255}, got.Pixels)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decodePNG([]byte("definitely not a png"))
	assert.Error(t, err)
}

func TestEncodeRejectsSizeMismatch(t *testing.T) {
	_, err := encodePNG(&Image{
		Pixels: []byte{1, 2, 3, 4},
		Width:  2,
		Height: 2,
	})
	assert.Error(t, err)
}
