//go:build darwin || windows || linux

package clip

import "golang.design/x/clipboard"

// readImage reads the clipboard image via golang.design/x/clipboard and
// converts it to raw RGBA. Returns nil, nil when no image is present.
func readImage() (*Image, error) {
	data := clipboard.Read(clipboard.FmtImage)
	if data == nil {
		return nil, nil
	}
	return decodePNG(data)
}

// writeImage encodes the image and puts it on the clipboard.
func writeImage(img *Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
