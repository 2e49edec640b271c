// Package clip provides a unified interface to clipboard images across
// platforms. Build constraints select the appropriate implementation:
//
//	clip_darwin.go   — macOS via golang.design/x/clipboard + cgo changeCount
//	clip_windows.go  — Windows via golang.design/x/clipboard + GetClipboardSequenceNumber
//	clip_linux.go    — Linux via golang.design/x/clipboard, no change counter
//	clip_other.go    — headless / container stub
package clip

// Image is a raw RGBA pixel buffer with dimensions. Pixels holds 4 bytes per
// pixel (R, G, B, A); len(Pixels) == Width*Height*4 is maintained by every
// producer in this package.
type Image struct {
	Pixels []byte
	Width  uint32
	Height uint32
}

// Provider is the interface that all platform clipboard implementations
// satisfy.
type Provider interface {
	// Name returns a human-readable name for the provider.
	Name() string

	// GetImage returns the current clipboard image as raw RGBA.
	// Returns nil, nil if the clipboard holds no image.
	GetImage() (*Image, error)

	// SetImage replaces the clipboard contents with the given image.
	SetImage(*Image) error

	// Close releases any resources held by the provider.
	Close()
}

// ChangeCounter is implemented by providers on platforms with a cheap,
// monotonically non-decreasing clipboard change counter. The counter changes
// whenever any process writes the clipboard, this one included. Where it is
// absent callers fall back to content hashing.
type ChangeCounter interface {
	ChangeCount() (uint64, error)
}
