//go:build linux

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type linuxProvider struct{}

// New returns the Linux clipboard provider, or a headless no-op provider if
// the display environment is unavailable (e.g. a server without X11 or
// Wayland). X11 exposes no clipboard change counter, so this provider does
// not implement ChangeCounter and callers fall back to content hashing.
func New() Provider {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessProvider{}
	}
	return &linuxProvider{}
}

func (p *linuxProvider) Name() string { return "Linux clipboard" }

func (p *linuxProvider) GetImage() (*Image, error) { return readImage() }
func (p *linuxProvider) SetImage(img *Image) error { return writeImage(img) }
func (p *linuxProvider) Close()                    {}
