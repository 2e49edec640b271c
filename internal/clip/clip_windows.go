//go:build windows

package clip

// #include <windows.h>
import "C"

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type windowsProvider struct{}

// New returns the Windows clipboard provider.
// clipboard.Init is called here rather than in init() so that CLI
// sub-commands (color, version) that never touch the clipboard don't log
// spurious warnings.
func New() Provider {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	return &windowsProvider{}
}

func (p *windowsProvider) Name() string { return "Windows Clipboard" }

// ChangeCount returns GetClipboardSequenceNumber, which increments on every
// clipboard write by any process.
func (p *windowsProvider) ChangeCount() (uint64, error) {
	return uint64(C.GetClipboardSequenceNumber()), nil
}

func (p *windowsProvider) GetImage() (*Image, error) { return readImage() }
func (p *windowsProvider) SetImage(img *Image) error { return writeImage(img) }
func (p *windowsProvider) Close()                    {}
