//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger bgclipper_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type darwinProvider struct{}

// New returns the macOS clipboard provider.
// clipboard.Init is called here rather than in init() so that CLI
// sub-commands (color, version) that never touch the clipboard don't log
// spurious warnings.
func New() Provider {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	return &darwinProvider{}
}

func (p *darwinProvider) Name() string { return "macOS NSPasteboard" }

// ChangeCount returns NSPasteboard's changeCount, which increments on every
// clipboard write by any process.
func (p *darwinProvider) ChangeCount() (uint64, error) {
	return uint64(C.bgclipper_changeCount()), nil
}

func (p *darwinProvider) GetImage() (*Image, error) { return readImage() }
func (p *darwinProvider) SetImage(img *Image) error { return writeImage(img) }
func (p *darwinProvider) Close()                    {}
