// Package monitor decides, on every poll tick, whether the clipboard holds
// new image content and runs the transparency pass when it does.
//
// The monitor's only state is a fingerprint of the content it last accounted
// for — the platform change counter where one exists, a digest of the pixel
// bytes otherwise. Recording the fingerprint after each read or write is
// what keeps the monitor from feeding its own output back into an endless
// processing loop.
package monitor

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicky-tree55/bgclipper/internal/clip"
	"github.com/nicky-tree55/bgclipper/internal/color"
	"github.com/nicky-tree55/bgclipper/internal/scan"
)

// Result is the outcome of one poll.
type Result string

const (
	// ResultProcessed means an image was found and scanned; when any pixel
	// changed it was also written back.
	ResultProcessed Result = "processed"
	// ResultNoImage means the clipboard holds no image.
	ResultNoImage Result = "no-image"
	// ResultSkipped means the clipboard content has not changed since the
	// last poll that accounted for it.
	ResultSkipped Result = "skipped"
)

// Strategy selects the change-detection mechanism.
type Strategy string

const (
	// StrategyAuto uses the platform change counter when the provider has
	// one and falls back to content hashing otherwise.
	StrategyAuto Strategy = "auto"
	// StrategyCounter skips unchanged content without transferring pixel
	// data, using the provider's clipboard change counter.
	StrategyCounter Strategy = "counter"
	// StrategyHash reads and digests the full image every poll. Costs a full
	// image transfer per tick but works on every platform.
	StrategyHash Strategy = "hash"
)

// ParseStrategy converts a string to a Strategy, returning StrategyAuto for
// unknown values.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(s) {
	case "counter":
		return StrategyCounter
	case "hash", "digest":
		return StrategyHash
	default:
		return StrategyAuto
	}
}

// ColorSource yields the target background color for each poll.
type ColorSource interface {
	LoadTargetColor() (color.Color, error)
}

// Monitor orchestrates one clipboard poll at a time. It is not safe for
// concurrent use: the caller must serialize ProcessOnce calls (a single
// timer goroutine is sufficient).
type Monitor struct {
	provider clip.Provider
	colors   ColorSource
	counter  clip.ChangeCounter // nil → hash strategy

	// Fingerprint of the last content accounted for. Updated only on the
	// success paths of ProcessOnce; meaningful only while haveFP is true.
	haveFP  bool
	fpCount uint64
	fpSum   [sha256.Size]byte
}

// New returns a Monitor for the given provider and color source.
// StrategyCounter fails when the provider exposes no change counter;
// StrategyAuto degrades to hashing instead.
func New(provider clip.Provider, colors ColorSource, strategy Strategy) (*Monitor, error) {
	m := &Monitor{provider: provider, colors: colors}
	counter, ok := provider.(clip.ChangeCounter)
	switch strategy {
	case StrategyCounter:
		if !ok {
			return nil, fmt.Errorf("provider %q exposes no change counter", provider.Name())
		}
		m.counter = counter
	case StrategyHash:
	case StrategyAuto:
		if ok {
			m.counter = counter
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	return m, nil
}

// Strategy reports the effective strategy after auto-detection.
func (m *Monitor) Strategy() Strategy {
	if m.counter != nil {
		return StrategyCounter
	}
	return StrategyHash
}

// ProcessOnce runs a single poll: detect whether the clipboard content is
// new, scan it against the configured target color, and write the result
// back when any pixel changed. Collaborator failures abort the poll with a
// descriptive error and leave the fingerprint untouched; the next tick
// starts over from scratch.
func (m *Monitor) ProcessOnce() (Result, error) {
	if m.counter != nil {
		return m.processCounter()
	}
	return m.processHash()
}

// processCounter compares the platform change counter before transferring
// any pixel data, so an idle clipboard costs one counter read per tick.
func (m *Monitor) processCounter() (Result, error) {
	count, err := m.counter.ChangeCount()
	if err != nil {
		return "", fmt.Errorf("reading clipboard change count: %w", err)
	}
	if m.haveFP && count == m.fpCount {
		return ResultSkipped, nil
	}

	img, err := m.provider.GetImage()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	if img == nil {
		// Fingerprint the empty clipboard so the next tick skips without
		// another image read.
		m.setCount(count)
		return ResultNoImage, nil
	}

	changed, err := m.applyScan(img)
	if err != nil {
		return "", err
	}
	if changed == 0 {
		// Nothing to write back; writing would needlessly bump the counter.
		m.setCount(count)
		return ResultProcessed, nil
	}

	if err := m.provider.SetImage(img); err != nil {
		return "", fmt.Errorf("writing clipboard: %w", err)
	}
	// Our write bumped the counter. Re-read it so the bump is already
	// accounted for on the next poll.
	count, err = m.counter.ChangeCount()
	if err != nil {
		return "", fmt.Errorf("reading clipboard change count after write: %w", err)
	}
	m.setCount(count)
	return ResultProcessed, nil
}

// processHash transfers and digests the full image every poll. The only
// change signal available is the content itself.
func (m *Monitor) processHash() (Result, error) {
	img, err := m.provider.GetImage()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	if img == nil {
		return ResultNoImage, nil
	}

	sum := digest(img)
	if m.haveFP && sum == m.fpSum {
		return ResultSkipped, nil
	}

	changed, err := m.applyScan(img)
	if err != nil {
		return "", err
	}
	if changed == 0 {
		// The scan left the bytes untouched, so the pre-scan digest still
		// identifies what is on the clipboard.
		m.setSum(sum)
		return ResultProcessed, nil
	}

	// Digest the exact bytes being written so the next poll's read-back
	// matches and is skipped.
	sum = digest(img)
	if err := m.provider.SetImage(img); err != nil {
		return "", fmt.Errorf("writing clipboard: %w", err)
	}
	m.setSum(sum)
	return ResultProcessed, nil
}

// applyScan loads the target color and runs the transparency pass in place.
func (m *Monitor) applyScan(img *clip.Image) (int, error) {
	target, err := m.colors.LoadTargetColor()
	if err != nil {
		return 0, fmt.Errorf("loading target color: %w", err)
	}

	slog.Debug("image on clipboard",
		"width", img.Width,
		"height", img.Height,
		"bytes", len(img.Pixels),
		"target_color", target,
	)
	changed := scan.MakeTransparent(img.Pixels, target)
	slog.Debug("transparency scan complete", "pixels_changed", changed)
	return changed, nil
}

func (m *Monitor) setCount(count uint64) {
	m.haveFP = true
	m.fpCount = count
}

func (m *Monitor) setSum(sum [sha256.Size]byte) {
	m.haveFP = true
	m.fpSum = sum
}

// digest fingerprints an image over its dimensions and pixel bytes.
func digest(img *clip.Image) [sha256.Size]byte {
	h := sha256.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[:4], img.Width)
	binary.BigEndian.PutUint32(dims[4:], img.Height)
	h.Write(dims[:])
	h.Write(img.Pixels)
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
