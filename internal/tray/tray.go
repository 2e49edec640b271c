// Package tray runs the menu-bar shell: a systray icon with an
// Enable/Disable toggle and the poll timer that drives the monitor.
package tray

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/systray"

	"github.com/nicky-tree55/bgclipper/internal/config"
	"github.com/nicky-tree55/bgclipper/internal/monitor"
)

// DefaultInterval is the clipboard polling cadence when enabled.
const DefaultInterval = 500 * time.Millisecond

// App owns the tray icon, its menu, and the poll loop.
type App struct {
	mon      *monitor.Monitor
	interval time.Duration
	enabled  bool
}

// New returns an App polling mon at the given interval (DefaultInterval when
// zero or negative). Processing starts enabled.
func New(mon *monitor.Monitor, interval time.Duration) *App {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &App{
		mon:      mon,
		interval: interval,
		enabled:  true,
	}
}

// Run blocks until Quit is chosen from the menu.
func (a *App) Run() {
	systray.Run(a.onReady, func() {})
}

func (a *App) onReady() {
	systray.SetIcon(iconPNG())
	systray.SetTooltip("bgclipper")

	status := systray.AddMenuItem("bgclipper: watching", "")
	status.Disable()
	systray.AddSeparator()
	toggle := systray.AddMenuItem("Disable", "Pause clipboard processing")
	quit := systray.AddMenuItem("Quit", "Exit bgclipper")

	go a.loop(status, toggle, quit)
}

// loop is the single goroutine driving the monitor; it serializes every
// ProcessOnce call, as the monitor requires.
func (a *App) loop(status, toggle, quit *systray.MenuItem) {
	t := time.NewTicker(a.interval)
	defer t.Stop()
	for {
		select {
		case <-quit.ClickedCh:
			slog.Info("quit requested")
			systray.Quit()
			return
		case <-toggle.ClickedCh:
			a.setEnabled(!a.enabled, status, toggle)
		case <-t.C:
			if a.enabled {
				a.tick(status, toggle)
			}
		}
	}
}

func (a *App) setEnabled(on bool, status, toggle *systray.MenuItem) {
	a.enabled = on
	if on {
		toggle.SetTitle("Disable")
		status.SetTitle("bgclipper: watching")
		slog.Info("monitoring enabled")
	} else {
		toggle.SetTitle("Enable")
		status.SetTitle("bgclipper: paused")
		slog.Info("monitoring disabled")
	}
}

func (a *App) tick(status, toggle *systray.MenuItem) {
	res, err := a.mon.ProcessOnce()
	switch {
	case err == nil:
		if res == monitor.ResultProcessed {
			slog.Info("clipboard image processed")
		}
	case errors.Is(err, config.ErrMalformed):
		// A broken config file fails every poll identically; alert once and
		// pause until the user re-enables from the menu.
		slog.Warn("config error, pausing", "err", err)
		showAlert("bgclipper: Config Error", err.Error())
		a.setEnabled(false, status, toggle)
	default:
		slog.Error("clipboard poll failed", "err", err)
	}
}
