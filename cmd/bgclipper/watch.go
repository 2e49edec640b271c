package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicky-tree55/bgclipper/internal/clip"
	"github.com/nicky-tree55/bgclipper/internal/config"
	"github.com/nicky-tree55/bgclipper/internal/monitor"
	"github.com/nicky-tree55/bgclipper/internal/tray"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard and process images (tray app)",
		Long: `Starts the clipboard watcher. On every poll tick, a new clipboard image
has its background pixels (the configured target color) made transparent
and is written back in place. Content bgclipper wrote itself is never
re-processed.

By default a system tray icon with an Enable/Disable toggle is shown.
Use --no-tray on headless or server sessions.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runWatch(v) },
	}

	f := cmd.Flags()
	f.Duration("interval", tray.DefaultInterval, "clipboard poll interval")
	f.String("strategy", "auto", "change detection: auto|counter|hash")
	f.Bool("no-tray", false, "run without the tray icon (poll loop only)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(v *viper.Viper) error {
	setupLogging(v)

	interval := v.GetDuration("interval")
	strategy := monitor.ParseStrategy(v.GetString("strategy"))

	colors, err := colorProviderFrom(v)
	if err != nil {
		return err
	}
	if err := colors.EnsureExists(); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	provider := clip.New()
	defer provider.Close()

	mon, err := monitor.New(provider, colors, strategy)
	if err != nil {
		return err
	}

	slog.Info("bgclipper starting",
		"version", Version,
		"backend", provider.Name(),
		"strategy", mon.Strategy(),
		"interval", interval,
		"config", colors.Path(),
	)

	if v.GetBool("no-tray") {
		return pollLoop(mon, interval)
	}

	tray.New(mon, interval).Run()
	return nil
}

// pollLoop drives the monitor without a tray until SIGINT/SIGTERM. A
// malformed config file aborts the loop instead of failing every tick the
// same way; other errors are logged and the next tick retries from scratch.
func pollLoop(mon *monitor.Monitor, interval time.Duration) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case s := <-sig:
			slog.Info("shutting down", "signal", s)
			return nil
		case <-t.C:
			res, err := mon.ProcessOnce()
			if err != nil {
				if errors.Is(err, config.ErrMalformed) {
					return fmt.Errorf("config error: %w", err)
				}
				slog.Error("clipboard poll failed", "err", err)
				continue
			}
			if res == monitor.ResultProcessed {
				slog.Info("clipboard image processed")
			}
		}
	}
}
