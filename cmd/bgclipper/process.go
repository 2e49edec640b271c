package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicky-tree55/bgclipper/internal/clip"
	"github.com/nicky-tree55/bgclipper/internal/monitor"
)

func newProcessCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run a single clipboard poll and exit",
		Long: `Reads the clipboard once, makes target-color pixels transparent, and
writes the image back. Prints the outcome (processed, no-image, skipped).
Useful for scripting and for debugging the watcher without a tray.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runProcess(v) },
	}

	f := cmd.Flags()
	f.String("strategy", "auto", "change detection: auto|counter|hash")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runProcess(v *viper.Viper) error {
	setupLogging(v)

	colors, err := colorProviderFrom(v)
	if err != nil {
		return err
	}

	provider := clip.New()
	defer provider.Close()

	mon, err := monitor.New(provider, colors, monitor.ParseStrategy(v.GetString("strategy")))
	if err != nil {
		return err
	}

	res, err := mon.ProcessOnce()
	if err != nil {
		return err
	}
	fmt.Println(res)
	return nil
}
