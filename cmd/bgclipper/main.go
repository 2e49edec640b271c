// bgclipper: make clipboard image backgrounds transparent.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicky-tree55/bgclipper/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "bgclipper",
		Short: "Make clipboard image backgrounds transparent",
		Long: `bgclipper watches the system clipboard for images and replaces every
pixel matching the configured background color with full transparency,
writing the result back in place. Content it wrote itself is never
re-processed.

Run "bgclipper watch" to start the tray app. Use "bgclipper color" to view
or change the target background color and "bgclipper process" to run a
single poll from the command line.

Config file search order (first found wins):
  /etc/bgclipper/config.toml
  $HOME/.config/bgclipper/config.toml
  path supplied via --config

All flags can be set via BGCLIPPER_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newProcessCmd(),
		newColorCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("bgclipper %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
