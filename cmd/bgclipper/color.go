package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicky-tree55/bgclipper/internal/color"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "View or change the target background color",
	}
	cmd.AddCommand(newColorGetCmd(), newColorSetCmd())
	return cmd
}

func newColorGetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "get",
		Short:   "Print the configured target color",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			colors, err := colorProviderFrom(v)
			if err != nil {
				return err
			}
			c, err := colors.LoadTargetColor()
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", c, c.Hex())
			return nil
		},
	}
	addConfigFlag(cmd)
	return cmd
}

func newColorSetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "set <color>",
		Short: "Set the target color (#rrggbb or r,g,b)",
		Long: `Persists the target background color to the config file. Accepts hex
("#e7feb6") or decimal triplet ("231,254,182") notation. The running
watcher picks the new color up on its next processed image.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			colors, err := colorProviderFrom(v)
			if err != nil {
				return err
			}
			if err := colors.SaveTargetColor(c); err != nil {
				return err
			}
			fmt.Printf("target color set to %s (%s)\n", c, c.Hex())
			return nil
		},
	}
	addConfigFlag(cmd)
	return cmd
}
