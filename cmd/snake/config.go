package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the configuration the game would run with, after the config file
and flags are applied. With --default, print the embedded default YAML.

Examples:
  snake config
  snake config -r 12
  snake config --default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the embedded default YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	res, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(res.Config)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", res.Source)
	for _, sk := range res.Skipped {
		fmt.Fprintf(out, "# skipped %s: %v\n", sk.Path, sk.Err)
	}
	_, err = out.Write(data)
	return err
}
