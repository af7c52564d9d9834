package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-shark/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [profile]",
	Short: "Print the effective configuration of a profile",
	Long: `Print the configuration a run would use, as YAML, after the
search order and the --config and --difficulty flags are applied.
Save the output as ~/.flappy-shark/configs/<profile>.yaml to customize it.

Examples:
  flappy config
  flappy config classic > ~/.flappy-shark/configs/classic.yaml
  flappy config endless --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	profile, cfg, source, err := loadProfile(args)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# profile: %s\n# source: %s\n", profile, source)
	_, err = out.Write(data)
	return err
}
