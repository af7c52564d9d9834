// flappy is a Flappy Bird-style arcade game: steer a baby shark between
// jellyfish, in the terminal or in a window.
//
// Usage:
//
//	flappy list                - List available profiles
//	flappy play [profile]      - Play in the terminal (default: shark)
//	flappy menu                - Pick a profile interactively, then play
//	flappy window [profile]    - Play in a window with image assets
//	flappy config [profile]    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom profile YAML
//	--difficulty <name>   - Speed ramp preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Log every spawn and pass
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-shark/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Baby Shark - swim between the jellyfish",
	Long: `Flappy Baby Shark is a side-scrolling arcade game. Flap to rise,
let gravity pull you down, and swim through the gaps between jellyfish.

Profiles:
  shark    - Animated jellyfish, bubbles, restart after game over
  classic  - Static jellyfish, no bubbles, the game exits on the first hit
  endless  - Like shark, with a short start hold and a speed ramp

Examples:
  flappy list
  flappy play
  flappy play classic --fps 30
  flappy window shark --assets ./assets --scale 1.5
  flappy config endless --difficulty hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom profile config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
