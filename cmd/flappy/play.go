package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-shark/internal/games/flappy"
	"github.com/vovakirdan/flappy-shark/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The profile defaults to shark.

Controls:
  Space/Up/W   - Flap (and restart after game over)
  Mouse click  - Flap, or press the Start Over button
  R            - Restart after game over
  Q/Esc/Ctrl+C - Quit

Difficulty options (speed ramp):
  easy   - Half the ramp
  normal - The endless ramp
  hard   - Double the ramp
  fixed  - No ramp, constant speed

Examples:
  flappy play
  flappy play classic
  flappy play endless --difficulty hard
  flappy play --config ./my-shark.yaml --log-file flappy.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	profile, cfg, source, err := loadProfile(args)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := terminalLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	logger.Info("config loaded", "profile", profile, "source", source)

	game := flappy.NewWithConfig(profile, cfg)
	state, err := tui.Run(game, runtimeConfig(), logger)
	if err != nil {
		closeLog()
		fail("running game: %v", err)
	}

	fmt.Printf("%s - score: %d\n", game.Title(), state.Score)
}
