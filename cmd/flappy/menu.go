package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-shark/internal/platform/tui"
	"github.com/vovakirdan/flappy-shark/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a profile from a menu, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a profile.
After a run ends you return to the menu to play again.

Examples:
  flappy menu
  flappy menu --fps 30 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := terminalLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = result.Config
		if result.Quit {
			break
		}

		// Surface config problems before taking over the screen.
		_, _, source, err := loadProfile([]string{result.GameID})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		logger.Info("config loaded", "profile", result.GameID, "source", source)

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if _, err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
