package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-shark/internal/assets"
	"github.com/vovakirdan/flappy-shark/internal/core"
	"github.com/vovakirdan/flappy-shark/internal/games/flappy"
	"github.com/vovakirdan/flappy-shark/internal/platform/window"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window [profile]",
	Short: "Play in a window with image assets",
	Long: `Open a window and play with the profile's image assets.

The asset directory must contain every file the profile names:
  shark, endless  baby_shark.png background.png bubble.png
                  jellyfish_frame_0.png .. jellyfish_frame_3.png
  classic         baby_shark.png background.png jellyfish.png

Controls:
  Space          - Flap (and restart after game over)
  Click/Tap      - Flap, or press the Start Over button
  R              - Restart after game over
  Esc            - Quit

Examples:
  flappy window --assets ./assets
  flappy window classic --assets ./assets --scale 0.75`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding the image assets")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, args []string) {
	profile, cfg, source, err := loadProfile(args)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := windowLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	logger.Info("config loaded", "profile", profile, "source", source)

	imgs, err := assets.Load(os.DirFS(flagAssets), assets.ManifestFor(cfg.Assets))
	if err != nil {
		closeLog()
		fail("%v (asset directory %s)", err, flagAssets)
	}
	logger.Info("assets loaded", "dir", flagAssets, "frames", len(imgs.Obstacles))

	game := flappy.NewWithConfig(profile, cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	w, err := window.New(game, imgs, core.NewSystemClock(), logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}
	if err := window.Run(w, window.Options{Scale: flagScale, TickRate: flagFPS}); err != nil {
		closeLog()
		fail("%v", err)
	}
}
