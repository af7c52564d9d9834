// Package platform holds what the terminal and window frontends share.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-shark/internal/core"
)

// LogEvents writes the notable events of one tick to logger.
func LogEvents(logger *log.Logger, game string, res core.StepResult) {
	for _, ev := range res.Events {
		switch ev {
		case core.EventCollision:
			if res.State.Terminated {
				logger.Info("run ended", "game", game, "score", res.State.Score)
			} else {
				logger.Info("game over", "game", game, "score", res.State.Score)
			}
		case core.EventRestart:
			logger.Info("restart", "game", game)
		case core.EventScore:
			logger.Debug("pair passed", "score", res.State.Score)
		case core.EventSpawn:
			logger.Debug("pair spawned")
		}
	}
}
