package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset scales the speed ramp of a profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for difficulty names that are not presets.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParseDifficultyPreset validates a preset name. The empty name is allowed
// and means no preset.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
}

// RampMultiplier returns how strongly a preset applies the configured ramp.
// An empty or unknown preset keeps the config as is.
func RampMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	case DifficultyFixed:
		return 0
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Profiles without a ramp get the endless default ramp for easy, normal and
// hard so the preset has a visible effect.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.SpeedIncrement = 0
		return
	}
	if cfg.Difficulty.SpeedIncrement == 0 {
		cfg.Difficulty = DefaultEndlessConfig().Difficulty
	}
	cfg.Difficulty.SpeedIncrement *= RampMultiplier(preset)
}

// DifficultyManager computes the scroll speed for the current tick.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.SpeedIncrement > 0
}

// Speed returns base plus the ramp accumulated over ticks, capped at
// MaxSpeed when a cap is set. The cap never lowers a base above it.
func (d *DifficultyManager) Speed(base float64, ticks int) float64 {
	if !d.IsEnabled() || ticks <= 0 {
		return base
	}
	speed := base + float64(ticks)*d.cfg.SpeedIncrement
	if d.cfg.MaxSpeed > 0 && speed > d.cfg.MaxSpeed {
		speed = max(d.cfg.MaxSpeed, base)
	}
	return speed
}
