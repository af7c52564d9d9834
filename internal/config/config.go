// Package config provides YAML-based game configuration with embedded
// per-profile defaults and the speed ramp used by the endless profile.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Profile names one configuration of the game.
type Profile string

const (
	// ProfileShark has bubbles, animated jellyfish and a restart screen.
	ProfileShark Profile = "shark"
	// ProfileClassic has a single jellyfish image and exits on the first hit.
	ProfileClassic Profile = "classic"
	// ProfileEndless is ProfileShark with a start hold and a speed ramp.
	ProfileEndless Profile = "endless"
)

// Profiles returns every known profile in display order.
func Profiles() []Profile {
	return []Profile{ProfileShark, ProfileClassic, ProfileEndless}
}

// ErrUnknownProfile is returned for profile names that have no defaults.
var ErrUnknownProfile = errors.New("unknown profile")

// ParseProfile validates a profile name.
func ParseProfile(name string) (Profile, error) {
	for _, p := range Profiles() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownProfile, name)
}

// GameConfig is the full configuration of one game profile.
// Distances are world units; the field is Screen.Width x Screen.Height.
type GameConfig struct {
	Title      string           `yaml:"title"`
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Particles  ParticleConfig   `yaml:"particles"`
	Background BackgroundConfig `yaml:"background"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Assets     AssetConfig      `yaml:"assets"`
}

// ScreenConfig is the size of the play field.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig holds per-tick actor physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
}

// ActorConfig places and sizes the player sprite.
type ActorConfig struct {
	StartX int `yaml:"start_x"` // Horizontal center of the actor
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	HoldMs int `yaml:"hold_ms"` // Frozen period after each reset
}

// Hold returns the start hold as a duration.
func (a ActorConfig) Hold() time.Duration {
	return time.Duration(a.HoldMs) * time.Millisecond
}

// ObstacleConfig describes obstacle pairs.
type ObstacleConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Gap             int     `yaml:"gap"`        // Vertical clearance between top and bottom
	GapMargin       int     `yaml:"gap_margin"` // Gap center stays this far from the edges
	Speed           float64 `yaml:"speed"`      // Leftward movement per tick
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	FrameDelayMs    int     `yaml:"frame_delay_ms"`
	Frames          int     `yaml:"frames"`
}

// SpawnInterval returns the time between spawns.
func (o ObstacleConfig) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMs) * time.Millisecond
}

// FrameDelay returns the time between animation frames.
func (o ObstacleConfig) FrameDelay() time.Duration {
	return time.Duration(o.FrameDelayMs) * time.Millisecond
}

// ParticleConfig describes the decorative bubbles. Count 0 disables them.
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	Size     int     `yaml:"size"` // Size at scale 1.0
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	MinSpeed int     `yaml:"min_speed"`
	MaxSpeed int     `yaml:"max_speed"`
}

// BackgroundConfig controls the scrolling backdrop.
type BackgroundConfig struct {
	Speed float64 `yaml:"speed"`
}

// SessionConfig controls what happens when a run ends.
type SessionConfig struct {
	Restart      bool `yaml:"restart"` // false: the run terminates the game
	ButtonWidth  int  `yaml:"button_width"`
	ButtonHeight int  `yaml:"button_height"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to scroll speed every tick
	MaxSpeed       float64 `yaml:"max_speed"`       // Cap for the ramped speed, 0 = uncapped
}

// AssetConfig names the image files the window frontend loads.
type AssetConfig struct {
	Actor      string   `yaml:"actor"`
	Background string   `yaml:"background"`
	Particle   string   `yaml:"particle"`
	Obstacles  []string `yaml:"obstacles"` // One file per animation frame
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 || c.Actor.Height > c.Screen.Height {
		return fmt.Errorf("config: actor size %dx%d does not fit the screen", c.Actor.Width, c.Actor.Height)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("config: obstacle size must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.Gap < 0 {
		return fmt.Errorf("config: obstacle gap must not be negative, got %d", c.Obstacles.Gap)
	}
	if c.Obstacles.GapMargin < 0 || 2*c.Obstacles.GapMargin > c.Screen.Height {
		return fmt.Errorf("config: gap margin %d leaves no room on a %d high screen", c.Obstacles.GapMargin, c.Screen.Height)
	}
	if c.Obstacles.Frames < 1 {
		return fmt.Errorf("config: obstacles need at least one frame, got %d", c.Obstacles.Frames)
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %dms", c.Obstacles.SpawnIntervalMs)
	}
	if n := len(c.Assets.Obstacles); n != 0 && n != c.Obstacles.Frames {
		return fmt.Errorf("config: %d obstacle frames but %d obstacle images", c.Obstacles.Frames, n)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("config: particle count must not be negative, got %d", c.Particles.Count)
	}
	if c.Particles.Count > 0 {
		if c.Particles.MinScale > c.Particles.MaxScale {
			return fmt.Errorf("config: particle scale range [%g, %g] is inverted", c.Particles.MinScale, c.Particles.MaxScale)
		}
		if c.Particles.MinSpeed > c.Particles.MaxSpeed {
			return fmt.Errorf("config: particle speed range [%d, %d] is inverted", c.Particles.MinSpeed, c.Particles.MaxSpeed)
		}
	}
	if c.Session.Restart && (c.Session.ButtonWidth <= 0 || c.Session.ButtonHeight <= 0) {
		return fmt.Errorf("config: restart button must have a positive size")
	}
	return nil
}
