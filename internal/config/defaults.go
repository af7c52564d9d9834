package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/shark.yaml
var defaultSharkYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/endless.yaml
var defaultEndlessYAML []byte

// DefaultSharkConfig returns the hardcoded shark profile, used when the
// embedded YAML cannot be parsed.
func DefaultSharkConfig() GameConfig {
	return GameConfig{
		Title:  "Flappy Baby Shark",
		Screen: ScreenConfig{Width: 800, Height: 600},
		Physics: PhysicsConfig{
			Gravity:     0.25,
			FlapImpulse: -5,
		},
		Actor: ActorConfig{
			StartX: 100,
			Width:  80,
			Height: 40,
		},
		Obstacles: ObstacleConfig{
			Width:           80,
			Height:          150,
			Gap:             200,
			GapMargin:       100,
			Speed:           2,
			SpawnIntervalMs: 2000,
			FrameDelayMs:    200,
			Frames:          4,
		},
		Particles: ParticleConfig{
			Count:    20,
			Size:     20,
			MinScale: 0.5,
			MaxScale: 1.0,
			MinSpeed: 1,
			MaxSpeed: 3,
		},
		Background: BackgroundConfig{Speed: 2},
		Session: SessionConfig{
			Restart:      true,
			ButtonWidth:  200,
			ButtonHeight: 50,
		},
		Assets: AssetConfig{
			Actor:      "baby_shark.png",
			Background: "background.png",
			Particle:   "bubble.png",
			Obstacles: []string{
				"jellyfish_frame_0.png",
				"jellyfish_frame_1.png",
				"jellyfish_frame_2.png",
				"jellyfish_frame_3.png",
			},
		},
	}
}

// DefaultClassicConfig returns the hardcoded classic profile.
func DefaultClassicConfig() GameConfig {
	cfg := DefaultSharkConfig()
	cfg.Title = "Flappy Baby Shark Classic"
	cfg.Obstacles.Frames = 1
	cfg.Obstacles.FrameDelayMs = 0
	cfg.Particles = ParticleConfig{}
	cfg.Session = SessionConfig{Restart: false}
	cfg.Assets.Particle = ""
	cfg.Assets.Obstacles = []string{"jellyfish.png"}
	return cfg
}

// DefaultEndlessConfig returns the hardcoded endless profile.
func DefaultEndlessConfig() GameConfig {
	cfg := DefaultSharkConfig()
	cfg.Title = "Flappy Baby Shark Endless"
	cfg.Actor.HoldMs = 1000
	cfg.Difficulty = DifficultyConfig{
		SpeedIncrement: 0.001,
		MaxSpeed:       8,
	}
	return cfg
}

// Default returns the hardcoded configuration for a profile.
func Default(p Profile) (GameConfig, error) {
	switch p {
	case ProfileShark:
		return DefaultSharkConfig(), nil
	case ProfileClassic:
		return DefaultClassicConfig(), nil
	case ProfileEndless:
		return DefaultEndlessConfig(), nil
	default:
		return GameConfig{}, fmt.Errorf("%w %q", ErrUnknownProfile, p)
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(p Profile) []byte {
	switch p {
	case ProfileShark:
		return defaultSharkYAML
	case ProfileClassic:
		return defaultClassicYAML
	case ProfileEndless:
		return defaultEndlessYAML
	default:
		return nil
	}
}
