package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(string(p), func(t *testing.T) {
			cfg, source, err := embedded(p)
			if err != nil {
				t.Fatalf("embedded(%s): %v", p, err)
			}
			if source != SourceEmbedded {
				t.Fatalf("embedded YAML for %s did not parse, fell back to %s", p, source)
			}

			builtin, _ := Default(p)
			if cfg.Title != builtin.Title {
				t.Errorf("title = %q, builtin %q", cfg.Title, builtin.Title)
			}
			if cfg.Physics != builtin.Physics {
				t.Errorf("physics = %+v, builtin %+v", cfg.Physics, builtin.Physics)
			}
			if cfg.Obstacles != builtin.Obstacles {
				t.Errorf("obstacles = %+v, builtin %+v", cfg.Obstacles, builtin.Obstacles)
			}
			if cfg.Session.Restart != builtin.Session.Restart {
				t.Errorf("restart = %v, builtin %v", cfg.Session.Restart, builtin.Session.Restart)
			}
			if len(cfg.Assets.Obstacles) != cfg.Obstacles.Frames {
				t.Errorf("%d obstacle images for %d frames", len(cfg.Assets.Obstacles), cfg.Obstacles.Frames)
			}
		})
	}
}

func TestSharkDefaults(t *testing.T) {
	cfg := DefaultSharkConfig()

	if cfg.Physics.Gravity != 0.25 || cfg.Physics.FlapImpulse != -5 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Obstacles.Gap != 200 || cfg.Obstacles.Speed != 2 {
		t.Errorf("obstacles = %+v", cfg.Obstacles)
	}
	if got := cfg.Obstacles.SpawnInterval().Milliseconds(); got != 2000 {
		t.Errorf("spawn interval = %dms, expected 2000", got)
	}
	if got := cfg.Obstacles.FrameDelay().Milliseconds(); got != 200 {
		t.Errorf("frame delay = %dms, expected 200", got)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\nobstacles:\n  gap: 240\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(ProfileShark, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Obstacles.Gap != 240 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Physics, cfg.Obstacles)
	}
	if cfg.Physics.FlapImpulse != -5 || cfg.Obstacles.Width != 80 {
		t.Errorf("untouched keys lost their defaults: %+v %+v", cfg.Physics, cfg.Obstacles)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(ProfileShark, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(ProfileShark, bad); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  frames: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(ProfileShark, invalid); err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestLoadUnknownProfile(t *testing.T) {
	_, _, err := Load(Profile("pong"), "")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("err = %v, expected ErrUnknownProfile", err)
	}
}

func TestParseProfile(t *testing.T) {
	if p, err := ParseProfile("classic"); err != nil || p != ProfileClassic {
		t.Errorf("ParseProfile(classic) = %q, %v", p, err)
	}
	if _, err := ParseProfile("dino"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("ParseProfile(dino) err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero screen", func(c *GameConfig) { c.Screen.Height = 0 }},
		{"actor taller than screen", func(c *GameConfig) { c.Actor.Height = 700 }},
		{"margin too large", func(c *GameConfig) { c.Obstacles.GapMargin = 301 }},
		{"no frames", func(c *GameConfig) { c.Obstacles.Frames = 0 }},
		{"frame images mismatch", func(c *GameConfig) { c.Assets.Obstacles = c.Assets.Obstacles[:2] }},
		{"inverted scale", func(c *GameConfig) { c.Particles.MinScale = 2 }},
		{"inverted speed", func(c *GameConfig) { c.Particles.MinSpeed = 5 }},
		{"no spawn interval", func(c *GameConfig) { c.Obstacles.SpawnIntervalMs = 0 }},
		{"restart without button", func(c *GameConfig) { c.Session.ButtonWidth = 0 }},
	}

	if err := DefaultSharkConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSharkConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestMarshalRoundTripsTitle(t *testing.T) {
	data, err := Marshal(DefaultClassicConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal returned no data")
	}
}
