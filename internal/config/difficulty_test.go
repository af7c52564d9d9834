package config

import (
	"errors"
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{})
	if d.IsEnabled() {
		t.Fatal("zero config should disable the ramp")
	}
	if got := d.Speed(2, 10000); got != 2 {
		t.Errorf("Speed = %f, expected base 2", got)
	}
}

func TestDifficultyRamp(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{SpeedIncrement: 0.001, MaxSpeed: 3})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 2},
		{500, 2.5},
		{1000, 3},
		{5000, 3}, // capped
	}
	for _, tc := range tests {
		if got := d.Speed(2, tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(2, %d) = %f, expected %f", tc.ticks, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultEndlessConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if math.Abs(cfg.Difficulty.SpeedIncrement-0.002) > 1e-12 {
		t.Errorf("hard increment = %f, expected 0.002", cfg.Difficulty.SpeedIncrement)
	}

	cfg = DefaultEndlessConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.SpeedIncrement != 0 {
		t.Errorf("fixed preset should disable the ramp, got %f", cfg.Difficulty.SpeedIncrement)
	}

	cfg = DefaultSharkConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Difficulty.SpeedIncrement == 0 {
		t.Error("normal preset should enable a ramp on a profile without one")
	}

	cfg = DefaultSharkConfig()
	ApplyPreset(&cfg, "")
	if cfg.Difficulty.SpeedIncrement != 0 {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParseDifficultyPreset(name)
		if err != nil {
			t.Errorf("ParseDifficultyPreset(%q): %v", name, err)
		}
		if string(p) != name {
			t.Errorf("ParseDifficultyPreset(%q) = %q", name, p)
		}
	}

	if _, err := ParseDifficultyPreset("insane"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}
