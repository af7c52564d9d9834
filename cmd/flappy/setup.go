package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
}

// terminalLogger returns the logger for the terminal frontend. The alternate
// screen owns stdout, so logs go to --log-file or nowhere.
func terminalLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// windowLogger returns the logger for the window frontend.
func windowLogger() (*log.Logger, func(), error) {
	if flagLogFile != "" {
		return terminalLogger()
	}
	return newLogger(os.Stderr), func() {}, nil
}

// loadProfile resolves the optional profile argument and its effective
// configuration, with the --config and --difficulty flags applied.
func loadProfile(args []string) (config.Profile, config.GameConfig, string, error) {
	name := string(config.ProfileShark)
	if len(args) > 0 {
		name = args[0]
	}

	p, err := config.ParseProfile(name)
	if err != nil {
		return "", config.GameConfig{}, "", err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return "", config.GameConfig{}, "", err
	}

	cfg, source, err := config.Load(p, flagConfig)
	if err != nil {
		return "", config.GameConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return p, cfg, source, nil
}

// runtimeConfig builds the frontend settings from the flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail prints one diagnostic line and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
