// Package flappy implements a Flappy Bird-style game with a shark swimming
// between jellyfish. The player flaps to rise against gravity and scores a
// point for every pair of jellyfish passed.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
	"github.com/vovakirdan/flappy-shark/internal/registry"
)

// Phase is the session state.
type Phase int

const (
	PhaseRunning  Phase = iota // Actor is live
	PhaseGameOver              // Run ended, waiting for restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game is one play session of a profile.
type Game struct {
	profile config.Profile
	cfg     config.GameConfig

	// Simulation
	actor      *Actor
	pool       *Pool
	particles  *Particles
	background Background
	rng        *rand.Rand

	// Session state
	phase      Phase
	terminated bool
	score      int
	tickCount  int
	startedAt  time.Duration
	holding    bool
	pending    bool // Timers start on the first Step after Reset

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
}

// New creates a session for the given profile. The configuration is loaded
// on Reset.
func New(p config.Profile) *Game {
	return &Game{profile: p}
}

// NewWithConfig creates a session that uses cfg instead of loading one.
func NewWithConfig(p config.Profile, cfg config.GameConfig) *Game {
	g := New(p)
	g.cfg = cfg
	return g
}

// ID returns the profile name.
func (g *Game) ID() string {
	return string(g.profile)
}

// Title returns the display name for this profile.
func (g *Game) Title() string {
	if g.cfg.Title != "" {
		return g.cfg.Title
	}
	cfg, err := config.Default(g.profile)
	if err != nil {
		return string(g.profile)
	}
	return cfg.Title
}

// Reset prepares a fresh session. When no configuration was given up front it
// is loaded from the configured path, falling back to the profile default.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg.Screen.Width == 0 {
		cfg, _, err := config.Load(g.profile, configPath)
		if err != nil {
			cfg, _ = config.Default(g.profile)
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.pool = nil
	g.pending = true
	g.restart(0)
}

// restart rebuilds the run in place with every timer starting at now.
func (g *Game) restart(now time.Duration) {
	g.actor = NewActor(g.cfg)
	if g.pool == nil {
		g.pool = NewPool(g.cfg, g.rng, now)
	} else {
		g.pool.Reset(now)
	}
	g.particles = NewParticles(g.cfg, g.rng)
	g.background = NewBackground(g.cfg.Screen.Width)

	g.phase = PhaseRunning
	g.terminated = false
	g.score = 0
	g.tickCount = 0
	g.startedAt = now
	g.holding = g.cfg.Actor.Hold() > 0
}

// Step advances the session by one tick observed at now.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	if g.pending {
		g.pending = false
		g.pool.Reset(now)
		g.startedAt = now
	}

	if g.terminated {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) || in.PressedIn(g.RestartButton()) {
			g.restart(now)
			return core.StepResult{State: g.State(), Events: []core.Event{core.EventRestart}}
		}
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	g.tickCount++

	// Actor
	g.holding = now-g.startedAt < g.cfg.Actor.Hold()
	if !g.holding {
		if in.Has(core.ActionJump) || in.Pressed() {
			g.actor.Flap()
			events = append(events, core.EventFlap)
		}
		g.actor.Step()
	}

	// Scrolling
	speed := g.difficulty.Speed(g.cfg.Obstacles.Speed, g.tickCount)
	g.background.Step(g.difficulty.Speed(g.cfg.Background.Speed, g.tickCount))

	if g.pool.Spawn(now) {
		events = append(events, core.EventSpawn)
	}
	g.pool.Advance(now, speed)

	// Collision ends the run, but passes on this tick still count.
	if g.pool.Collides(g.actor.Box()) {
		events = append(events, core.EventCollision)
		if g.cfg.Session.Restart {
			g.phase = PhaseGameOver
		} else {
			g.terminated = true
		}
	}

	passed := g.pool.CheckPass(g.actor.Box().Left())
	for i := 0; i < passed; i++ {
		events = append(events, core.EventScore)
	}
	g.score += passed

	g.pool.RetireOffscreen()
	g.particles.Step()

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.phase == PhaseGameOver,
		Terminated: g.terminated,
	}
}

// World returns the playfield in world units.
func (g *Game) World() core.Rect {
	return core.NewRect(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height)
}

// RestartButton returns the game-over button: centered horizontally, top
// edge at mid height.
func (g *Game) RestartButton() core.Rect {
	w, h := g.cfg.Session.ButtonWidth, g.cfg.Session.ButtonHeight
	return core.NewRect(g.cfg.Screen.Width/2-w/2, g.cfg.Screen.Height/2, w, h)
}

// Accessors used by renderers.

func (g *Game) Config() config.GameConfig { return g.cfg }
func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Score() int { return g.score }
func (g *Game) Holding() bool { return g.holding }
func (g *Game) Actor() Actor { return *g.actor }
func (g *Game) Pairs() []Pair { return g.pool.Pairs() }
func (g *Game) Particles() []Particle { return g.particles.Items() }
func (g *Game) Background() Background { return g.background }

// Register the profiles with the registry
func init() {
	for _, p := range config.Profiles() {
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}
