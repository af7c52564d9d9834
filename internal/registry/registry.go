// Package registry provides a global registry for game factories.
// Profiles register themselves in init() functions, allowing the frontends
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/flappy-shark/internal/core"
)

// Game is the interface every playable profile implements.
// Games contain pure logic with no frontend dependencies (no Bubble Tea,
// no Ebitengine). The frontend handles input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier (e.g., "shark", "classic").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state and loads its configuration.
	// Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. now is the monotonic time
	// of the tick; every timer inside the game is measured against it.
	Step(in core.InputFrame, now time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, terminated).
	State() core.GameState

	// World returns the playfield in world units. Frontends scale it to
	// their own surface.
	World() core.Rect
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
