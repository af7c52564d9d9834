package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig contains the frontend-provided settings a game needs at reset.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (cells or pixels), used for scaling only
	ScreenH  int   // Frontend height (cells or pixels), used for scaling only
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0,
	}
}

// GameState is the status a game reports to its frontend after each tick.
type GameState struct {
	Score      int  // Obstacle pairs passed in the current run
	GameOver   bool // Run ended and the game waits for a restart
	Terminated bool // Run ended and the game has no restart; the frontend should exit
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Notable things that happened this tick, in order
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Event is something a frontend may want to log or react to.
type Event int

const (
	EventNone      Event = iota
	EventFlap            // Actor received an impulse
	EventSpawn           // An obstacle pair entered the field
	EventScore           // An obstacle pair was passed
	EventCollision       // The actor hit an obstacle
	EventRestart         // The session was reset after game over
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventCollision:
		return "collision"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}
