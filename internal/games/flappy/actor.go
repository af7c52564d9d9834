package flappy

import (
	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
)

// Actor is the player sprite. X never changes; Y is the top edge.
type Actor struct {
	X        float64
	Y        float64
	Velocity float64
	Width    int
	Height   int

	gravity float64
	impulse float64
	fieldH  int
}

// NewActor places a resting actor centered on StartX, halfway down the field.
func NewActor(cfg config.GameConfig) *Actor {
	return &Actor{
		X:        float64(cfg.Actor.StartX - cfg.Actor.Width/2),
		Y:        float64(cfg.Screen.Height/2 - cfg.Actor.Height/2),
		Velocity: 0,
		Width:    cfg.Actor.Width,
		Height:   cfg.Actor.Height,
		gravity:  cfg.Physics.Gravity,
		impulse:  cfg.Physics.FlapImpulse,
		fieldH:   cfg.Screen.Height,
	}
}

// Flap replaces the current velocity with the flap impulse.
func (a *Actor) Flap() {
	a.Velocity = a.impulse
}

// Step applies one tick of gravity and movement, then pins the actor inside
// the field. The clamp only moves the actor; velocity is kept.
func (a *Actor) Step() {
	a.Velocity += a.gravity
	a.Y += a.Velocity

	if a.Y <= 0 {
		a.Y = 0
	}
	if a.Y+float64(a.Height) >= float64(a.fieldH) {
		a.Y = float64(a.fieldH - a.Height)
	}
}

// Box returns the actor's collision rectangle.
func (a *Actor) Box() core.Rect {
	return core.RectAt(a.X, a.Y, a.Width, a.Height)
}
