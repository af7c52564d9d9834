package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
)

// Particle is a cosmetic bubble drifting upward. It never collides.
type Particle struct {
	X     float64 // Left edge
	Y     float64 // Top edge
	Scale float64
	Speed int
	Size  int // Rendered side length, base size times scale
}

// Box returns the particle's rectangle.
func (p Particle) Box() core.Rect {
	return core.RectAt(p.X, p.Y, p.Size, p.Size)
}

// Particles is the bubble field.
type Particles struct {
	items    []Particle
	baseSize int
	fieldH   int
}

// NewParticles scatters cfg.Count bubbles over the field. Each bubble's
// center is uniform over the field; scale and speed are drawn from the
// configured ranges.
func NewParticles(cfg config.GameConfig, rng *rand.Rand) *Particles {
	pc := cfg.Particles
	ps := &Particles{
		items:    make([]Particle, 0, pc.Count),
		baseSize: pc.Size,
		fieldH:   cfg.Screen.Height,
	}

	for i := 0; i < pc.Count; i++ {
		scale := pc.MinScale + rng.Float64()*(pc.MaxScale-pc.MinScale)
		size := int(float64(pc.Size) * scale)
		cx := rng.Intn(cfg.Screen.Width + 1)
		cy := rng.Intn(cfg.Screen.Height + 1)
		ps.items = append(ps.items, Particle{
			X:     float64(cx - size/2),
			Y:     float64(cy - size/2),
			Scale: scale,
			Speed: pc.MinSpeed + rng.Intn(pc.MaxSpeed-pc.MinSpeed+1),
			Size:  size,
		})
	}
	return ps
}

// Step floats every bubble up by its speed. A bubble whose bottom edge has
// risen above the field reappears below it.
func (ps *Particles) Step() {
	for i := range ps.items {
		p := &ps.items[i]
		p.Y -= float64(p.Speed)
		if p.Y+float64(p.Size) < 0 {
			p.Y = float64(ps.fieldH + ps.baseSize)
		}
	}
}

// Items returns the bubbles. Callers must not modify them.
func (ps *Particles) Items() []Particle {
	return ps.items
}
