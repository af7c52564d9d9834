package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-shark/internal/config"
	"github.com/vovakirdan/flappy-shark/internal/core"
)

// Obstacle is one half of a pair. Its horizontal position belongs to the pair
// so both halves always move together.
type Obstacle struct {
	Y      int // Top edge
	Width  int
	Height int
	Frame  int // Animation frame, always in [0, frames)
}

// Box returns the obstacle's rectangle at horizontal position x.
func (o Obstacle) Box(x float64) core.Rect {
	return core.RectAt(x, float64(o.Y), o.Width, o.Height)
}

// Pair is a top and bottom obstacle around one gap.
type Pair struct {
	X         float64 // Left edge shared by both halves
	GapCenter int
	Passed    bool // Set once when the actor clears the pair
	Top       Obstacle
	Bottom    Obstacle
}

// newPair builds a pair at x whose halves sit gap/2 above and below center.
func newPair(x float64, center int, cfg config.ObstacleConfig) Pair {
	half := cfg.Gap / 2
	return Pair{
		X:         x,
		GapCenter: center,
		Top: Obstacle{
			Y:      center - half - cfg.Height,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		Bottom: Obstacle{
			Y:      center + half,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
	}
}

// TopBox returns the collision rectangle of the top half.
func (p Pair) TopBox() core.Rect {
	return p.Top.Box(p.X)
}

// BottomBox returns the collision rectangle of the bottom half.
func (p Pair) BottomBox() core.Rect {
	return p.Bottom.Box(p.X)
}

// Right returns the trailing (rightmost) edge of the pair.
func (p Pair) Right() int {
	return p.TopBox().Right()
}

// Offscreen reports whether the pair has fully left the field on the left.
func (p Pair) Offscreen() bool {
	return p.Right() < 0
}

// Collides reports whether box touches either half of the pair.
func (p Pair) Collides(box core.Rect) bool {
	return box.Intersects(p.TopBox()) || box.Intersects(p.BottomBox())
}

// CheckPass marks the pair passed the first time its trailing edge is
// strictly left of actorLeft, and reports whether that happened now.
func (p *Pair) CheckPass(actorLeft int) bool {
	if p.Passed || p.Right() >= actorLeft {
		return false
	}
	p.Passed = true
	return true
}

// Pool holds the live pairs in spawn order and owns the spawn and
// animation timers.
type Pool struct {
	pairs  []Pair
	cfg    config.ObstacleConfig
	rng    *rand.Rand
	fieldW int
	fieldH int
	spawn  core.Timer
	frame  core.Timer
}

// NewPool creates an empty pool whose timers start at now.
func NewPool(cfg config.GameConfig, rng *rand.Rand, now time.Duration) *Pool {
	p := &Pool{
		pairs:  make([]Pair, 0, 8),
		cfg:    cfg.Obstacles,
		rng:    rng,
		fieldW: cfg.Screen.Width,
		fieldH: cfg.Screen.Height,
	}
	p.Reset(now)
	return p
}

// Reset drops every pair and restarts both timers from now.
func (p *Pool) Reset(now time.Duration) {
	p.pairs = p.pairs[:0]
	p.spawn = core.NewTimer(p.cfg.SpawnInterval(), now)
	p.frame = core.NewTimer(p.cfg.FrameDelay(), now)
}

// Spawn adds a pair at the right edge when the spawn interval has elapsed
// since the previous spawn. It reports whether a pair was added.
func (p *Pool) Spawn(now time.Duration) bool {
	if !p.spawn.Fire(now) {
		return false
	}
	p.add(p.sampleGapCenter())
	return true
}

// sampleGapCenter draws a center uniformly from [margin, height-margin].
func (p *Pool) sampleGapCenter() int {
	lo := p.cfg.GapMargin
	hi := p.fieldH - p.cfg.GapMargin
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}

// add appends a pair with the given gap center at the spawn position.
func (p *Pool) add(center int) *Pair {
	p.pairs = append(p.pairs, newPair(float64(p.fieldW), center, p.cfg))
	return &p.pairs[len(p.pairs)-1]
}

// Advance moves every pair left by speed. When the frame delay has elapsed
// every obstacle steps to its next animation frame on this same tick.
func (p *Pool) Advance(now time.Duration, speed float64) {
	for i := range p.pairs {
		p.pairs[i].X -= speed
	}

	if p.cfg.Frames <= 1 || !p.frame.Fire(now) {
		return
	}
	for i := range p.pairs {
		pair := &p.pairs[i]
		pair.Top.Frame = (pair.Top.Frame + 1) % p.cfg.Frames
		pair.Bottom.Frame = (pair.Bottom.Frame + 1) % p.cfg.Frames
	}
}

// Collides reports whether box touches any half of any live pair.
func (p *Pool) Collides(box core.Rect) bool {
	for _, pair := range p.pairs {
		if pair.Collides(box) {
			return true
		}
	}
	return false
}

// CheckPass marks newly passed pairs and returns how many there were.
func (p *Pool) CheckPass(actorLeft int) int {
	passed := 0
	for i := range p.pairs {
		if p.pairs[i].CheckPass(actorLeft) {
			passed++
		}
	}
	return passed
}

// RetireOffscreen removes pairs that have scrolled past the left edge and
// returns how many were removed.
func (p *Pool) RetireOffscreen() int {
	kept := p.pairs[:0]
	for _, pair := range p.pairs {
		if !pair.Offscreen() {
			kept = append(kept, pair)
		}
	}
	removed := len(p.pairs) - len(kept)
	clear(p.pairs[len(kept):])
	p.pairs = kept
	return removed
}

// Pairs returns the live pairs in spawn order. Callers must not modify them.
func (p *Pool) Pairs() []Pair {
	return p.pairs
}

// Len returns the number of live pairs.
func (p *Pool) Len() int {
	return len(p.pairs)
}
