package platform

import (
	"github.com/vovakirdan/flappy-shark/internal/core"
	"github.com/vovakirdan/flappy-shark/internal/games/flappy"
)

// SpriteKind selects the image a sprite is drawn with.
type SpriteKind int

const (
	SpriteBackground SpriteKind = iota
	SpriteObstacle
	SpriteParticle
	SpriteActor
)

// Sprite is one image placement in world coordinates.
type Sprite struct {
	Kind  SpriteKind
	Frame int // Obstacle animation frame
	Rect  core.Rect
}

// Scene returns the sprites of the current frame in draw order: background
// tiles, obstacles, particles, then the actor.
func Scene(g *flappy.Game) []Sprite {
	world := g.World()
	pairs := g.Pairs()
	particles := g.Particles()
	bg := g.Background()

	sprites := make([]Sprite, 0, len(bg.Tiles)+2*len(pairs)+len(particles)+1)
	for _, x := range bg.Tiles {
		sprites = append(sprites, Sprite{
			Kind: SpriteBackground,
			Rect: core.RectAt(x, 0, world.W, world.H),
		})
	}
	for _, p := range pairs {
		sprites = append(sprites,
			Sprite{Kind: SpriteObstacle, Frame: p.Top.Frame, Rect: p.TopBox()},
			Sprite{Kind: SpriteObstacle, Frame: p.Bottom.Frame, Rect: p.BottomBox()},
		)
	}
	for _, p := range particles {
		sprites = append(sprites, Sprite{Kind: SpriteParticle, Rect: p.Box()})
	}
	actor := g.Actor()
	sprites = append(sprites, Sprite{Kind: SpriteActor, Rect: actor.Box()})
	return sprites
}
