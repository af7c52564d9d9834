// Package window runs a game in a desktop window with Ebitengine, drawing
// the profile's image assets scaled to each object's box.
package window

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-shark/internal/assets"
	"github.com/vovakirdan/flappy-shark/internal/core"
	"github.com/vovakirdan/flappy-shark/internal/games/flappy"
	"github.com/vovakirdan/flappy-shark/internal/platform"
)

// Overlay colors
var (
	dimColor    = color.RGBA{0, 0, 0, 140}
	buttonColor = color.RGBA{255, 105, 180, 255}
	borderColor = color.RGBA{255, 255, 255, 255}
	titleColor  = color.RGBA{255, 80, 80, 255}
)

// Options configures the window.
type Options struct {
	Scale    float64 // Window size relative to the world size
	TickRate int
}

// sprites holds the GPU copies of the asset images.
type sprites struct {
	actor      *ebiten.Image
	background *ebiten.Image
	particle   *ebiten.Image
	obstacles  []*ebiten.Image
}

// Game adapts a flappy session to ebiten.Game.
type Game struct {
	game     *flappy.Game
	clock    core.Clock
	logger   *log.Logger
	sprites  sprites
	large    *text.GoTextFace
	small    *text.GoTextFace
	input    core.InputFrame
	touchIDs []ebiten.TouchID
}

// New prepares a window game. The session must already be Reset.
func New(game *flappy.Game, imgs *assets.Images, clock core.Clock, logger *log.Logger) (*Game, error) {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	g := &Game{
		game:   game,
		clock:  clock,
		logger: logger,
		large:  &text.GoTextFace{Source: src, Size: 32},
		small:  &text.GoTextFace{Source: src, Size: 14},
		input:  core.NewInputFrame(),
		sprites: sprites{
			actor:      ebiten.NewImageFromImage(imgs.Actor),
			background: ebiten.NewImageFromImage(imgs.Background),
		},
	}
	if imgs.Particle != nil {
		g.sprites.particle = ebiten.NewImageFromImage(imgs.Particle)
	}
	for _, img := range imgs.Obstacles {
		g.sprites.obstacles = append(g.sprites.obstacles, ebiten.NewImageFromImage(img))
	}
	return g, nil
}

// Update polls input once and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit", "game", g.game.ID(), "score", g.game.Score())
		return ebiten.Termination
	}

	g.input.Clear()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.input.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.Set(core.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.input.Press(core.Pt(ebiten.CursorPosition()))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		g.input.Press(core.Pt(ebiten.TouchPosition(id)))
	}

	res := g.game.Step(g.input, g.clock.Now())
	platform.LogEvents(g.logger, g.game.ID(), res)
	if res.State.Terminated {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the scene, the score and the game-over overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range platform.Scene(g.game) {
		if img := g.image(s); img != nil {
			drawSprite(screen, img, s.Rect)
		}
	}

	g.drawText(screen, fmt.Sprintf("Score: %d", g.game.Score()), g.small, 12, 12, color.White, false)

	world := g.game.World()
	cx := float64(world.W) / 2
	if g.game.Holding() && g.game.Phase() == flappy.PhaseRunning {
		g.drawText(screen, "Get ready...", g.small, cx, float64(world.H)/3, color.White, true)
	}
	if g.game.Phase() == flappy.PhaseGameOver {
		g.drawGameOver(screen, world)
	}
}

// image returns the asset for a sprite, or nil if the profile has none.
func (g *Game) image(s platform.Sprite) *ebiten.Image {
	switch s.Kind {
	case platform.SpriteBackground:
		return g.sprites.background
	case platform.SpriteObstacle:
		if len(g.sprites.obstacles) == 0 {
			return nil
		}
		return g.sprites.obstacles[s.Frame%len(g.sprites.obstacles)]
	case platform.SpriteParticle:
		return g.sprites.particle
	case platform.SpriteActor:
		return g.sprites.actor
	}
	return nil
}

// drawSprite stretches img over r.
func drawSprite(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

func (g *Game) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

func (g *Game) drawGameOver(screen *ebiten.Image, world core.Rect) {
	vector.DrawFilledRect(screen, 0, 0, float32(world.W), float32(world.H), dimColor, false)

	cx, cy := float64(world.W)/2, float64(world.H)/2
	g.drawText(screen, "Game Over!", g.large, cx, cy-120, titleColor, true)
	g.drawText(screen, fmt.Sprintf("Score: %d", g.game.Score()), g.small, cx, cy-60, color.White, true)

	btn := g.game.RestartButton()
	x, y := float32(btn.X), float32(btn.Y)
	w, h := float32(btn.W), float32(btn.H)
	vector.DrawFilledRect(screen, x, y, w, h, buttonColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
	center := btn.Center()
	g.drawText(screen, "Start Over", g.small, float64(center.X), float64(center.Y), color.White, true)

	g.drawText(screen, "Press SPACE or TAP to start over", g.small, cx, float64(btn.Bottom()+40), color.White, true)
}

// Layout keeps the logical screen at the world size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	world := g.game.World()
	return world.W, world.H
}

// Run opens the window and blocks until it is closed or the run ends.
func Run(g *Game, opts Options) error {
	world := g.game.World()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(world.W)*scale), int(float64(world.H)*scale))
	ebiten.SetWindowTitle(g.game.Title())
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	ebiten.SetTPS(tickRate)

	g.logger.Info("window opened", "game", g.game.ID(), "fps", tickRate, "scale", scale)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	g.logger.Info("window closed", "game", g.game.ID(), "score", g.game.Score())
	return nil
}
