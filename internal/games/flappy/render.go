package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-shark/internal/core"
)

// Glyphs for the terminal renderer
const (
	SharkBody   = '█'
	SharkFin    = '▲'
	SharkNose   = '◗'
	JellyBell   = '▄'
	JellyBody   = '█'
	SeaweedChar = '⌇'
	SeaDotChar  = '·'
	BubbleBig   = 'o'
	BubbleSmall = '°'
)

// tentacles cycles per animation frame so frames read differently on screen.
var tentacles = []rune{'│', '╎', '┆', '╎'}

// seaweed is the tile pattern: relative x offset (per mille of the tile
// width) and stalk height in rows.
var seaweed = []struct{ at, height int }{
	{60, 3}, {210, 5}, {330, 2}, {480, 4}, {620, 6}, {770, 3}, {900, 4},
}

// Render draws the session into dst, scaling world units to cells.
// z-order: background, obstacles, bubbles, shark, score, game-over overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.actor == nil {
		return
	}
	vp := core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst.Width(), dst.Height())

	g.drawBackground(dst, vp)
	for _, pair := range g.pool.Pairs() {
		drawJellyfish(dst, vp.CellRect(pair.TopBox()), pair.Top.Frame, true)
		drawJellyfish(dst, vp.CellRect(pair.BottomBox()), pair.Bottom.Frame, false)
	}
	for _, p := range g.particles.Items() {
		r := vp.CellRect(p.Box())
		glyph := BubbleSmall
		if p.Scale >= 0.75 {
			glyph = BubbleBig
		}
		dst.SetColored(r.X, r.Y, glyph, core.ColorCyan)
	}
	drawShark(dst, vp.CellRect(g.actor.Box()))

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorWhite)
	if g.holding && g.phase == PhaseRunning {
		dst.DrawTextCentered(dst.Height()/3, "Get ready...", core.ColorYellow)
	}

	if g.phase == PhaseGameOver {
		g.drawGameOver(dst, vp)
	}
}

// drawBackground draws both tiles. Each tile repeats the same seaweed and
// sand pattern so the seam between them is invisible.
func (g *Game) drawBackground(dst *core.Screen, vp core.Viewport) {
	w := g.background.Width()
	bottom := dst.Height() - 1
	for _, tile := range g.background.Tiles {
		left := int(tile)
		for _, s := range seaweed {
			col := vp.Col(left + w*s.at/1000)
			for dy := 0; dy < s.height; dy++ {
				dst.SetColored(col, bottom-dy, SeaweedChar, core.ColorTeal)
			}
		}
		step := max(w/16, 1)
		for x := 0; x < w; x += step {
			dst.SetColored(vp.Col(left+x), bottom, SeaDotChar, core.ColorYellow)
		}
	}
}

// drawJellyfish fills r with a jellyfish. The bell faces the gap: at the
// bottom of a top obstacle and at the top of a bottom obstacle.
func drawJellyfish(dst *core.Screen, r core.Rect, frame int, top bool) {
	if r.Empty() {
		return
	}
	bell := r.Y
	if top {
		bell = r.Bottom() - 1
	}
	tentacle := tentacles[frame%len(tentacles)]

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			switch {
			case y == bell:
				dst.SetColored(x, y, JellyBell, core.ColorPink)
			case (top && y == bell-1) || (!top && y == bell+1):
				dst.SetColored(x, y, JellyBody, core.ColorMagenta)
			case (x-r.X+frame)%2 == 0:
				dst.SetColored(x, y, tentacle, core.ColorMagenta)
			}
		}
	}
}

// drawShark fills r with the shark facing right.
func drawShark(dst *core.Screen, r core.Rect) {
	if r.Empty() {
		return
	}
	dst.FillRect(r, SharkBody, core.ColorGray)
	dst.SetColored(r.X+r.W/2, r.Y, SharkFin, core.ColorOrange)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, SharkNose, core.ColorWhite)
}

// drawGameOver draws the title, score, restart button and prompt.
func (g *Game) drawGameOver(dst *core.Screen, vp core.Viewport) {
	midY := dst.Height() / 2

	dst.DrawTextCentered(midY-4, "Game Over!", core.ColorBrightRed)
	dst.DrawTextCentered(midY-2, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	// Drawn over the cells its world rectangle covers, so a click on it
	// maps back inside RestartButton.
	btn := vp.CellRect(g.RestartButton())
	label := "Start Over"
	if btn.H >= 3 {
		dst.FillRect(btn, ' ', core.ColorDefault)
		dst.DrawBox(btn, core.ColorPink)
	} else {
		dst.FillRect(btn, '▒', core.ColorPink)
		label = "[ Start Over ]"
	}
	labelX := btn.X + (btn.W-len([]rune(label)))/2
	dst.DrawText(labelX, btn.Y+btn.H/2, label, core.ColorWhite)

	dst.DrawTextCentered(btn.Bottom()+1, "Press SPACE or click to start over", core.ColorGray)
}
