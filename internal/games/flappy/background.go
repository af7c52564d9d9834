package flappy

// Background is two copies of one full-width tile scrolling left. A tile that
// has scrolled a whole width off screen jumps back to the right edge.
type Background struct {
	Tiles [2]float64 // Left edge of each tile
	width float64
}

// NewBackground places the tiles at 0 and width.
func NewBackground(width int) Background {
	w := float64(width)
	return Background{Tiles: [2]float64{0, w}, width: w}
}

// Step shifts both tiles left by speed and wraps any tile at or beyond -width.
func (b *Background) Step(speed float64) {
	for i := range b.Tiles {
		b.Tiles[i] -= speed
		if b.Tiles[i] <= -b.width {
			b.Tiles[i] = b.width
		}
	}
}

// Width returns the tile width.
func (b Background) Width() int {
	return int(b.width)
}
