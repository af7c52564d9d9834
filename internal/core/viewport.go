package core

// Viewport maps world coordinates onto a grid of terminal cells and back.
// The world is stretched to fill the grid on both axes.
type Viewport struct {
	WorldW, WorldH int
	Cols, Rows     int
}

// NewViewport creates a viewport for a world of worldW x worldH units shown
// on cols x rows cells.
func NewViewport(worldW, worldH, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

func (v Viewport) valid() bool {
	return v.WorldW > 0 && v.WorldH > 0 && v.Cols > 0 && v.Rows > 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Col returns the cell column containing world x.
func (v Viewport) Col(x int) int {
	if !v.valid() {
		return 0
	}
	return floorDiv(x*v.Cols, v.WorldW)
}

// Row returns the cell row containing world y.
func (v Viewport) Row(y int) int {
	if !v.valid() {
		return 0
	}
	return floorDiv(y*v.Rows, v.WorldH)
}

// CellRect returns the cells covered by a world rectangle. A non-empty world
// rectangle always covers at least one cell.
func (v Viewport) CellRect(r Rect) Rect {
	if r.Empty() || !v.valid() {
		return Rect{}
	}
	x0, y0 := v.Col(r.Left()), v.Row(r.Top())
	x1, y1 := v.Col(r.Right()-1)+1, v.Row(r.Bottom()-1)+1
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld returns the world point at the center of cell (col, row).
func (v Viewport) ToWorld(col, row int) Point {
	if !v.valid() {
		return Point{}
	}
	return Pt(
		floorDiv((2*col+1)*v.WorldW, 2*v.Cols),
		floorDiv((2*row+1)*v.WorldH, 2*v.Rows),
	)
}
