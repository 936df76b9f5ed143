package rowan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cursorPulseMin      = 0.35
	cursorPulseMax      = 0.85
	cursorPulseDuration = 0.6 // seconds, one direction
)

// EmptyTile marks a grid cell with no palette entry.
const EmptyTile = -1

// GridView is a scene graph view over a rectangular tile grid. Each cell
// holds a palette index (or EmptyTile), and a cursor cell marks where the
// next edit lands. The view draws only the tile window visible through the
// camera.
type GridView struct {
	node *Node

	cols, rows int
	// TileSize is the edge length of one tile in world units.
	TileSize float64

	// Palette maps cell values to fill colors.
	Palette []Color

	// ShowLines toggles the grid line overlay.
	ShowLines bool
	// LineColor is the grid line color.
	LineColor Color
	// CursorColor is the cursor highlight color; its alpha pulses.
	CursorColor Color

	cells     []int
	cursorCol int
	cursorRow int

	// Cursor pulse animation.
	pulse       *gween.Tween
	pulseRising bool
	pulseAlpha  float64
}

// NewGridView creates a grid of cols x rows tiles, all empty, with the cursor
// at the top-left cell. Panics if cols, rows, or tileSize is not positive.
func NewGridView(name string, cols, rows int, tileSize float64) *GridView {
	if cols < 1 || rows < 1 {
		panic("rowan: NewGridView requires positive dimensions")
	}
	if tileSize <= 0 {
		panic("rowan: NewGridView requires a positive tile size")
	}
	g := &GridView{
		node:        NewContainer(name),
		cols:        cols,
		rows:        rows,
		TileSize:    tileSize,
		ShowLines:   true,
		LineColor:   Color{1, 1, 1, 0.12},
		CursorColor: Color{1, 1, 1, 1},
		cells:       make([]int, cols*rows),
		pulse:       gween.New(cursorPulseMin, cursorPulseMax, cursorPulseDuration, ease.InOutQuad),
		pulseRising: true,
		pulseAlpha:  cursorPulseMin,
	}
	for i := range g.cells {
		g.cells[i] = EmptyTile
	}
	g.node.OnUpdate = g.update
	g.node.customDraw = g.draw
	return g
}

// Node returns the underlying scene graph node for this view.
func (g *GridView) Node() *Node {
	return g.node
}

// Cols returns the grid width in tiles.
func (g *GridView) Cols() int { return g.cols }

// Rows returns the grid height in tiles.
func (g *GridView) Rows() int { return g.rows }

// Bounds returns the grid's world-space rectangle, relative to its node.
func (g *GridView) Bounds() Rect {
	return Rect{
		Width:  float64(g.cols) * g.TileSize,
		Height: float64(g.rows) * g.TileSize,
	}
}

// SetTile assigns a palette index to the cell at (col, row).
// Out-of-bounds coordinates are ignored.
func (g *GridView) SetTile(col, row, paletteIndex int) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = paletteIndex
}

// Tile returns the palette index at (col, row), or EmptyTile when the cell is
// empty or out of bounds.
func (g *GridView) Tile(col, row int) int {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return EmptyTile
	}
	return g.cells[row*g.cols+col]
}

// Fill assigns the palette index to every cell.
func (g *GridView) Fill(paletteIndex int) {
	for i := range g.cells {
		g.cells[i] = paletteIndex
	}
}

// Clear empties every cell.
func (g *GridView) Clear() {
	g.Fill(EmptyTile)
}

// Cursor returns the cursor cell.
func (g *GridView) Cursor() (col, row int) {
	return g.cursorCol, g.cursorRow
}

// MoveCursor moves the cursor by (dc, dr) tiles, clamped to the grid.
func (g *GridView) MoveCursor(dc, dr int) {
	g.cursorCol = clampInt(g.cursorCol+dc, 0, g.cols-1)
	g.cursorRow = clampInt(g.cursorRow+dr, 0, g.rows-1)
}

// SetCursor places the cursor at (col, row), clamped to the grid.
func (g *GridView) SetCursor(col, row int) {
	g.cursorCol = clampInt(col, 0, g.cols-1)
	g.cursorRow = clampInt(row, 0, g.rows-1)
}

// PaintCursor assigns the palette index to the cell under the cursor.
func (g *GridView) PaintCursor(paletteIndex int) {
	g.SetTile(g.cursorCol, g.cursorRow, paletteIndex)
}

// EraseCursor empties the cell under the cursor.
func (g *GridView) EraseCursor() {
	g.SetTile(g.cursorCol, g.cursorRow, EmptyTile)
}

// CursorWorld returns the world-space top-left corner of the cursor cell.
func (g *GridView) CursorWorld() (x, y float64) {
	wx, wy := g.node.WorldPosition()
	return wx + float64(g.cursorCol)*g.TileSize, wy + float64(g.cursorRow)*g.TileSize
}

// update advances the cursor pulse each tick.
func (g *GridView) update(dt float64) {
	val, done := g.pulse.Update(float32(dt))
	g.pulseAlpha = float64(val)
	if done {
		if g.pulseRising {
			g.pulse = gween.New(cursorPulseMax, cursorPulseMin, cursorPulseDuration, ease.InOutQuad)
		} else {
			g.pulse = gween.New(cursorPulseMin, cursorPulseMax, cursorPulseDuration, ease.InOutQuad)
		}
		g.pulseRising = !g.pulseRising
	}
}

// visibleWindow intersects the camera's visible world rect with the grid and
// returns the covered tile range. ok is false when nothing is visible.
// originX/originY is the grid's world position.
func (g *GridView) visibleWindow(view Rect, originX, originY float64) (startCol, startRow, cols, rows int, ok bool) {
	local := Rect{
		X:      view.X - originX,
		Y:      view.Y - originY,
		Width:  view.Width,
		Height: view.Height,
	}
	if !local.Intersects(g.Bounds()) {
		return 0, 0, 0, 0, false
	}

	startCol = clampInt(int(math.Floor(local.X/g.TileSize)), 0, g.cols-1)
	startRow = clampInt(int(math.Floor(local.Y/g.TileSize)), 0, g.rows-1)

	// +1 covers the partial tile at the leading edge when the view is not
	// tile-aligned.
	cols = CeilDiv(int(math.Ceil(local.Width)), int(g.TileSize)) + 1
	rows = CeilDiv(int(math.Ceil(local.Height)), int(g.TileSize)) + 1

	if startCol+cols > g.cols {
		cols = g.cols - startCol
	}
	if startRow+rows > g.rows {
		rows = g.rows - startRow
	}
	return startCol, startRow, cols, rows, true
}

// draw is the customDraw callback: filled cells, grid lines, then the cursor
// highlight, restricted to the visible tile window.
func (g *GridView) draw(ctx *DrawContext, worldX, worldY float64) {
	startCol, startRow, cols, rows, ok := g.visibleWindow(ctx.VisibleBounds(), worldX, worldY)
	if !ok {
		return
	}
	ts := g.TileSize

	for r := startRow; r < startRow+rows; r++ {
		rowOffset := r * g.cols
		for c := startCol; c < startCol+cols; c++ {
			idx := g.cells[rowOffset+c]
			if idx < 0 || idx >= len(g.Palette) {
				continue
			}
			ctx.FillRect(worldX+float64(c)*ts, worldY+float64(r)*ts, ts, ts, g.Palette[idx])
		}
	}

	if g.ShowLines {
		x0 := worldX + float64(startCol)*ts
		y0 := worldY + float64(startRow)*ts
		x1 := worldX + float64(startCol+cols)*ts
		y1 := worldY + float64(startRow+rows)*ts
		for c := startCol; c <= startCol+cols; c++ {
			x := worldX + float64(c)*ts
			ctx.Line(x, y0, x, y1, 1, g.LineColor)
		}
		for r := startRow; r <= startRow+rows; r++ {
			y := worldY + float64(r)*ts
			ctx.Line(x0, y, x1, y, 1, g.LineColor)
		}
	}

	// Cursor highlight, pulsing.
	cx := worldX + float64(g.cursorCol)*ts
	cy := worldY + float64(g.cursorRow)*ts
	ctx.FillRect(cx, cy, ts, ts, g.CursorColor.WithAlpha(g.pulseAlpha*0.4))
	ctx.StrokeRect(cx, cy, ts, ts, 2, g.CursorColor.WithAlpha(g.pulseAlpha))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
