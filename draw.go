package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawContext is the drawing session a scene traversal hands to each node:
// a destination image plus the active camera, with fill/stroke/line/text
// primitives that take world-space coordinates. It is threaded explicitly
// through the draw pass — there is no process-wide drawing state.
type DrawContext struct {
	dst   *ebiten.Image
	cam   *Camera
	alpha float64 // accumulated ancestor alpha for the node being drawn
}

// NewDrawContext creates a drawing session targeting dst through cam.
// Panics if dst or cam is nil.
func NewDrawContext(dst *ebiten.Image, cam *Camera) *DrawContext {
	if dst == nil {
		panic("rowan: NewDrawContext requires a destination image")
	}
	if cam == nil {
		panic("rowan: NewDrawContext requires a camera")
	}
	return &DrawContext{dst: dst, cam: cam, alpha: 1}
}

// Camera returns the camera this context draws through.
func (ctx *DrawContext) Camera() *Camera {
	return ctx.cam
}

// VisibleBounds returns the world-space rectangle visible through the camera.
func (ctx *DrawContext) VisibleBounds() Rect {
	return ctx.cam.VisibleBounds()
}

// applyAlpha folds the accumulated traversal alpha into a color.
func (ctx *DrawContext) applyAlpha(c Color) Color {
	if ctx.alpha >= 1 {
		return c
	}
	return c.WithAlpha(c.A * ctx.alpha)
}

// FillRect fills the world-space rectangle (x, y, w, h) with c.
func (ctx *DrawContext) FillRect(x, y, w, h float64, c Color) {
	sx, sy := ctx.cam.WorldToScreen(x, y)
	z := ctx.cam.Zoom
	vector.DrawFilledRect(ctx.dst,
		float32(sx), float32(sy), float32(w*z), float32(h*z),
		ctx.applyAlpha(c).toRGBA(), false)
}

// StrokeRect outlines the world-space rectangle (x, y, w, h) with c.
// The stroke width is in screen pixels, independent of zoom.
func (ctx *DrawContext) StrokeRect(x, y, w, h, strokeWidth float64, c Color) {
	sx, sy := ctx.cam.WorldToScreen(x, y)
	z := ctx.cam.Zoom
	vector.StrokeRect(ctx.dst,
		float32(sx), float32(sy), float32(w*z), float32(h*z),
		float32(strokeWidth), ctx.applyAlpha(c).toRGBA(), false)
}

// Line draws a line between two world-space points.
// The stroke width is in screen pixels, independent of zoom.
func (ctx *DrawContext) Line(x0, y0, x1, y1, strokeWidth float64, c Color) {
	sx0, sy0 := ctx.cam.WorldToScreen(x0, y0)
	sx1, sy1 := ctx.cam.WorldToScreen(x1, y1)
	vector.StrokeLine(ctx.dst,
		float32(sx0), float32(sy0), float32(sx1), float32(sy1),
		float32(strokeWidth), ctx.applyAlpha(c).toRGBA(), false)
}

// Text draws a debug-font string at the given world-space position.
func (ctx *DrawContext) Text(x, y float64, s string) {
	sx, sy := ctx.cam.WorldToScreen(x, y)
	ebitenutil.DebugPrintAt(ctx.dst, s, int(sx), int(sy))
}

// ScreenText draws a debug-font string at a fixed screen position, ignoring
// the camera. Used for HUD overlays.
func (ctx *DrawContext) ScreenText(x, y int, s string) {
	ebitenutil.DebugPrintAt(ctx.dst, s, x, y)
}
