package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and the camera.
type Scene struct {
	root   *Node
	camera *Camera

	// ClearColor fills the screen before the node tree draws.
	ClearColor Color

	updateFunc func() error
}

// NewScene creates a scene with a pre-created root container and a camera
// whose viewport covers width x height and which starts centered on it.
func NewScene(width, height float64) *Scene {
	cam := NewCamera(Rect{Width: width, Height: height})
	cam.X = width / 2
	cam.Y = height / 2
	return &Scene{
		root:       NewContainer("root"),
		camera:     cam,
		ClearColor: ColorBlack,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetUpdateFunc registers a callback invoked once per tick, after the node
// tree updates. Returning a non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the camera and every node's OnUpdate callback, depth-first
// in tree order, then runs the per-scene update callback.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.camera.Update(float32(dt))
	updateNode(s.root, dt)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

func updateNode(n *Node, dt float64) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		updateNode(child, dt)
	}
}

// Draw clears the screen and paints the node tree depth-first, children in
// ZIndex order, through a DrawContext bound to the scene camera.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	ctx := NewDrawContext(screen, s.camera)
	drawNode(s.root, ctx, 0, 0, 1)
}

// drawNode paints a single node and recurses into its children. ox/oy is the
// parent's world position; alpha is the accumulated ancestor alpha.
func drawNode(n *Node, ctx *DrawContext, ox, oy, alpha float64) {
	if !n.Visible || n.Alpha <= 0 {
		return
	}
	wx := ox + n.X
	wy := oy + n.Y
	nodeAlpha := alpha * n.Alpha
	ctx.alpha = nodeAlpha

	switch n.Type {
	case NodeTypeRect:
		if n.Filled {
			ctx.FillRect(wx, wy, n.Width, n.Height, n.Fill)
		}
		if n.StrokeWidth > 0 {
			ctx.StrokeRect(wx, wy, n.Width, n.Height, n.StrokeWidth, n.Stroke)
		}
	case NodeTypeLabel:
		if n.Text != "" {
			ctx.Text(wx, wy, n.Text)
		}
	}

	if n.customDraw != nil {
		n.customDraw(ctx, wx, wy)
	}

	for _, child := range n.sortedByZ() {
		drawNode(child, ctx, wx, wy, nodeAlpha)
	}
}
