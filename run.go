package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and game loop for Run.
type RunConfig struct {
	Title   string
	Width   int // logical width in pixels; defaults to 640
	Height  int // logical height in pixels; defaults to 480
	ShowFPS bool
}

// game adapts a StateStack to ebiten.Game.
type game struct {
	stack   *StateStack
	width   int
	height  int
	showFPS bool
}

func (g *game) Update() error {
	return g.stack.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen,
			fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and steps the state stack until it empties, a state
// returns an error, or the window closes. A clean quit (emptied stack or
// ebiten.Termination) returns nil.
func Run(stack *StateStack, cfg RunConfig) error {
	if stack == nil {
		panic("rowan: Run requires a state stack")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	return ebiten.RunGame(&game{
		stack:   stack,
		width:   cfg.Width,
		height:  cfg.Height,
		showFPS: cfg.ShowFPS,
	})
}
