// Package rowan is a small tile-map level editor shell for [Ebitengine].
//
// Rowan provides a scene graph of renderable/updatable nodes, a tile-grid
// view, a camera with eased scrolling, and a keyboard event source that feeds
// a reactive event-stream core ([github.com/ashgrove/rowan/react]). The
// editor never polls input directly: key events flow through react chains
// built from map/select/reject/buffer/accumulate operators, and handlers
// attached to those chains mutate editor state.
//
// # Quick start
//
//	scene := rowan.NewScene(640, 480)
//	grid := rowan.NewGridView("level", 20, 15, 32)
//	scene.Root().AddChild(grid.Node())
//
//	kb := rowan.NewKeyboard(ebiten.KeyArrowLeft, ebiten.KeyArrowRight)
//	kb.Events().
//		Select(func(args ...any) bool { return args[1] == rowan.KeyPress }).
//		SubscribeFunc(func(args ...any) {
//			// args[0] is the ebiten.Key, args[1] the KeyAction.
//		})
//
//	stack := rowan.NewStateStack(rowan.NewSceneState(scene, kb, nil))
//	rowan.Run(stack, rowan.RunConfig{Title: "Editor", Width: 640, Height: 480})
//
// # Drawing
//
// Nodes draw through a [DrawContext], an explicit session object wrapping the
// destination image and the active camera with fill/stroke/line/text
// primitives. There is no global drawing state.
//
// [Ebitengine]: https://ebitengine.org
package rowan
