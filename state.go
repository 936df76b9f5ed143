package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// State is one phase of the application (an editor screen, a modal prompt).
// The state stack steps exactly one state per tick: the top.
type State interface {
	// Enter is called when the state becomes the top of the stack.
	Enter()
	// Exit is called when the state stops being the top of the stack.
	Exit()
	// Update advances the state one tick. Returning an error stops the game
	// loop; return ebiten.Termination for a clean quit.
	Update() error
	// Draw paints the state.
	Draw(screen *ebiten.Image)
}

// StateStack owns the live states. Only the top state updates and draws.
// An emptied stack terminates the game loop.
type StateStack struct {
	states []State
}

// NewStateStack creates a stack with the given initial states, bottom first.
// Enter is called on the topmost initial state only.
func NewStateStack(initial ...State) *StateStack {
	s := &StateStack{states: initial}
	if top := s.Top(); top != nil {
		top.Enter()
	}
	return s
}

// Len returns the number of stacked states.
func (s *StateStack) Len() int {
	return len(s.states)
}

// Top returns the active state, or nil when the stack is empty.
func (s *StateStack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Push suspends the current top (Exit) and activates state (Enter).
// Panics if state is nil.
func (s *StateStack) Push(state State) {
	if state == nil {
		panic("rowan: cannot push nil state")
	}
	if top := s.Top(); top != nil {
		top.Exit()
	}
	s.states = append(s.states, state)
	state.Enter()
}

// Pop deactivates and returns the top state (Exit), re-activating the one
// below (Enter). Returns nil on an empty stack.
func (s *StateStack) Pop() State {
	top := s.Top()
	if top == nil {
		return nil
	}
	top.Exit()
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
	if next := s.Top(); next != nil {
		next.Enter()
	}
	return top
}

// Replace swaps the top state for another in one transition: the old top
// exits, the new state enters, and the stack depth is unchanged.
// Equivalent to Push onto an empty stack.
func (s *StateStack) Replace(state State) {
	if state == nil {
		panic("rowan: cannot replace with nil state")
	}
	if top := s.Top(); top != nil {
		top.Exit()
		s.states[len(s.states)-1] = state
	} else {
		s.states = append(s.states, state)
	}
	state.Enter()
}

// Update steps the top state. Returns ebiten.Termination when the stack is
// empty so the game loop shuts down cleanly.
func (s *StateStack) Update() error {
	top := s.Top()
	if top == nil {
		return ebiten.Termination
	}
	return top.Update()
}

// Draw paints the top state.
func (s *StateStack) Draw(screen *ebiten.Image) {
	if top := s.Top(); top != nil {
		top.Draw(screen)
	}
}

// SceneState adapts a Scene plus an optional Keyboard into a State. The
// keyboard is sampled before the scene updates, so react handlers see editor
// state from the previous tick and mutate it for this one.
type SceneState struct {
	scene *Scene
	kb    *Keyboard

	// OnEnter and OnExit, if set, run on the corresponding transitions.
	OnEnter func()
	OnExit  func()
}

// NewSceneState wraps scene (required) and kb (optional) as a State.
func NewSceneState(scene *Scene, kb *Keyboard) *SceneState {
	if scene == nil {
		panic("rowan: NewSceneState requires a scene")
	}
	return &SceneState{scene: scene, kb: kb}
}

// Scene returns the wrapped scene.
func (s *SceneState) Scene() *Scene {
	return s.scene
}

// Enter runs the OnEnter hook.
func (s *SceneState) Enter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

// Exit runs the OnExit hook.
func (s *SceneState) Exit() {
	if s.OnExit != nil {
		s.OnExit()
	}
}

// Update samples input and steps the scene.
func (s *SceneState) Update() error {
	if s.kb != nil {
		s.kb.Update()
	}
	return s.scene.Update()
}

// Draw paints the scene.
func (s *SceneState) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen)
}
