package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ashgrove/rowan/react"
)

// Default key repeat timing in ticks (at 60 TPS: 0.4s delay, then 20 Hz).
const (
	defaultRepeatDelay    = 24
	defaultRepeatInterval = 3
)

// Keyboard samples key state once per tick and pushes (key, action) tuples
// into a reactive event stream. Editor code never polls: it attaches operator
// chains to Events and reacts.
//
// Each tracked key produces KeyPress the tick it goes down, KeyRepeat at the
// configured cadence while held, and KeyRelease the tick it goes up.
type Keyboard struct {
	// RepeatDelay is the number of held ticks before the first KeyRepeat.
	RepeatDelay int
	// RepeatInterval is the number of ticks between subsequent KeyRepeats.
	RepeatInterval int

	events  *react.Reactor
	tracked []ebiten.Key
	held    map[ebiten.Key]int // ticks the key has been down, 0 = up
}

// NewKeyboard creates a keyboard source tracking the given keys.
// Panics if no keys are given: a source that can never emit is a wiring bug.
func NewKeyboard(keys ...ebiten.Key) *Keyboard {
	if len(keys) == 0 {
		panic("rowan: NewKeyboard requires at least one key")
	}
	return &Keyboard{
		RepeatDelay:    defaultRepeatDelay,
		RepeatInterval: defaultRepeatInterval,
		events:         react.NewReactor(),
		tracked:        append([]ebiten.Key(nil), keys...),
		held:           make(map[ebiten.Key]int, len(keys)),
	}
}

// Events returns the root reactor that key events are pushed into. Attach
// operator chains here. Each event is the two-element tuple
// (ebiten.Key, KeyAction).
func (k *Keyboard) Events() *react.Reactor {
	return k.events
}

// Update samples the live keyboard and emits events for this tick.
// Call once per tick, before scene updates.
func (k *Keyboard) Update() {
	k.step(ebiten.IsKeyPressed)
}

// step runs one tick of the key state machine against the given sampler.
// Split from Update so tests can drive synthetic key states.
func (k *Keyboard) step(isDown func(ebiten.Key) bool) {
	for _, key := range k.tracked {
		down := isDown(key)
		heldTicks := k.held[key]

		switch {
		case down && heldTicks == 0:
			k.held[key] = 1
			k.events.Call(key, KeyPress)

		case down:
			heldTicks++
			k.held[key] = heldTicks
			if heldTicks > k.RepeatDelay && (heldTicks-k.RepeatDelay-1)%k.RepeatInterval == 0 {
				k.events.Call(key, KeyRepeat)
			}

		case heldTicks > 0:
			k.held[key] = 0
			k.events.Call(key, KeyRelease)
		}
	}
}

// HeldKeys returns the tracked keys currently down, in tracking order.
func (k *Keyboard) HeldKeys() []ebiten.Key {
	var keys []ebiten.Key
	for _, key := range k.tracked {
		if k.held[key] > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

// Chord reports whether every given key is currently held.
func (k *Keyboard) Chord(keys ...ebiten.Key) bool {
	return ContainsAll(k.HeldKeys(), keys)
}
