package orion

import (
	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/oliverbestmann/pixloop/glm"
)

//go:generate go tool stringer -type=InputState

// InputState is the per frame transition class of a digital input.
type InputState uint8

const (
	Idle InputState = iota

	// Pressed is reported for exactly one frame after the input went down
	Pressed

	Held

	// Released is reported for exactly one frame after the input went up
	Released
)

// signal is the raw state of a digital input within the current generation.
type signal struct {
	down     bool
	pressed  bool
	released bool
}

type buttons[K comparable] struct {
	raw       map[K]*signal
	committed map[K]InputState
}

func newButtons[K comparable]() buttons[K] {
	return buttons[K]{
		raw:       map[K]*signal{},
		committed: map[K]InputState{},
	}
}

func (b *buttons[K]) signal(key K) *signal {
	sig, ok := b.raw[key]
	if !ok {
		sig = &signal{}
		b.raw[key] = sig
	}

	return sig
}

func (b *buttons[K]) press(key K) {
	sig := b.signal(key)
	if sig.down {
		// key repeat
		return
	}

	sig.down = true
	sig.pressed = true
}

func (b *buttons[K]) release(key K) {
	sig, ok := b.raw[key]
	if !ok || !sig.down {
		return
	}

	sig.down = false
	sig.released = true
}

func (b *buttons[K]) commit() {
	for key, sig := range b.raw {
		next := transition(b.committed[key], sig)

		sig.pressed = false
		sig.released = false

		if next == Idle {
			delete(b.committed, key)

			if !sig.down {
				delete(b.raw, key)
			}

			continue
		}

		b.committed[key] = next
	}
}

func transition(state InputState, sig *signal) InputState {
	switch state {
	case Pressed:
		if sig.released || !sig.down {
			return Released
		}

		return Held

	case Held:
		if sig.released || !sig.down {
			return Released
		}

		return Held

	default:
		// Idle and Released both go down again on a new press
		if sig.pressed || sig.down {
			return Pressed
		}

		return Idle
	}
}

func (b *buttons[K]) state(key K) InputState {
	return b.committed[key]
}

// InputTracker turns the stream of platform input events into a per frame
// snapshot. Events only touch the raw generation, queries only read the
// committed one. Commit moves the raw generation into the committed one and
// must be called once per real frame.
type InputTracker struct {
	keys  buttons[glimpse.Key]
	mouse buttons[glimpse.MouseButton]

	// accumulated since the last commit
	cursorRaw   glm.Vec2f
	cursorValid bool
	scrollRaw   glm.Vec2f
	motionRaw   glm.Vec2f

	// visible since the last commit
	cursor      glm.Vec2f
	scrollDelta glm.Vec2f
	motionDelta glm.Vec2f

	window       glimpse.WindowID
	filterWindow bool
}

func NewInputTracker() *InputTracker {
	return &InputTracker{
		keys:  newButtons[glimpse.Key](),
		mouse: newButtons[glimpse.MouseButton](),
	}
}

// ForWindow restricts the tracker to events of the given window.
func (in *InputTracker) ForWindow(id glimpse.WindowID) {
	in.window = id
	in.filterWindow = true
}

func (in *InputTracker) accepts(id glimpse.WindowID) bool {
	return !in.filterWindow || in.window == id
}

// Process records a single platform event in the raw generation.
// Events that are not input events are ignored.
func (in *InputTracker) Process(ev glimpse.Event) {
	switch ev := ev.(type) {
	case glimpse.KeyInput:
		if !in.accepts(ev.Window) || ev.Key == glimpse.KeyUnknown {
			return
		}

		switch ev.Action {
		case glimpse.Press:
			in.keys.press(ev.Key)
		case glimpse.Release:
			in.keys.release(ev.Key)
		}

	case glimpse.MouseButtonInput:
		if !in.accepts(ev.Window) {
			return
		}

		switch ev.Action {
		case glimpse.Press:
			in.mouse.press(ev.Button)
		case glimpse.Release:
			in.mouse.release(ev.Button)
		}

	case glimpse.CursorMoved:
		if !in.accepts(ev.Window) {
			return
		}

		position := glm.Vec2f{ev.X, ev.Y}

		// the first position after startup is not a movement
		if in.cursorValid {
			in.motionRaw = in.motionRaw.Add(position.Sub(in.cursorRaw))
		}

		in.cursorRaw = position
		in.cursorValid = true

	case glimpse.MouseWheel:
		if !in.accepts(ev.Window) {
			return
		}

		in.scrollRaw = in.scrollRaw.Add(glm.Vec2f{ev.DeltaX, ev.DeltaY})
	}
}

// Commit advances the per frame state of every key and mouse button
// exactly once and publishes cursor position and frame deltas.
func (in *InputTracker) Commit() {
	in.keys.commit()
	in.mouse.commit()

	in.cursor = in.cursorRaw

	in.scrollDelta = in.scrollRaw
	in.scrollRaw = glm.Vec2f{}

	in.motionDelta = in.motionRaw
	in.motionRaw = glm.Vec2f{}
}

func (in *InputTracker) KeyState(key glimpse.Key) InputState {
	return in.keys.state(key)
}

// IsKeyPressed returns true in the first frame the key is down.
func (in *InputTracker) IsKeyPressed(key glimpse.Key) bool {
	return in.keys.state(key) == Pressed
}

// IsKeyHeld returns true while the key stays down after the frame it was pressed in.
func (in *InputTracker) IsKeyHeld(key glimpse.Key) bool {
	return in.keys.state(key) == Held
}

// IsKeyReleased returns true in the first frame the key is up again.
func (in *InputTracker) IsKeyReleased(key glimpse.Key) bool {
	return in.keys.state(key) == Released
}

// IsKeyDown returns true if the key is either pressed or held.
func (in *InputTracker) IsKeyDown(key glimpse.Key) bool {
	state := in.keys.state(key)
	return state == Pressed || state == Held
}

func (in *InputTracker) MouseButtonState(button glimpse.MouseButton) InputState {
	return in.mouse.state(button)
}

func (in *InputTracker) IsMouseButtonPressed(button glimpse.MouseButton) bool {
	return in.mouse.state(button) == Pressed
}

func (in *InputTracker) IsMouseButtonHeld(button glimpse.MouseButton) bool {
	return in.mouse.state(button) == Held
}

func (in *InputTracker) IsMouseButtonReleased(button glimpse.MouseButton) bool {
	return in.mouse.state(button) == Released
}

func (in *InputTracker) IsMouseButtonDown(button glimpse.MouseButton) bool {
	state := in.mouse.state(button)
	return state == Pressed || state == Held
}

// Cursor returns the cursor position in window pixels.
func (in *InputTracker) Cursor() glm.Vec2f {
	return in.cursor
}

// ScrollDelta returns the scroll distance accumulated during the last frame.
func (in *InputTracker) ScrollDelta() glm.Vec2f {
	return in.scrollDelta
}

// MotionDelta returns the cursor movement accumulated during the last frame.
func (in *InputTracker) MotionDelta() glm.Vec2f {
	return in.motionDelta
}
