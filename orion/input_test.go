package orion

import (
	"testing"

	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/oliverbestmann/pixloop/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(key glimpse.Key) glimpse.Event {
	return glimpse.KeyInput{Key: key, Action: glimpse.Press}
}

func release(key glimpse.Key) glimpse.Event {
	return glimpse.KeyInput{Key: key, Action: glimpse.Release}
}

func TestInputKeyLifecycle(t *testing.T) {
	in := NewInputTracker()

	in.Process(press(glimpse.KeyK))

	// nothing is visible before the commit
	assert.Equal(t, Idle, in.KeyState(glimpse.KeyK))

	in.Commit()
	assert.Equal(t, Pressed, in.KeyState(glimpse.KeyK))
	assert.True(t, in.IsKeyPressed(glimpse.KeyK))
	assert.True(t, in.IsKeyDown(glimpse.KeyK))

	in.Commit()
	assert.Equal(t, Held, in.KeyState(glimpse.KeyK))
	assert.True(t, in.IsKeyHeld(glimpse.KeyK))
	assert.False(t, in.IsKeyPressed(glimpse.KeyK))

	in.Commit()
	assert.Equal(t, Held, in.KeyState(glimpse.KeyK))

	in.Process(release(glimpse.KeyK))
	assert.Equal(t, Held, in.KeyState(glimpse.KeyK))

	in.Commit()
	assert.Equal(t, Released, in.KeyState(glimpse.KeyK))
	assert.True(t, in.IsKeyReleased(glimpse.KeyK))
	assert.False(t, in.IsKeyDown(glimpse.KeyK))

	for range 3 {
		in.Commit()
		assert.Equal(t, Idle, in.KeyState(glimpse.KeyK))
	}
}

func TestInputTapWithinOneFrame(t *testing.T) {
	in := NewInputTracker()

	in.Process(press(glimpse.KeySpace))
	in.Process(release(glimpse.KeySpace))

	var states []InputState
	for range 3 {
		in.Commit()
		states = append(states, in.KeyState(glimpse.KeySpace))
	}

	assert.Equal(t, []InputState{Pressed, Released, Idle}, states)
}

func TestInputReleaseAndPressWhileHeld(t *testing.T) {
	in := NewInputTracker()

	in.Process(press(glimpse.KeyA))
	in.Commit()
	in.Commit()
	require.Equal(t, Held, in.KeyState(glimpse.KeyA))

	in.Process(release(glimpse.KeyA))
	in.Process(press(glimpse.KeyA))

	in.Commit()
	assert.Equal(t, Released, in.KeyState(glimpse.KeyA))

	in.Commit()
	assert.Equal(t, Pressed, in.KeyState(glimpse.KeyA))
}

func TestInputDuplicateEventsAreIgnored(t *testing.T) {
	in := NewInputTracker()

	// release of a key that was never pressed
	in.Process(release(glimpse.KeyB))
	in.Commit()
	assert.Equal(t, Idle, in.KeyState(glimpse.KeyB))

	// key repeat does not restart the cycle
	in.Process(press(glimpse.KeyB))
	in.Commit()
	in.Process(press(glimpse.KeyB))
	in.Commit()
	assert.Equal(t, Held, in.KeyState(glimpse.KeyB))

	// double release
	in.Process(release(glimpse.KeyB))
	in.Process(release(glimpse.KeyB))
	in.Commit()
	assert.Equal(t, Released, in.KeyState(glimpse.KeyB))

	in.Process(release(glimpse.KeyB))
	in.Commit()
	assert.Equal(t, Idle, in.KeyState(glimpse.KeyB))
}

func TestInputUnknownKeyIsIgnored(t *testing.T) {
	in := NewInputTracker()

	in.Process(press(glimpse.KeyUnknown))
	in.Commit()

	assert.Equal(t, Idle, in.KeyState(glimpse.KeyUnknown))
	assert.Empty(t, in.keys.raw)
}

func TestInputPrunesIdleKeys(t *testing.T) {
	in := NewInputTracker()

	for key := glimpse.KeyA; key <= glimpse.KeyZ; key++ {
		in.Process(press(key))
		in.Process(release(key))
	}

	in.Commit()
	in.Commit()
	in.Commit()

	assert.Empty(t, in.keys.raw)
	assert.Empty(t, in.keys.committed)
}

func TestInputMouseButtons(t *testing.T) {
	in := NewInputTracker()

	in.Process(glimpse.MouseButtonInput{Button: glimpse.MouseButtonLeft, Action: glimpse.Press})
	in.Commit()
	assert.True(t, in.IsMouseButtonPressed(glimpse.MouseButtonLeft))
	assert.False(t, in.IsMouseButtonDown(glimpse.MouseButtonRight))

	in.Commit()
	assert.True(t, in.IsMouseButtonHeld(glimpse.MouseButtonLeft))
	assert.True(t, in.IsMouseButtonDown(glimpse.MouseButtonLeft))

	in.Process(glimpse.MouseButtonInput{Button: glimpse.MouseButtonLeft, Action: glimpse.Release})
	in.Commit()
	assert.True(t, in.IsMouseButtonReleased(glimpse.MouseButtonLeft))
	assert.Equal(t, Released, in.MouseButtonState(glimpse.MouseButtonLeft))
}

func TestInputCursorAndDeltas(t *testing.T) {
	in := NewInputTracker()

	in.Process(glimpse.CursorMoved{X: 10, Y: 10})
	in.Process(glimpse.CursorMoved{X: 15, Y: 8})
	in.Process(glimpse.CursorMoved{X: 20, Y: 12})
	in.Process(glimpse.MouseWheel{DeltaY: 1})
	in.Process(glimpse.MouseWheel{DeltaY: 2, DeltaX: -1})

	// not visible before commit
	assert.Equal(t, glm.Vec2f{}, in.Cursor())
	assert.Equal(t, glm.Vec2f{}, in.ScrollDelta())

	in.Commit()
	assert.Equal(t, glm.Vec2f{20, 12}, in.Cursor())
	assert.Equal(t, glm.Vec2f{10, 2}, in.MotionDelta())
	assert.Equal(t, glm.Vec2f{-1, 3}, in.ScrollDelta())

	// deltas are per frame, position stays
	in.Commit()
	assert.Equal(t, glm.Vec2f{20, 12}, in.Cursor())
	assert.Equal(t, glm.Vec2f{}, in.MotionDelta())
	assert.Equal(t, glm.Vec2f{}, in.ScrollDelta())
}

func TestInputIgnoresOtherWindows(t *testing.T) {
	in := NewInputTracker()
	in.ForWindow(1)

	in.Process(glimpse.KeyInput{Window: 2, Key: glimpse.KeyA, Action: glimpse.Press})
	in.Process(glimpse.KeyInput{Window: 1, Key: glimpse.KeyB, Action: glimpse.Press})
	in.Process(glimpse.CursorMoved{Window: 2, X: 5, Y: 5})
	in.Commit()

	assert.Equal(t, Idle, in.KeyState(glimpse.KeyA))
	assert.Equal(t, Pressed, in.KeyState(glimpse.KeyB))
	assert.Equal(t, glm.Vec2f{}, in.Cursor())
}

func TestInputStateString(t *testing.T) {
	assert.Equal(t, "Pressed", Pressed.String())
	assert.Equal(t, "Released", Released.String())
	assert.Equal(t, "InputState(9)", InputState(9).String())
}
