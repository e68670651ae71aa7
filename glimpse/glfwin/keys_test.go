package glfwin

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/stretchr/testify/assert"
)

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, glimpse.KeyW, glfwToKey[glfw.KeyW])
	assert.Equal(t, glimpse.Key7, glfwToKey[glfw.Key7])
	assert.Equal(t, glimpse.KeyEnter, glfwToKey[glfw.KeyKPEnter])
	assert.Equal(t, glimpse.KeyF12, glfwToKey[glfw.KeyF12])

	for glfwKey, key := range glfwToKey {
		assert.NotEqual(t, glimpse.KeyUnknown, key, "glfw key %d", glfwKey)
	}
}

func TestActionAndButtons(t *testing.T) {
	assert.Equal(t, glimpse.Press, actionOf(glfw.Press))
	assert.Equal(t, glimpse.Release, actionOf(glfw.Release))

	button, ok := mouseButtonOf(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, glimpse.MouseButtonRight, button)

	_, ok = mouseButtonOf(glfw.MouseButton5)
	assert.False(t, ok)
}

func TestUnknownKeysAreReportedOnce(t *testing.T) {
	t.Cleanup(func() { delete(reportedKeys, glfw.KeyWorld1) })

	assert.True(t, reportUnknownKey(glfw.KeyWorld1))
	assert.False(t, reportUnknownKey(glfw.KeyWorld1))
	assert.False(t, reportUnknownKey(glfw.KeyWorld1))
}
