package orion

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("device lost")
	err := WrapError(KindFramebuffer, "present", cause)

	assert.EqualError(t, err, "present: device lost")
	assert.ErrorIs(t, err, ErrFramebuffer)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPlatform)
	assert.NotErrorIs(t, err, ErrApplication)

	var loopErr *Error
	if assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &loopErr) {
		assert.Equal(t, KindFramebuffer, loopErr.Kind)
		assert.Equal(t, "present", loopErr.Op)
	}
}

func TestWrapNilError(t *testing.T) {
	assert.NoError(t, WrapError(KindApplication, "update", nil))
}

func TestNewError(t *testing.T) {
	err := NewError("level not found")

	assert.EqualError(t, err, "level not found")
	assert.ErrorIs(t, err, ErrOther)

	// wrapped by the loop, both kinds still match
	wrapped := WrapError(KindApplication, "update", err)
	assert.ErrorIs(t, wrapped, ErrApplication)
	assert.ErrorIs(t, wrapped, ErrOther)
	assert.EqualError(t, wrapped, "update: level not found")
}

func TestKindMessages(t *testing.T) {
	assert.EqualError(t, ErrPlatform, "platform error")
	assert.EqualError(t, ErrFramebuffer, "framebuffer error")
	assert.EqualError(t, ErrApplication, "application error")
	assert.EqualError(t, ErrOther, "error")
}
