package orion

import (
	"time"

	"github.com/oliverbestmann/pixloop/glimpse"
)

// Context is passed to every App.Update call.
type Context struct {
	targetFrameTime time.Duration
	maxFrameTime    time.Duration
	deltaTime       time.Duration
	exit            bool

	// index of the current tick within the frame
	tickIndex int

	window glimpse.Window
	frames *FrameTimes

	// Input holds the input state as of the end of the previous frame.
	Input *InputTracker
}

func newContext(window glimpse.Window, config Config, frames *FrameTimes) *Context {
	input := NewInputTracker()
	input.ForWindow(window.ID())

	return &Context{
		targetFrameTime: config.TargetFrameTime,
		maxFrameTime:    config.MaxFrameTime,
		window:          window,
		frames:          frames,
		Input:           input,
	}
}

func (c *Context) Window() glimpse.Window {
	return c.window
}

// FrameTime returns the simulated time between the previous and the
// current update. This is always equal to the target frame time.
func (c *Context) FrameTime() time.Duration {
	return c.deltaTime
}

// TickIndex returns the number of updates already performed in the current
// frame. Input is committed once per frame, so edge triggered input like
// IsKeyPressed is visible to every tick of a frame. Check for a TickIndex
// of zero to handle such input only once.
func (c *Context) TickIndex() int {
	return c.tickIndex
}

func (c *Context) TargetFrameTime() time.Duration {
	return c.targetFrameTime
}

// SetTargetFrameTime sets the duration of one update tick. The new value
// applies to the next tick, already accumulated time is not rescaled.
func (c *Context) SetTargetFrameTime(target time.Duration) {
	c.targetFrameTime = target
}

func (c *Context) MaxFrameTime() time.Duration {
	return c.maxFrameTime
}

// SetMaxFrameTime sets the maximum real frame duration. Real frames can take
// longer, but the simulation will only advance by this value per frame.
func (c *Context) SetMaxFrameTime(maxFrameTime time.Duration) {
	c.maxFrameTime = maxFrameTime
}

// Frames returns statistics about the presented frames.
func (c *Context) Frames() FrameTimes {
	return *c.frames
}

// Exit stops the loop after the current update returns. No further updates
// and no render will be performed.
func (c *Context) Exit() {
	c.exit = true
}

func (c *Context) ExitRequested() bool {
	return c.exit
}
