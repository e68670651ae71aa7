package orion

import "github.com/oliverbestmann/pixloop/glimpse"

// App is implemented by the application driven by the loop.
type App interface {
	// Update advances the simulation by ctx.FrameTime(). It is called
	// zero or more times per frame at the rate of the target frame time.
	Update(ctx *Context) error

	// Render draws the current frame into the framebuffer. It is called once
	// per frame. The blending factor in [0, 1) describes how far the real time
	// has progressed into the next update and can be used to interpolate
	// between the previous and the current simulation state.
	Render(fb Framebuffer, blendingFactor float64) error

	// Handle is called for every platform event before the loop processes it.
	Handle(ev glimpse.Event) error
}

// DefaultApp can be embedded into an App to get a default implementation
// of Handle.
type DefaultApp struct{}

func (DefaultApp) Handle(ev glimpse.Event) error {
	return nil
}

// Framebuffer is a pixel buffer that can be presented to a window. The size
// of the buffer is independent of the size of the window surface.
type Framebuffer interface {
	Width() uint32
	Height() uint32

	// Frame returns the pixel buffer in RGBA8 format, row by row.
	Frame() []byte

	// Resize changes the size of the pixel buffer.
	Resize(width, height uint32) error

	// ResizeSurface must be called after the window surface changed its size.
	ResizeSurface(width, height uint32) error

	// Render presents the current content of the pixel buffer.
	Render() error
}
