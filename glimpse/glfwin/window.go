package glfwin

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

var nextWindowID atomic.Uint64

type Options struct {
	Width, Height int
	Title         string
	Resizable     bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}

	if o.Height <= 0 {
		o.Height = 600
	}

	if o.Title == "" {
		o.Title = "pixloop"
	}

	return o
}

// Window is a glimpse.Window backed by a glfw window without a client api.
// Use SurfaceDescriptor to create a webgpu surface for it.
type Window struct {
	id  glimpse.WindowID
	win *glfw.Window

	// events collected by the glfw callbacks during PollEvents
	queue []glimpse.Event

	redrawRequested bool
	exit            bool
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(opts Options) (*Window, error) {
	opts = opts.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{
		id:  glimpse.WindowID(nextWindowID.Add(1)),
		win: window,
	}

	w.configureCallbacks()

	width, height := w.Size()
	slog.Info("Window created",
		slog.String("title", opts.Title),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return w, nil
}

func (w *Window) ID() glimpse.WindowID {
	return w.id
}

func (w *Window) Size() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) RequestRedraw() {
	w.redrawRequested = true
}

func (w *Window) Exit() {
	w.exit = true
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}

// Run polls glfw for events until Exit is called. Every iteration delivers
// the queued input events, an AboutToWait and, if requested, a single
// RedrawRequested.
func (w *Window) Run(handler func(ev glimpse.Event)) error {
	for !w.exit {
		if w.redrawRequested {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}

		for idx := 0; idx < len(w.queue) && !w.exit; idx++ {
			handler(w.queue[idx])
		}

		clear(w.queue)
		w.queue = w.queue[:0]

		if w.exit {
			break
		}

		handler(glimpse.AboutToWait{})

		if w.redrawRequested && !w.exit {
			w.redrawRequested = false
			handler(glimpse.RedrawRequested{Window: w.id})
		}
	}

	return nil
}

func (w *Window) push(ev glimpse.Event) {
	w.queue = append(w.queue, ev)
}

func (w *Window) configureCallbacks() {
	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		w.push(glimpse.KeyInput{Window: w.id, Key: key, Action: actionOf(action)})
	})

	w.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, ok := mouseButtonOf(btn)
		if !ok {
			return
		}

		w.push(glimpse.MouseButtonInput{Window: w.id, Button: button, Action: actionOf(action)})
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		// glfw reports screen coordinates, we want physical pixels
		x, y := w.contentScale()
		w.push(glimpse.CursorMoved{Window: w.id, X: float32(xpos) * x, Y: float32(ypos) * y})
	})

	w.win.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		w.push(glimpse.MouseWheel{Window: w.id, DeltaX: float32(xoff), DeltaY: float32(yoff)})
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		w.push(glimpse.Resized{Window: w.id, Width: uint32(width), Height: uint32(height)})
	})

	w.win.SetCloseCallback(func(_win *glfw.Window) {
		// the driver decides when to close the window
		w.win.SetShouldClose(false)
		w.push(glimpse.CloseRequested{Window: w.id})
	})
}

func (w *Window) contentScale() (float32, float32) {
	fbWidth, fbHeight := w.win.GetFramebufferSize()
	width, height := w.win.GetSize()

	if width == 0 || height == 0 {
		return 1, 1
	}

	return float32(fbWidth) / float32(width), float32(fbHeight) / float32(height)
}

func actionOf(action glfw.Action) glimpse.Action {
	if action == glfw.Release {
		return glimpse.Release
	}

	return glimpse.Press
}

func mouseButtonOf(btn glfw.MouseButton) (glimpse.MouseButton, bool) {
	switch btn {
	case glfw.MouseButtonLeft:
		return glimpse.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return glimpse.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return glimpse.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// unknown keys seen so far, only accessed from the main thread
var reportedKeys = map[glfw.Key]bool{}

func keyOf(glfwKey glfw.Key) (key glimpse.Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok && reportUnknownKey(glfwKey) {
		slog.Warn(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}

// reportUnknownKey returns true the first time a key is seen. A held key
// repeats its events and would flood the log.
func reportUnknownKey(glfwKey glfw.Key) bool {
	if reportedKeys[glfwKey] {
		return false
	}

	reportedKeys[glfwKey] = true
	return true
}
