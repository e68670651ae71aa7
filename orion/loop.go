package orion

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/pixloop/glimpse"
)

// Clock provides the current time to the Driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Phase is the position of the Driver within a frame.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseAccumulating
	PhaseTicking
	PhaseRendering
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAccumulating:
		return "Accumulating"
	case PhaseTicking:
		return "Ticking"
	case PhaseRendering:
		return "Rendering"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

type DriverOptions struct {
	Config Config

	// Clock to measure frame times, defaults to the system clock
	Clock Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Driver runs an App on a window: it routes platform events to the app and
// to the InputTracker, paces updates with a FramePacer and renders and
// presents one frame per redraw.
//
// A Driver is not safe for concurrent use. All events must be delivered on
// the goroutine that owns the window event pump.
type Driver struct {
	window glimpse.Window
	fb     Framebuffer
	app    App

	ctx    *Context
	pacer  FramePacer
	frames FrameTimes

	clock  Clock
	logger *slog.Logger

	phase Phase

	// time of the previous redraw
	lastRedraw time.Time

	// surface size requested by the last resize, applied before rendering
	pendingResize *[2]uint32

	err error
}

func NewDriver(window glimpse.Window, fb Framebuffer, app App, opts DriverOptions) *Driver {
	config := opts.Config.withDefaults()

	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	d := &Driver{
		window: window,
		fb:     fb,
		app:    app,
		clock:  opts.Clock,
		logger: opts.Logger,
		pacer:  FramePacer{MaxTicks: config.MaxTicksPerFrame},
	}

	d.ctx = newContext(window, config, &d.frames)
	d.lastRedraw = d.clock.Now()

	return d
}

func (d *Driver) Context() *Context {
	return d.ctx
}

func (d *Driver) Phase() Phase {
	return d.phase
}

// Run pumps the window events until the loop terminates. Returns the error
// that terminated the loop, or nil if it was closed or exited regularly.
func (d *Driver) Run() error {
	d.lastRedraw = d.clock.Now()
	d.window.RequestRedraw()

	if err := d.window.Run(d.HandleEvent); err != nil {
		if d.err == nil {
			d.err = WrapError(KindPlatform, "event loop", err)
			d.logger.Error("Event loop failed", slog.String("error", err.Error()))
		}
	}

	d.phase = PhaseTerminated

	return d.err
}

// HandleEvent processes a single platform event. Events received after
// the loop terminated are ignored.
func (d *Driver) HandleEvent(ev glimpse.Event) {
	if d.phase == PhaseTerminated {
		return
	}

	if err := d.app.Handle(ev); err != nil {
		d.fail(WrapError(KindApplication, "handle event", err))
		return
	}

	d.ctx.Input.Process(ev)

	switch ev := ev.(type) {
	case glimpse.CloseRequested:
		if ev.Window == d.window.ID() {
			d.logger.Info("Window close requested")
			d.terminate()
		}

	case glimpse.Resized:
		if ev.Window == d.window.ID() {
			d.pendingResize = &[2]uint32{ev.Width, ev.Height}
		}

	case glimpse.RedrawRequested:
		if ev.Window == d.window.ID() {
			d.redraw()
		}

	case glimpse.AboutToWait:
		d.window.RequestRedraw()
	}
}

func (d *Driver) redraw() {
	now := d.clock.Now()
	elapsed := now.Sub(d.lastRedraw)
	d.lastRedraw = now

	d.phase = PhaseAccumulating
	d.pacer.Begin(elapsed, d.ctx.maxFrameTime)

	d.phase = PhaseTicking
	for d.pacer.Next(d.ctx.targetFrameTime) {
		d.ctx.deltaTime = d.ctx.targetFrameTime
		d.ctx.tickIndex = d.pacer.Ticks() - 1

		if err := d.app.Update(d.ctx); err != nil {
			d.fail(WrapError(KindApplication, "update", err))
			return
		}

		if d.ctx.exit {
			d.logger.Info("Exit requested by application")
			d.terminate()
			return
		}
	}

	// once per real frame, independent of the number of ticks
	d.ctx.Input.Commit()

	d.phase = PhaseRendering

	if d.pendingResize != nil {
		width, height := d.pendingResize[0], d.pendingResize[1]
		d.pendingResize = nil

		d.logger.Debug("Resize surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		if err := d.fb.ResizeSurface(width, height); err != nil {
			d.fail(WrapError(KindFramebuffer, "resize surface", err))
			return
		}
	}

	blendingFactor := d.pacer.BlendingFactor(d.ctx.targetFrameTime)

	if err := d.app.Render(d.fb, blendingFactor); err != nil {
		d.fail(WrapError(KindApplication, "render", err))
		return
	}

	if err := d.fb.Render(); err != nil {
		d.fail(WrapError(KindFramebuffer, "present", err))
		return
	}

	if d.frames.Tick(now) {
		d.logger.Debug("Frame statistics",
			slog.Uint64("frames", d.frames.FrameCount),
			slog.Float64("fps", d.frames.FPS()),
			slog.Duration("max", d.frames.MaxDuration),
		)
	}

	d.phase = PhaseIdle
}

func (d *Driver) fail(err error) {
	d.logger.Error("Terminating loop", slog.String("error", err.Error()))

	d.err = err
	d.terminate()
}

func (d *Driver) terminate() {
	d.phase = PhaseTerminated
	d.window.Exit()
}
