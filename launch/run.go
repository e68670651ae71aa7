// Package launch wires a windowing and a framebuffer provider to the loop.
package launch

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/oliverbestmann/pixloop/glimpse/glfwin"
	"github.com/oliverbestmann/pixloop/glimpse/termwin"
	"github.com/oliverbestmann/pixloop/orion"
	"github.com/oliverbestmann/pixloop/pulse"
	"github.com/pkg/profile"
)

// Run opens the configured backend and runs app until the loop terminates.
func Run(app orion.App, opts Options) error {
	if app == nil {
		return orion.NewError("app must not be nil")
	}

	opts = opts.withDefaults()

	switch opts.Backend {
	case BackendDesktop:
		return Desktop(app, opts)

	case BackendTerminal:
		return Terminal(app, opts)

	default:
		return fmt.Errorf("unknown backend %q", opts.Backend)
	}
}

// Desktop runs app in a glfw window.
func Desktop(app orion.App, opts Options) error {
	opts = opts.withDefaults()

	if opts.Profile {
		defer profile.Start(profileOptions(opts)...).Stop()
	}

	win, err := glfwin.NewWindow(glfwin.Options{
		Width:     opts.Window.Width,
		Height:    opts.Window.Height,
		Title:     opts.Window.Title,
		Resizable: opts.Window.Resizable,
	})
	if err != nil {
		return orion.WrapError(orion.KindPlatform, "create window", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return orion.WrapError(orion.KindFramebuffer, "initialize webgpu", err)
	}

	defer ctx.Release()

	surfaceWidth, surfaceHeight := win.Size()

	pixels, err := pulse.NewPixels(ctx, pulse.PixelsOptions{
		Width:         opts.Buffer.Width,
		Height:        opts.Buffer.Height,
		SurfaceWidth:  surfaceWidth,
		SurfaceHeight: surfaceHeight,
	})
	if err != nil {
		return orion.WrapError(orion.KindFramebuffer, "create pixels", err)
	}

	defer pixels.Release()

	return drive(win, pixels, app, opts)
}

// Terminal runs app in the current terminal.
func Terminal(app orion.App, opts Options) error {
	opts = opts.withDefaults()

	if opts.Profile {
		defer profile.Start(profileOptions(opts)...).Stop()
	}

	win, err := termwin.NewWindow(termwin.Options{
		FrameInterval: opts.Loop.TargetFrameTime,
	})
	if err != nil {
		return orion.WrapError(orion.KindPlatform, "create terminal window", err)
	}

	defer win.Terminate()

	width, height := opts.Buffer.Width, opts.Buffer.Height
	if width == 0 || height == 0 {
		width, height = win.Size()
	}

	fb, err := termwin.NewFramebuffer(win, width, height)
	if err != nil {
		return orion.WrapError(orion.KindFramebuffer, "create framebuffer", err)
	}

	return drive(win, fb, app, opts)
}

// profileOptions keeps pkg/profile quiet on the terminal, its messages
// would end up on the tcell screen.
func profileOptions(opts Options) []func(*profile.Profile) {
	options := []func(*profile.Profile){profile.CPUProfile}

	if opts.Backend == BackendTerminal {
		options = append(options, profile.Quiet)
	}

	return options
}

func drive(win glimpse.Window, fb orion.Framebuffer, app orion.App, opts Options) error {
	slog.Info("Starting loop",
		slog.String("backend", string(opts.Backend)),
		slog.Int("bufferWidth", int(fb.Width())),
		slog.Int("bufferHeight", int(fb.Height())),
	)

	driver := orion.NewDriver(win, fb, app, orion.DriverOptions{
		Config: opts.Loop,
		Logger: slog.Default(),
	})

	return driver.Run()
}
