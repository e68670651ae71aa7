package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var wgpuLogLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

func init() {
	// webgpu calls must come from the main thread
	runtime.LockOSThread()

	if level, ok := parseLogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

func parseLogLevel(name string) (wgpu.LogLevel, bool) {
	level, ok := wgpuLogLevels[strings.ToUpper(strings.TrimSpace(name))]
	return level, ok
}

// Context holds the device that renders to a window surface.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type ContextOptions struct {
	// ForceFallbackAdapter selects a software adapter,
	// set with WGPU_FORCE_FALLBACK_ADAPTER=1
	ForceFallbackAdapter bool
}

// New creates a device for the given surface with options
// taken from the environment.
func New(sd *wgpu.SurfaceDescriptor) (*Context, error) {
	return NewWithOptions(sd, ContextOptions{
		ForceFallbackAdapter: os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
	})
}

func NewWithOptions(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (*Context, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx := &Context{Surface: instance.CreateSurface(sd)}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    ctx.Surface,
	})

	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Adapter = adapter

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Device = device
	ctx.Queue = device.GetQueue()

	slog.Info("WebGPU device ready", slog.Bool("fallbackAdapter", opts.ForceFallbackAdapter))

	return ctx, nil
}

// Release frees everything in reverse order of creation. Releasing
// twice is a no-op.
func (ctx *Context) Release() {
	if ctx.Queue != nil {
		ctx.Queue.Release()
		ctx.Queue = nil
	}

	if ctx.Device != nil {
		ctx.Device.Release()
		ctx.Device = nil
	}

	if ctx.Adapter != nil {
		ctx.Adapter.Release()
		ctx.Adapter = nil
	}

	if ctx.Surface != nil {
		ctx.Surface.Release()
		ctx.Surface = nil
	}
}
