package pulse

import (
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View holds the configuration of the window surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(dev *Context, presentMode wgpu.PresentMode) *View {
	// Print the available render formats
	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	return &View{
		Context: dev,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      wgpu.TextureFormatBGRA8Unorm,
			PresentMode: presentMode,
			AlphaMode:   caps.AlphaModes[0],

			// try to reduce input latency
			DesiredMaximumFrameLatency: 1,
		},
	}
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Width() uint32 {
	return vs.surfaceConfig.Width
}

func (vs *View) Height() uint32 {
	return vs.surfaceConfig.Height
}

// Configure resizes the surface. A surface with a zero size, e.g. of a
// minimized window, is not configured.
func (vs *View) Configure(width, height uint32) bool {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height

	if width == 0 || height == 0 {
		return false
	}

	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	return true
}
