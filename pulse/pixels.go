package pulse

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/pixloop/glm"
	"github.com/oliverbestmann/pixloop/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed pixels.wgsl
var pixelsShaderCode string

type PixelsOptions struct {
	// size of the pixel buffer
	Width, Height uint32

	// initial size of the window surface
	SurfaceWidth, SurfaceHeight uint32

	// ClearColor fills the surface around the pixel buffer,
	// defaults to black
	ClearColor *Color
}

// Pixels is an orion.Framebuffer rendered with webgpu. The pixel buffer is
// uploaded to a texture on every frame and drawn onto the window surface,
// scaled to fit while keeping its aspect ratio.
type Pixels struct {
	ctx  *Context
	view *View

	pipelines *PipelineCache[pixelsPipelineConfig]

	texture   *Texture
	frame     []byte
	bindGroup *wgpu.BindGroup

	bufUniforms *wgpu.Buffer

	clearColor Color
}

var _ orion.Framebuffer = (*Pixels)(nil)

type pixelsUniforms struct {
	Offset glm.Vec2f
	Scale  glm.Vec2f
}

// bytes views the uniforms in the memory layout of the shader
func (u *pixelsUniforms) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), unsafe.Sizeof(*u))
}

func NewPixels(ctx *Context, opts PixelsOptions) (*Pixels, error) {
	clearColor := ColorBlack
	if opts.ClearColor != nil {
		clearColor = *opts.ClearColor
	}

	bufUniforms, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Pixels.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(pixelsUniforms{})),
	})

	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	p := &Pixels{
		ctx:         ctx,
		view:        NewView(ctx, wgpu.PresentModeFifo),
		pipelines:   NewPipelineCache[pixelsPipelineConfig](ctx),
		bufUniforms: bufUniforms,
		clearColor:  clearColor,
	}

	if err := p.ResizeSurface(opts.SurfaceWidth, opts.SurfaceHeight); err != nil {
		p.Release()
		return nil, err
	}

	if err := p.Resize(opts.Width, opts.Height); err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

func (p *Pixels) Width() uint32 {
	return p.texture.Width()
}

func (p *Pixels) Height() uint32 {
	return p.texture.Height()
}

func (p *Pixels) Frame() []byte {
	return p.frame
}

func (p *Pixels) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid buffer size %dx%d", width, height)
	}

	slog.Info("Allocate pixel buffer",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	texture, err := NewTexture(p.ctx, NewTextureOptions{
		Label:  "Pixels",
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  width,
		Height: height,
	})

	if err != nil {
		return fmt.Errorf("allocate pixel buffer: %w", err)
	}

	sampler, err := CachedSampler(p.ctx.Device, wgpu.SamplerDescriptor{
		Label:         "Pixels.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})

	if err != nil {
		texture.Release()
		return err
	}

	pc, err := p.pipelines.Get(pixelsPipelineConfig{TargetFormat: p.view.Format()})
	if err != nil {
		texture.Release()
		return err
	}

	bindGroup, err := p.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Pixels.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: texture.View(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
			{
				Binding: 2,
				Buffer:  p.bufUniforms,
				Size:    wgpu.WholeSize,
			},
		},
	})

	if err != nil {
		texture.Release()
		return fmt.Errorf("create bind group: %w", err)
	}

	// the previous buffer stays valid until the new one is complete
	p.releaseTexture()

	p.texture = texture
	p.bindGroup = bindGroup
	p.frame = make([]byte, width*height*4)

	return nil
}

// ResizeSurface reconfigures the window surface and makes sure a pipeline
// for the surface format is available.
func (p *Pixels) ResizeSurface(width, height uint32) error {
	if !p.view.Configure(width, height) {
		slog.Debug("Surface has zero size, skipping configuration")
		return nil
	}

	if _, err := p.pipelines.Get(pixelsPipelineConfig{TargetFormat: p.view.Format()}); err != nil {
		return fmt.Errorf("prepare surface %dx%d: %w", width, height, err)
	}

	return nil
}

// WindowPosToPixel maps a cursor position to a pixel in the buffer.
func (p *Pixels) WindowPosToPixel(pos glm.Vec2f) (glm.Vec2i, bool) {
	return orion.WindowToPixel(p.surfaceSize(), p.bufferSize(), pos)
}

func (p *Pixels) Render() error {
	if p.view.Width() == 0 || p.view.Height() == 0 {
		// nothing to present on a minimized window
		return nil
	}

	if err := p.texture.WritePixels(p.ctx, p.frame); err != nil {
		return fmt.Errorf("upload pixels: %w", err)
	}

	uniforms := pixelsUniformsOf(p.surfaceSize(), p.bufferSize())
	if err := p.ctx.WriteBuffer(p.bufUniforms, 0, uniforms.bytes()); err != nil {
		return fmt.Errorf("upload uniforms: %w", err)
	}

	pc, err := p.pipelines.Get(pixelsPipelineConfig{TargetFormat: p.view.Format()})
	if err != nil {
		return err
	}

	// get the surface texture (the actual screen)
	surface, err := p.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if surface != nil {
			surface.Release()
		}
	}()

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer surfaceView.Release()

	encoder, err := p.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Pixels"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassPixels",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       surfaceView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: p.clearColor.toWGPU(),
			},
		},
	})

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.Draw(6, 1, 0, 0)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command buffer: %w", err)
	}

	defer cmdBuffer.Release()

	p.ctx.Submit(cmdBuffer)

	// present the rendered image
	p.ctx.Surface.Present()

	// we do not need to release the screen if present was successful
	surface = nil

	return nil
}

func (p *Pixels) Release() {
	p.releaseTexture()
	p.pipelines.Purge()

	if p.bufUniforms != nil {
		p.bufUniforms.Release()
		p.bufUniforms = nil
	}
}

func (p *Pixels) releaseTexture() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}

	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}
}

func (p *Pixels) surfaceSize() glm.Vec2f {
	return glm.Vec2u{p.view.Width(), p.view.Height()}.ToVec2f()
}

func (p *Pixels) bufferSize() glm.Vec2f {
	return glm.Vec2u{p.texture.Width(), p.texture.Height()}.ToVec2f()
}

// pixelsUniformsOf places the buffer on the surface in normalized
// device coordinates.
func pixelsUniformsOf(surfaceSize, bufferSize glm.Vec2f) pixelsUniforms {
	sw, sh := surfaceSize.XY()
	if sw <= 0 || sh <= 0 {
		return pixelsUniforms{Offset: glm.Vec2f{-1, 1}, Scale: glm.Vec2f{2, -2}}
	}

	tr := orion.ScreenTransform(surfaceSize, bufferSize)
	topLeft := tr.Transform2(glm.Vec2f{0, 0})
	size := tr.Transform2(bufferSize).Sub(topLeft)

	return pixelsUniforms{
		Offset: glm.Vec2f{topLeft[0]/sw*2 - 1, 1 - topLeft[1]/sh*2},
		Scale:  glm.Vec2f{size[0] / sw * 2, -size[1] / sh * 2},
	}
}

type pixelsPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf pixelsPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for pixels",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Pixels.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: pixelsShaderCode},
	})

	if err != nil {
		return nil, fmt.Errorf("compile pixels shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Pixels.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("create pixels pipeline for %s: %w", conf.TargetFormat, err)
	}

	return pipeline, nil
}
