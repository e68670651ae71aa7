package pulse

import (
	"fmt"

	"github.com/oliverbestmann/pixloop/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	region Rectangle2u
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})

	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create texture view: %w", err)
	}

	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      opts.Format,
		region:      RectangleFromSize(glm.Vec2u{}, glm.Vec2u{opts.Width, opts.Height}),
	}, nil
}

func (t *Texture) Width() uint32 {
	return t.region.Width()
}

func (t *Texture) Height() uint32 {
	return t.region.Height()
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Release releases the texture and its view. You must be sure to not use
// the texture after calling release.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}

func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: t.region,
	})
}

type WritePixelsOptions struct {
	Pixels []byte
	Region Rectangle2u
	Stride uint32
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	// fail if not in rect
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.region)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	if need := int(opts.Stride * opts.Region.Height()); len(opts.Pixels) < need {
		return fmt.Errorf("expected %d bytes of pixel data, got %d", need, len(opts.Pixels))
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	// send data to the gpu
	if err := ctx.WriteTexture(dest, opts.Pixels, layout, size); err != nil {
		return fmt.Errorf("copy pixels to texture: %w", err)
	}

	return nil
}
