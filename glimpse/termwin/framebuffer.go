package termwin

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/pixloop/glm"
	"github.com/oliverbestmann/pixloop/orion"
)

const halfBlock = '▀'

// Framebuffer presents an RGBA pixel buffer on a terminal. The buffer is
// scaled to fit the terminal and sampled with nearest neighbour filtering.
type Framebuffer struct {
	screen tcell.Screen

	width, height uint32
	pixels        []byte

	surfaceWidth, surfaceHeight uint32
}

var _ orion.Framebuffer = (*Framebuffer)(nil)

func NewFramebuffer(window *Window, width, height uint32) (*Framebuffer, error) {
	fb := &Framebuffer{screen: window.Screen()}

	if err := fb.Resize(width, height); err != nil {
		return nil, err
	}

	surfaceWidth, surfaceHeight := window.Size()
	if err := fb.ResizeSurface(surfaceWidth, surfaceHeight); err != nil {
		return nil, err
	}

	return fb, nil
}

func (fb *Framebuffer) Width() uint32 {
	return fb.width
}

func (fb *Framebuffer) Height() uint32 {
	return fb.height
}

func (fb *Framebuffer) Frame() []byte {
	return fb.pixels
}

func (fb *Framebuffer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid buffer size %dx%d", width, height)
	}

	slog.Info("Allocate pixel buffer",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	fb.width, fb.height = width, height
	fb.pixels = make([]byte, width*height*4)

	return nil
}

func (fb *Framebuffer) ResizeSurface(width, height uint32) error {
	fb.surfaceWidth, fb.surfaceHeight = width, height
	return nil
}

// WindowPosToPixel maps a cursor position to a pixel in the buffer.
func (fb *Framebuffer) WindowPosToPixel(pos glm.Vec2f) (glm.Vec2i, bool) {
	return orion.WindowToPixel(fb.surfaceSize(), fb.bufferSize(), pos)
}

func (fb *Framebuffer) Render() error {
	inv := orion.ScreenTransformInv(fb.surfaceSize(), fb.bufferSize())

	cols := int(fb.surfaceWidth)
	rows := int(fb.surfaceHeight / 2)

	for row := range rows {
		for col := range cols {
			x := float32(col) + 0.5
			y := float32(row*2) + 0.5

			top := fb.sample(inv.Transform2(glm.Vec2f{x, y}))
			bottom := fb.sample(inv.Transform2(glm.Vec2f{x, y + 1}))

			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			fb.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	fb.screen.Show()

	return nil
}

func (fb *Framebuffer) sample(pos glm.Vec2f) tcell.Color {
	x, y := pos.XY()
	if x < 0 || y < 0 || x >= float32(fb.width) || y >= float32(fb.height) {
		return tcell.ColorBlack
	}

	offset := (int(y)*int(fb.width) + int(x)) * 4
	px := fb.pixels[offset : offset+3]

	return tcell.NewRGBColor(int32(px[0]), int32(px[1]), int32(px[2]))
}

func (fb *Framebuffer) surfaceSize() glm.Vec2f {
	return glm.Vec2u{fb.surfaceWidth, fb.surfaceHeight}.ToVec2f()
}

func (fb *Framebuffer) bufferSize() glm.Vec2f {
	return glm.Vec2u{fb.width, fb.height}.ToVec2f()
}
