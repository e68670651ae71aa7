package orion

import (
	"github.com/oliverbestmann/pixloop/glm"
)

// ScreenTransform maps buffer pixels onto the surface. The buffer is scaled
// uniformly to fit the surface and centered on the axis with spare room.
func ScreenTransform(surfaceSize, bufferSize glm.Vec2f) glm.Mat3f {
	scale, xOffset, yOffset := fit(surfaceSize, bufferSize)
	return glm.TranslationMat3(xOffset, yOffset).Scale(scale, scale)
}

// ScreenTransformInv is the inverse of ScreenTransform and maps
// surface pixels to buffer pixels.
func ScreenTransformInv(surfaceSize, bufferSize glm.Vec2f) glm.Mat3f {
	scale, xOffset, yOffset := fit(surfaceSize, bufferSize)

	sm := glm.ScaleMat3(1.0/scale, 1.0/scale)
	return sm.Mul(glm.TranslationMat3(-xOffset, -yOffset))
}

func fit(surfaceSize, bufferSize glm.Vec2f) (scale, xOffset, yOffset float32) {
	bw, bh := bufferSize.XY()
	sw, sh := surfaceSize.XY()

	if bw <= 0 || bh <= 0 || sw <= 0 || sh <= 0 {
		return 1, 0, 0
	}

	bufferAspect := bw / bh
	surfaceAspect := sw / sh

	if bufferAspect >= surfaceAspect {
		scale = sw / bw
		yOffset = (sh - bh*scale) / 2
	} else {
		scale = sh / bh
		xOffset = (sw - bw*scale) / 2
	}

	return scale, xOffset, yOffset
}

// WindowToPixel maps a position on the surface, e.g. the cursor, to a pixel
// in the buffer. The second return value is false if the position is
// outside the buffer, the pixel is then clamped to the buffer.
func WindowToPixel(surfaceSize, bufferSize glm.Vec2f, pos glm.Vec2f) (glm.Vec2i, bool) {
	local := ScreenTransformInv(surfaceSize, bufferSize).Transform2(pos)

	bw, bh := bufferSize.XY()
	x, y := local.XY()

	inside := x >= 0 && y >= 0 && x < bw && y < bh

	px := clamp(int(x), 0, int(bw)-1)
	py := clamp(int(y), 0, int(bh)-1)

	return glm.Vec2i{px, py}, inside
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
