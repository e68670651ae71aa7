package pulse

import (
	"fmt"

	"github.com/oliverbestmann/pixloop/glm"
	"golang.org/x/exp/constraints"
)

type numeric interface {
	constraints.Integer | constraints.Float
}

type Rectangle2f = Rectangle2[float32]
type Rectangle2u = Rectangle2[uint32]

type Rectangle2[T numeric] struct {
	Min glm.Vec2[T]
	Max glm.Vec2[T]
}

func RectangleFromSize[T numeric](pos glm.Vec2[T], size glm.Vec2[T]) Rectangle2[T] {
	return RectangleFromPoints[T](pos, pos.Add(size))
}

func RectangleFromPoints[T numeric](a, b glm.Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{
		Min: glm.Vec2[T]{
			min(a[0], b[0]),
			min(a[1], b[1]),
		},
		Max: glm.Vec2[T]{
			max(a[0], b[0]),
			max(a[1], b[1]),
		},
	}
}

// Contains returns true if other lies completely within r.
func (r Rectangle2[T]) Contains(other Rectangle2[T]) bool {
	return other.Min[0] >= r.Min[0] && other.Min[1] >= r.Min[1] &&
		other.Max[0] <= r.Max[0] && other.Max[1] <= r.Max[1]
}

func (r Rectangle2[T]) Size() glm.Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rectangle2[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rectangle2[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rectangle2[T]) XYWH() (T, T, T, T) {
	x, y := r.Min.XY()
	w, h := r.Size().XY()
	return x, y, w, h
}

func (r Rectangle2[T]) String() string {
	x, y, w, h := r.XYWH()
	return fmt.Sprintf("Rect(x=%v, y=%v, w=%v, h=%v)", x, y, w, h)
}
