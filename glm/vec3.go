package glm

type Vec3[T numeric] [3]T

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	return lhs[0], lhs[1], lhs[2]
}
