// Package vec provides small generic integer vectors for grid and lattice
// coordinate math.
//
// Vectors are plain comparable values, so they can be used directly as map
// keys or as search states:
//
//	start := vec.Vec2[int]{X: 0, Y: 0}
//	next := start.Add(vec.Right)
//	d := start.Manhattan(vec.Vec2[int]{X: 3, Y: 4}) // 7
//
// The Y axis grows downward, matching row-major text grids: Up is {0,-1}.
package vec

import "golang.org/x/exp/constraints"

// Vec2 is a two-dimensional integer vector.
type Vec2[T constraints.Signed] struct {
	X, Y T
}

// Vec3 is a three-dimensional integer vector.
type Vec3[T constraints.Signed] struct {
	X, Y, Z T
}

// Unit directions on a row-major grid.
var (
	Up    = Vec2[int]{X: 0, Y: -1}
	Right = Vec2[int]{X: 1, Y: 0}
	Down  = Vec2[int]{X: 0, Y: 1}
	Left  = Vec2[int]{X: -1, Y: 0}
)

// Dirs4 lists the orthogonal directions clockwise starting at Up.
var Dirs4 = [4]Vec2[int]{Up, Right, Down, Left}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Add returns a+b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }

// Scale returns a*k.
func (a Vec2[T]) Scale(k T) Vec2[T] { return Vec2[T]{a.X * k, a.Y * k} }

// Neg returns -a.
func (a Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-a.X, -a.Y} }

// Manhattan returns the L1 distance between a and b.
func (a Vec2[T]) Manhattan(b Vec2[T]) T {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Chebyshev returns the L∞ distance between a and b.
func (a Vec2[T]) Chebyshev(b Vec2[T]) T {
	dx, dy := Abs(a.X-b.X), Abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// RotateCW rotates a by 90° clockwise on a Y-down grid (Up → Right).
func (a Vec2[T]) RotateCW() Vec2[T] { return Vec2[T]{-a.Y, a.X} }

// RotateCCW rotates a by 90° counter-clockwise on a Y-down grid (Up → Left).
func (a Vec2[T]) RotateCCW() Vec2[T] { return Vec2[T]{a.Y, -a.X} }

// Neighbors4 returns the four orthogonal neighbours of a, clockwise from Up.
func (a Vec2[T]) Neighbors4() [4]Vec2[T] {
	return [4]Vec2[T]{
		{a.X, a.Y - 1},
		{a.X + 1, a.Y},
		{a.X, a.Y + 1},
		{a.X - 1, a.Y},
	}
}

// Neighbors8 returns the eight surrounding cells of a, clockwise from Up.
func (a Vec2[T]) Neighbors8() [8]Vec2[T] {
	return [8]Vec2[T]{
		{a.X, a.Y - 1},
		{a.X + 1, a.Y - 1},
		{a.X + 1, a.Y},
		{a.X + 1, a.Y + 1},
		{a.X, a.Y + 1},
		{a.X - 1, a.Y + 1},
		{a.X - 1, a.Y},
		{a.X - 1, a.Y - 1},
	}
}

// Add returns a+b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a*k.
func (a Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{a.X * k, a.Y * k, a.Z * k} }

// Manhattan returns the L1 distance between a and b.
func (a Vec3[T]) Manhattan(b Vec3[T]) T {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

// Neighbors6 returns the six face-adjacent cells of a.
func (a Vec3[T]) Neighbors6() [6]Vec3[T] {
	return [6]Vec3[T]{
		{a.X + 1, a.Y, a.Z},
		{a.X - 1, a.Y, a.Z},
		{a.X, a.Y + 1, a.Z},
		{a.X, a.Y - 1, a.Z},
		{a.X, a.Y, a.Z + 1},
		{a.X, a.Y, a.Z - 1},
	}
}
