package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joellidin/aoc/vec"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := vec.Vec2[int]{X: 2, Y: -3}
	b := vec.Vec2[int]{X: -1, Y: 5}

	assert.Equal(t, vec.Vec2[int]{X: 1, Y: 2}, a.Add(b))
	assert.Equal(t, vec.Vec2[int]{X: 3, Y: -8}, a.Sub(b))
	assert.Equal(t, vec.Vec2[int]{X: 6, Y: -9}, a.Scale(3))
	assert.Equal(t, vec.Vec2[int]{X: -2, Y: 3}, a.Neg())
	assert.Equal(t, 11, a.Manhattan(b))
	assert.Equal(t, 8, a.Chebyshev(b))
}

func TestVec2_Rotation(t *testing.T) {
	assert.Equal(t, vec.Right, vec.Up.RotateCW())
	assert.Equal(t, vec.Down, vec.Right.RotateCW())
	assert.Equal(t, vec.Left, vec.Up.RotateCCW())

	// Four quarter turns are the identity.
	d := vec.Vec2[int]{X: 3, Y: 1}
	assert.Equal(t, d, d.RotateCW().RotateCW().RotateCW().RotateCW())
	assert.Equal(t, d, d.RotateCW().RotateCCW())
}

func TestVec2_NeighborsMatchDirs(t *testing.T) {
	p := vec.Vec2[int]{X: 4, Y: 4}
	n := p.Neighbors4()
	for i, d := range vec.Dirs4 {
		assert.Equal(t, p.Add(d), n[i])
	}
	for _, q := range p.Neighbors8() {
		assert.Equal(t, 1, p.Chebyshev(q))
	}
}

func TestVec3_Manhattan(t *testing.T) {
	a := vec.Vec3[int64]{X: 1, Y: 2, Z: 3}
	b := vec.Vec3[int64]{X: -1, Y: 0, Z: 7}
	assert.Equal(t, int64(8), a.Manhattan(b))
	assert.Equal(t, vec.Vec3[int64]{X: 0, Y: 2, Z: 10}, a.Add(b))
	for _, q := range a.Neighbors6() {
		assert.Equal(t, int64(1), a.Manhattan(q))
	}
}
