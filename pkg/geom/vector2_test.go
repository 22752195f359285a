package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two decimal places, the way the vectors were originally checked.
const closeDelta = 0.005

func assertClose2(t *testing.T, expected, actual Vector2) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), closeDelta, "x of %s", actual)
	assert.InDelta(t, expected.Y(), actual.Y(), closeDelta, "y of %s", actual)
}

var samples2 = []Vector2{
	Zero2(),
	One2(),
	NewVector2(1, -1),
	NewVector2(10, -45),
	NewVector2(-1.45, 25.6),
	NewVector2(-23.56, 72.81),
}

func TestVector2Init(t *testing.T) {
	vec := NewVector2(-23.56, 72.81)
	assert.Equal(t, -23.56, vec.X())
	assert.Equal(t, 72.81, vec.Y())
}

func TestVector2Sub(t *testing.T) {
	assert.True(t, NewVector2(1, -1).Sub(NewVector2(0, 0)).Equals(NewVector2(1, -1)))
	assertClose2(t, One2(), One2().Sub(Zero2()))
	assertClose2(t, NewVector2(11, -33), NewVector2(10, -45).Sub(NewVector2(-1, -12)))
	assertClose2(t, NewVector2(-2.1, -9.6), NewVector2(-1, -12).Sub(NewVector2(1.1, -2.4)))
}

func TestVector2Add(t *testing.T) {
	a := NewVector2(1, 1)
	assertClose2(t, NewVector2(1, 1), Zero2().Add(a))
	assertClose2(t, NewVector2(11, -44), a.Add(NewVector2(10, -45)))
	assertClose2(t, NewVector2(-0.45, 26.6), a.Add(NewVector2(-1.45, 25.6)))

	for _, u := range samples2 {
		for _, v := range samples2 {
			assert.True(t, u.Add(v).Equals(v.Add(u)), "%s + %s", u, v)
		}
	}
}

func TestVector2Identities(t *testing.T) {
	for _, v := range samples2 {
		assert.True(t, v.Sub(Zero2()).Equals(v), "%s - 0", v)
		assert.True(t, v.Add(Zero2()).Equals(v), "%s + 0", v)
		assert.True(t, v.Scale(1).Equals(v), "%s * 1", v)
		assert.True(t, v.Scale(0).Equals(Zero2()), "%s * 0", v)
	}
}

func TestVector2Dot(t *testing.T) {
	assert.Equal(t, -6.0, NewVector2(1, 2).Dot(NewVector2(4, -5)))
	assert.Equal(t, 6.0, NewVector2(6, -1).Dot(NewVector2(4, 18)))
	assert.Equal(t, 9.0, NewVector2(0, 3).Dot(NewVector2(2, 3)))
	assert.Equal(t, 0.0, Up2().Dot(Right2()))
	assert.Equal(t, 0.0, NewVector2(-1, 1).Dot(One2()))
}

func TestVector2Scale(t *testing.T) {
	assertClose2(t, NewVector2(5, 5), One2().Scale(5))
	assertClose2(t, NewVector2(-9.2, -9.2), One2().Scale(-9.2))
	assertClose2(t, Zero2(), Zero2().Scale(88))
	assertClose2(t, NewVector2(12, 10), NewVector2(3, 2.5).Scale(4))
}

func TestVector2OrthogonalTo(t *testing.T) {
	assert.True(t, Up2().OrthogonalTo(Right2()))
	assert.True(t, Left2().OrthogonalTo(Up2()))
	assert.False(t, Left2().OrthogonalTo(Right2()))
	assert.True(t, Down2().OrthogonalTo(Right2()))
	assert.False(t, Down2().OrthogonalTo(Up2()))
	assert.True(t, One2().OrthogonalTo(NewVector2(-1, 1)))

	// No tolerance: a tiny dot product is still not orthogonal
	assert.False(t, Up2().OrthogonalTo(NewVector2(1, 1e-12)))
}

func TestVector2ParallelTo(t *testing.T) {
	assert.True(t, Up2().ParallelTo(Down2()))
	assert.True(t, Left2().ParallelTo(Right2()))
	assert.False(t, Left2().ParallelTo(Up2()))
	assert.False(t, One2().ParallelTo(Up2()))
	assert.True(t, NewVector2(12, 3).ParallelTo(NewVector2(4, 1)))

	// Zero vectors are parallel to anything
	assert.True(t, Zero2().ParallelTo(NewVector2(3, 7)))
	assert.True(t, NewVector2(3, 7).ParallelTo(Zero2()))

	// Directions are compared with a tolerance
	assert.True(t, Right2().ParallelTo(NewVector2(1, 1e-7)))
}

func TestVector2Normalize(t *testing.T) {
	a := NewVector2(12, 0)
	b := NewVector2(0, -0.3)
	c := NewVector2(0.7, 12.2)

	assert.True(t, a.Normalize().Equals(Right2()))
	assertClose2(t, NewVector2(0.7071, 0.7071), One2().Normalize())
	assertClose2(t, Down2(), b.Normalize())
	assertClose2(t, NewVector2(0.05728, 0.99836), c.Normalize())

	for _, v := range []Vector2{a, b, c} {
		assert.InDelta(t, 1, v.Normalize().Norm(), closeDelta)
	}
}

func TestVector2NormalizeZero(t *testing.T) {
	zero := Zero2().Normalize()
	assert.True(t, math.IsNaN(zero.X()))
	assert.True(t, math.IsNaN(zero.Y()))

	// x*x underflows, leaving a zero norm under a nonzero component
	tiny := NewVector2(1e-200, 0).Normalize()
	assert.True(t, math.IsInf(tiny.X(), 1))
	assert.True(t, math.IsNaN(tiny.Y()))
}

func TestVector2Norm(t *testing.T) {
	assert.Equal(t, 1.0, Up2().Norm())
	assert.Equal(t, 0.0, Zero2().Norm())
	assert.InDelta(t, 15.033, NewVector2(-1, 15).Norm(), closeDelta)
	assert.InDelta(t, 1.876, NewVector2(-1.876, 0).Norm(), closeDelta)
}

func TestVector2Distance(t *testing.T) {
	a := NewVector2(3, 4)
	b := NewVector2(6, 8)
	c := NewVector2(-24.67, 44.89)

	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 10.0, Zero2().Distance(b))
	assert.Equal(t, 0.0, One2().Distance(One2()))
	assert.InDelta(t, 0, c.Distance(c), closeDelta)
	assert.InDelta(t, 47.97417, c.Distance(b), closeDelta)
}

func TestVector2Equals(t *testing.T) {
	a := NewVector2(-2, 3)
	b := NewVector2(-2.1, 2.9)

	assert.True(t, Zero2().Equals(Zero2()))
	assert.False(t, Zero2().Equals(One2()))
	assert.True(t, One2().Equals(One2()))
	assert.False(t, a.Equals(b))
	assert.True(t, Zero2().EqualsEpsilon(Zero2(), 0.1))

	// Bounds are exclusive
	assert.False(t, a.EqualsEpsilon(b, 0.1))

	// Sign of epsilon is ignored
	assert.True(t, a.EqualsEpsilon(b, -0.11))
	assert.True(t, a.EqualsEpsilon(b, 0.11))
}

func TestVector2String(t *testing.T) {
	assert.Equal(t, "[0,1]", Up2().String())
	assert.Equal(t, "[0,0]", Zero2().String())
	assert.Equal(t, "[-1,15]", NewVector2(-1, 15).String())
	assert.Equal(t, "[-1.876,-4]", NewVector2(-1.876, -4).String())
}

func TestVector2Array(t *testing.T) {
	assert.Equal(t, []float64{0, -1}, Down2().ToArray())
	assert.Equal(t, []float64{0, 0}, Zero2().ToArray())
	assert.Equal(t, []float64{-1, 15}, NewVector2(-1, 15).ToArray())
	assert.Equal(t, []float64{-1.876, -4}, NewVector2(-1.876, -4).ToArray())

	for _, v := range samples2 {
		assert.True(t, Vector2FromArray(v.ToArray()).Equals(v), "%s", v)
	}
}

func TestVector2FromArray(t *testing.T) {
	assert.True(t, Vector2FromArray([]float64{1, 0, -1.2}).Equals(NewVector2(1, 0)))
	assert.Panics(t, func() {
		Vector2FromArray([]float64{1})
	})
}

func TestVector2Constants(t *testing.T) {
	assert.Equal(t, NewVector2(1, 1), One2())
	assert.Equal(t, NewVector2(0, 0), Zero2())
	assert.Equal(t, NewVector2(0, 1), Up2())
	assert.Equal(t, NewVector2(0, -1), Down2())
	assert.Equal(t, NewVector2(-1, 0), Left2())
	assert.Equal(t, NewVector2(1, 0), Right2())
}

func TestVector2Aliases(t *testing.T) {
	for _, v := range append(samples2, NewVector2(33.241, -66.9)) {
		assert.Equal(t, v.X(), v.I())
		assert.Equal(t, v.Y(), v.J())
	}

	vec := Zero2()
	vec.SetI(4.5)
	require.Equal(t, 4.5, vec.X())
	vec.SetX(-2)
	require.Equal(t, -2.0, vec.I())

	vec.SetJ(7)
	require.Equal(t, 7.0, vec.Y())
	vec.SetY(0.25)
	require.Equal(t, 0.25, vec.J())

	// Transforms leave the receiver alone
	vec.Scale(10)
	assert.Equal(t, NewVector2(-2, 0.25), vec)
}
