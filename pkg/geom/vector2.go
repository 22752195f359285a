package geom

import "math"

// ParallelEpsilon is the tolerance Vector2.ParallelTo uses when comparing
// directions.
const ParallelEpsilon = 0.00001

// Vector2 is a two dimensional vector. The i and j accessors are aliases for
// x and y and share the same storage.
type Vector2 struct {
	x, y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{x, y}
}

// Vector2FromArray builds a vector from the first two elements of values.
// Extra elements are ignored. It panics if values has fewer than two
// elements.
func Vector2FromArray(values []float64) Vector2 {
	return Vector2{values[0], values[1]}
}

func Zero2() Vector2  { return Vector2{0, 0} }
func One2() Vector2   { return Vector2{1, 1} }
func Up2() Vector2    { return Vector2{0, 1} }
func Down2() Vector2  { return Vector2{0, -1} }
func Left2() Vector2  { return Vector2{-1, 0} }
func Right2() Vector2 { return Vector2{1, 0} }

func (v Vector2) X() float64 { return v.x }
func (v Vector2) Y() float64 { return v.y }
func (v Vector2) I() float64 { return v.x }
func (v Vector2) J() float64 { return v.y }

func (v *Vector2) SetX(x float64) { v.x = x }
func (v *Vector2) SetY(y float64) { v.y = y }
func (v *Vector2) SetI(i float64) { v.x = i }
func (v *Vector2) SetJ(j float64) { v.y = j }

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.x + o.x, v.y + o.y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.x - o.x, v.y - o.y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.x*o.x + v.y*o.y
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{v.x * k, v.y * k}
}

// OrthogonalTo reports whether the dot product is exactly zero.
func (v Vector2) OrthogonalTo(o Vector2) bool {
	return v.Dot(o) == 0
}

// ParallelTo reports whether the two vectors point in the same or opposite
// direction, comparing normalized forms within ParallelEpsilon. A zero vector
// is parallel to everything.
func (v Vector2) ParallelTo(o Vector2) bool {
	return v.Norm() == 0 ||
		o.Norm() == 0 ||
		v.Normalize().EqualsEpsilon(o.Normalize(), ParallelEpsilon) ||
		v.Scale(-1).Normalize().EqualsEpsilon(o.Normalize(), ParallelEpsilon)
}

// Normalize divides each component by the norm. The zero vector produces
// NaN components.
func (v Vector2) Normalize() Vector2 {
	norm := v.Norm()
	return Vector2{v.x / norm, v.y / norm}
}

func (v Vector2) Norm() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

func (v Vector2) Distance(o Vector2) float64 {
	return math.Sqrt(math.Pow(v.x-o.x, 2) + math.Pow(v.y-o.y, 2))
}

func (v Vector2) Equals(o Vector2) bool {
	return v.x == o.x && v.y == o.y
}

// EqualsEpsilon reports whether every component of o lies strictly within
// |epsilon| of the matching component of v.
func (v Vector2) EqualsEpsilon(o Vector2, epsilon float64) bool {
	epsilon = math.Abs(epsilon)
	x := o.x > v.x-epsilon && o.x < v.x+epsilon
	y := o.y > v.y-epsilon && o.y < v.y+epsilon
	return x && y
}

func (v Vector2) String() string {
	return formatComponents(v.x, v.y)
}

func (v Vector2) ToArray() []float64 {
	return []float64{v.x, v.y}
}
