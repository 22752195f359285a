package geom

import "math"

// Vector3 is a three dimensional vector. The i, j and k accessors are
// aliases for x, y and z and share the same storage.
type Vector3 struct {
	x, y, z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Vector3FromArray builds a vector from the first three elements of values.
// Extra elements are ignored. It panics if values has fewer than three
// elements.
func Vector3FromArray(values []float64) Vector3 {
	return Vector3{values[0], values[1], values[2]}
}

func Zero3() Vector3    { return Vector3{0, 0, 0} }
func One3() Vector3     { return Vector3{1, 1, 1} }
func Up3() Vector3      { return Vector3{0, 1, 0} }
func Down3() Vector3    { return Vector3{0, -1, 0} }
func Left3() Vector3    { return Vector3{-1, 0, 0} }
func Right3() Vector3   { return Vector3{1, 0, 0} }
func Forward3() Vector3 { return Vector3{0, 0, 1} }
func Back3() Vector3    { return Vector3{0, 0, -1} }

func (v Vector3) X() float64 { return v.x }
func (v Vector3) Y() float64 { return v.y }
func (v Vector3) Z() float64 { return v.z }
func (v Vector3) I() float64 { return v.x }
func (v Vector3) J() float64 { return v.y }
func (v Vector3) K() float64 { return v.z }

func (v *Vector3) SetX(x float64) { v.x = x }
func (v *Vector3) SetY(y float64) { v.y = y }
func (v *Vector3) SetZ(z float64) { v.z = z }
func (v *Vector3) SetI(i float64) { v.x = i }
func (v *Vector3) SetJ(j float64) { v.y = j }
func (v *Vector3) SetK(k float64) { v.z = k }

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{v.x * k, v.y * k, v.z * k}
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.y*o.z - v.z*o.y,
		v.z*o.x - v.x*o.z,
		v.x*o.y - v.y*o.x,
	}
}

// OrthogonalTo reports whether the dot product is exactly zero.
func (v Vector3) OrthogonalTo(o Vector3) bool {
	return v.Dot(o) == 0
}

// ParallelTo reports whether the cross product is exactly the zero vector.
// Unlike Vector2 there is no tolerance. A zero vector is parallel to
// everything.
func (v Vector3) ParallelTo(o Vector3) bool {
	return v.Norm() == 0 || o.Norm() == 0 || Zero3().Equals(v.Cross(o))
}

// Normalize divides each component by the norm. The zero vector produces
// NaN components.
func (v Vector3) Normalize() Vector3 {
	norm := v.Norm()
	return Vector3{v.x / norm, v.y / norm, v.z / norm}
}

func (v Vector3) Norm() float64 {
	if v.Equals(Zero3()) {
		return 0
	}
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

func (v Vector3) Distance(o Vector3) float64 {
	return math.Sqrt(
		math.Pow(v.x-o.x, 2) +
			math.Pow(v.y-o.y, 2) +
			math.Pow(v.z-o.z, 2),
	)
}

func (v Vector3) Equals(o Vector3) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}

// EqualsEpsilon reports whether every component of o lies strictly within
// |epsilon| of the matching component of v.
func (v Vector3) EqualsEpsilon(o Vector3, epsilon float64) bool {
	epsilon = math.Abs(epsilon)
	x := o.x > v.x-epsilon && o.x < v.x+epsilon
	y := o.y > v.y-epsilon && o.y < v.y+epsilon
	z := o.z > v.z-epsilon && o.z < v.z+epsilon
	return x && y && z
}

func (v Vector3) String() string {
	return formatComponents(v.x, v.y, v.z)
}

func (v Vector3) ToArray() []float64 {
	return []float64{v.x, v.y, v.z}
}
