package ops

import (
	"strconv"

	"github.com/cfoust/geom/pkg/geom"
)

// Result is the output of an operation: either a value (scalar or vector)
// or a boolean for predicates.
type Result struct {
	value     Operand
	boolean   bool
	isBoolean bool
}

func valueResult(value Operand) Result {
	return Result{value: value}
}

func scalarResult(value float64) Result {
	return valueResult(Scalar(value))
}

func vector2Result(value geom.Vector2) Result {
	return valueResult(Vec2(value))
}

func vector3Result(value geom.Vector3) Result {
	return valueResult(Vec3(value))
}

func boolResult(value bool) Result {
	return Result{boolean: value, isBoolean: true}
}

// Bool returns the result of a predicate. ok is false for non-boolean
// results.
func (r Result) Bool() (value bool, ok bool) {
	return r.boolean, r.isBoolean
}

// Operand returns the scalar or vector result. ok is false for predicates.
func (r Result) Operand() (value Operand, ok bool) {
	return r.value, !r.isBoolean
}

// Value returns a plain value suitable for encoding: a bool, a float64 for
// scalars, or a []float64 for vectors.
func (r Result) Value() interface{} {
	if r.isBoolean {
		return r.boolean
	}

	if r.value.Kind() == KindScalar {
		return r.value.Scalar()
	}

	return r.value.Values()
}

func (r Result) String() string {
	if r.isBoolean {
		return strconv.FormatBool(r.boolean)
	}
	return r.value.String()
}
