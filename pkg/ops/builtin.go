package ops

import (
	"fmt"

	"github.com/cfoust/geom/pkg/geom"
)

func checkArity(args []Operand, least, most int) error {
	if len(args) < least || len(args) > most {
		if least == most {
			return fmt.Errorf("%w: expected %d, got %d", ErrArity, least, len(args))
		}
		return fmt.Errorf("%w: expected %d to %d, got %d", ErrArity, least, most, len(args))
	}
	return nil
}

func checkVector(arg Operand) error {
	if arg.Kind() == KindScalar {
		return fmt.Errorf("%w: expected a vector, got scalar %s", ErrOperandType, arg)
	}
	return nil
}

func checkScalar(arg Operand) error {
	if arg.Kind() != KindScalar {
		return fmt.Errorf("%w: expected a scalar, got %s %s", ErrOperandType, arg.Kind(), arg)
	}
	return nil
}

// unaryOp dispatches a single vector argument to the matching dimension.
type unaryOp struct {
	vec2 func(v geom.Vector2) Result
	vec3 func(v geom.Vector3) Result
}

func (u unaryOp) apply(args []Operand, _ float64) (Result, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return Result{}, err
	}

	if err := checkVector(args[0]); err != nil {
		return Result{}, err
	}

	if args[0].Kind() == KindVector2 {
		return u.vec2(args[0].Vector2()), nil
	}
	return u.vec3(args[0].Vector3()), nil
}

// binaryOp dispatches two vectors of the same dimension. A nil function means
// the operation does not exist in that dimension.
type binaryOp struct {
	vec2 func(a, b geom.Vector2, epsilon float64) Result
	vec3 func(a, b geom.Vector3, epsilon float64) Result
}

func (b binaryOp) dispatch(x, y Operand, epsilon float64) (Result, error) {
	if err := checkVector(x); err != nil {
		return Result{}, err
	}

	if err := checkVector(y); err != nil {
		return Result{}, err
	}

	if x.Kind() != y.Kind() {
		return Result{}, fmt.Errorf(
			"%w: %s and %s",
			ErrDimensionMismatch,
			x.Kind(),
			y.Kind(),
		)
	}

	switch x.Kind() {
	case KindVector2:
		if b.vec2 == nil {
			return Result{}, fmt.Errorf("%w: not defined for %s", ErrOperandType, x.Kind())
		}
		return b.vec2(x.Vector2(), y.Vector2(), epsilon), nil
	default:
		if b.vec3 == nil {
			return Result{}, fmt.Errorf("%w: not defined for %s", ErrOperandType, x.Kind())
		}
		return b.vec3(x.Vector3(), y.Vector3(), epsilon), nil
	}
}

func (b binaryOp) apply(args []Operand, epsilon float64) (Result, error) {
	if err := checkArity(args, 2, 2); err != nil {
		return Result{}, err
	}
	return b.dispatch(args[0], args[1], epsilon)
}

func scale(args []Operand, _ float64) (Result, error) {
	if err := checkArity(args, 2, 2); err != nil {
		return Result{}, err
	}

	vector, factor := args[0], args[1]
	if err := checkVector(vector); err != nil {
		return Result{}, err
	}

	if err := checkScalar(factor); err != nil {
		return Result{}, err
	}

	if vector.Kind() == KindVector2 {
		return vector2Result(vector.Vector2().Scale(factor.Scalar())), nil
	}
	return vector3Result(vector.Vector3().Scale(factor.Scalar())), nil
}

var exactEquals = binaryOp{
	vec2: func(a, b geom.Vector2, _ float64) Result { return boolResult(a.Equals(b)) },
	vec3: func(a, b geom.Vector3, _ float64) Result { return boolResult(a.Equals(b)) },
}

var approxEquals = binaryOp{
	vec2: func(a, b geom.Vector2, epsilon float64) Result { return boolResult(a.EqualsEpsilon(b, epsilon)) },
	vec3: func(a, b geom.Vector3, epsilon float64) Result { return boolResult(a.EqualsEpsilon(b, epsilon)) },
}

// equals compares exactly unless a third, scalar tolerance is given.
func equals(args []Operand, _ float64) (Result, error) {
	if err := checkArity(args, 2, 3); err != nil {
		return Result{}, err
	}

	if len(args) == 2 {
		return exactEquals.dispatch(args[0], args[1], 0)
	}

	if err := checkScalar(args[2]); err != nil {
		return Result{}, err
	}

	return approxEquals.dispatch(args[0], args[1], args[2].Scalar())
}

func toArray(args []Operand, _ float64) (Result, error) {
	if err := checkArity(args, 1, 1); err != nil {
		return Result{}, err
	}

	if err := checkVector(args[0]); err != nil {
		return Result{}, err
	}

	return valueResult(args[0]), nil
}

func builtins() []Operation {
	return []Operation{
		{
			Name:        "add",
			ArgFormat:   "<a> <b>",
			Description: "component-wise sum",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return vector2Result(a.Add(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return vector3Result(a.Add(b)) },
			}.apply,
		},
		{
			Name:        "sub",
			Aliases:     []string{"subtract"},
			ArgFormat:   "<a> <b>",
			Description: "component-wise difference a - b",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return vector2Result(a.Sub(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return vector3Result(a.Sub(b)) },
			}.apply,
		},
		{
			Name:        "dot",
			ArgFormat:   "<a> <b>",
			Description: "dot product",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return scalarResult(a.Dot(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return scalarResult(a.Dot(b)) },
			}.apply,
		},
		{
			Name:        "scale",
			Aliases:     []string{"mul"},
			ArgFormat:   "<vector> <scalar>",
			Description: "multiply each component by a scalar",
			Apply:       scale,
		},
		{
			Name:        "cross",
			ArgFormat:   "<a> <b>",
			Description: "right-handed cross product, three dimensions only",
			Apply: binaryOp{
				vec3: func(a, b geom.Vector3, _ float64) Result { return vector3Result(a.Cross(b)) },
			}.apply,
		},
		{
			Name:        "orthogonal",
			Aliases:     []string{"perpendicular"},
			ArgFormat:   "<a> <b>",
			Description: "whether the dot product is exactly zero",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return boolResult(a.OrthogonalTo(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return boolResult(a.OrthogonalTo(b)) },
			}.apply,
		},
		{
			Name:        "parallel",
			ArgFormat:   "<a> <b>",
			Description: "whether the vectors share or oppose a direction",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return boolResult(a.ParallelTo(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return boolResult(a.ParallelTo(b)) },
			}.apply,
		},
		{
			Name:        "normalize",
			Aliases:     []string{"unit"},
			ArgFormat:   "<vector>",
			Description: "divide each component by the norm",
			Apply: unaryOp{
				vec2: func(v geom.Vector2) Result { return vector2Result(v.Normalize()) },
				vec3: func(v geom.Vector3) Result { return vector3Result(v.Normalize()) },
			}.apply,
		},
		{
			Name:        "norm",
			Aliases:     []string{"length", "magnitude"},
			ArgFormat:   "<vector>",
			Description: "euclidean length",
			Apply: unaryOp{
				vec2: func(v geom.Vector2) Result { return scalarResult(v.Norm()) },
				vec3: func(v geom.Vector3) Result { return scalarResult(v.Norm()) },
			}.apply,
		},
		{
			Name:        "distance",
			Aliases:     []string{"dist"},
			ArgFormat:   "<a> <b>",
			Description: "euclidean distance between two points",
			Apply: binaryOp{
				vec2: func(a, b geom.Vector2, _ float64) Result { return scalarResult(a.Distance(b)) },
				vec3: func(a, b geom.Vector3, _ float64) Result { return scalarResult(a.Distance(b)) },
			}.apply,
		},
		{
			Name:        "equals",
			Aliases:     []string{"eq"},
			ArgFormat:   "<a> <b> [epsilon]",
			Description: "exact equality, or within epsilon when one is given",
			Apply:       equals,
		},
		{
			Name:        "approx",
			ArgFormat:   "<a> <b>",
			Description: "equality within the configured epsilon",
			UsesEpsilon: true,
			Apply:       approxEquals.apply,
		},
		{
			Name:        "array",
			Aliases:     []string{"toarray"},
			ArgFormat:   "<vector>",
			Description: "the components as a flat array",
			Apply:       toArray,
		},
	}
}

// DefaultRegistry returns a registry with every built-in operation.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, op := range builtins() {
		if err := registry.Register(op); err != nil {
			panic(err.Error())
		}
	}
	return registry
}
