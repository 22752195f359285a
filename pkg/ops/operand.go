package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cfoust/geom/pkg/geom"

	"github.com/repeale/fp-go"
)

type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindVector2
	KindVector3
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	}
	return "unknown"
}

// Operand is a single argument to an operation: a scalar, a Vector2 or a
// Vector3.
type Operand struct {
	kind   Kind
	scalar float64
	vec2   geom.Vector2
	vec3   geom.Vector3
}

func Scalar(value float64) Operand {
	return Operand{kind: KindScalar, scalar: value}
}

func Vec2(value geom.Vector2) Operand {
	return Operand{kind: KindVector2, vec2: value}
}

func Vec3(value geom.Vector3) Operand {
	return Operand{kind: KindVector3, vec3: value}
}

// OperandFromValues picks the operand kind from the number of values.
func OperandFromValues(values []float64) (Operand, error) {
	switch len(values) {
	case 1:
		return Scalar(values[0]), nil
	case 2:
		return Vec2(geom.Vector2FromArray(values)), nil
	case 3:
		return Vec3(geom.Vector3FromArray(values)), nil
	}

	return Operand{}, fmt.Errorf(
		"%w: expected 1 to 3 values, got %d",
		ErrInvalidOperand,
		len(values),
	)
}

// ParseOperand parses a comma separated list of numbers, optionally wrapped
// in brackets, e.g. "2.5", "1,2" or "[1, 2, 3]".
func ParseOperand(argument string) (Operand, error) {
	trimmed := strings.TrimSpace(argument)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	parts := fp.Map[string, string](strings.TrimSpace)(strings.Split(trimmed, ","))

	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Operand{}, fmt.Errorf(
				"%w: %q is not a number",
				ErrInvalidOperand,
				part,
			)
		}
		values = append(values, value)
	}

	return OperandFromValues(values)
}

func ParseOperands(arguments []string) ([]Operand, error) {
	operands := make([]Operand, 0, len(arguments))
	for i, argument := range arguments {
		operand, err := ParseOperand(argument)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		operands = append(operands, operand)
	}
	return operands, nil
}

func (o Operand) Kind() Kind { return o.kind }

func (o Operand) Scalar() float64       { return o.scalar }
func (o Operand) Vector2() geom.Vector2 { return o.vec2 }
func (o Operand) Vector3() geom.Vector3 { return o.vec3 }

func (o Operand) Values() []float64 {
	switch o.kind {
	case KindScalar:
		return []float64{o.scalar}
	case KindVector2:
		return o.vec2.ToArray()
	case KindVector3:
		return o.vec3.ToArray()
	}
	return nil
}

func (o Operand) String() string {
	switch o.kind {
	case KindScalar:
		return geom.FormatComponent(o.scalar)
	case KindVector2:
		return o.vec2.String()
	case KindVector3:
		return o.vec3.String()
	}
	return "<invalid>"
}
