package ops

import "errors"

var (
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrArity             = errors.New("wrong number of arguments")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrOperandType       = errors.New("invalid operand type")
	ErrInvalidOperand    = errors.New("invalid operand")
)
