// Package engine implements the four arithmetic operations shared by both
// front ends. All operations work on float64 with plain IEEE-754 semantics;
// validating NaN/Inf operands is the caller's responsibility.
package engine

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownOperator is returned by Apply for any symbol outside + - * /.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator symbols accepted by Apply and ValidOperator.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
)

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero when b == 0. The zero check is
// exact equality, not an epsilon comparison.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// ValidOperator reports whether sym is exactly one of the four operator
// symbols. No aliases ("x", "÷") and no whitespace tolerance.
func ValidOperator(sym string) bool {
	switch sym {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Apply dispatches to the operation selected by op.
func Apply(op string, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}
