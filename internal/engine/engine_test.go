package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		op   string
		a, b float64
		want float64
	}{
		{name: "add", op: "+", a: 10, b: 5, want: 15},
		{name: "add negative", op: "+", a: -2.5, b: 1, want: -1.5},
		{name: "subtract", op: "-", a: 10, b: 5, want: 5},
		{name: "multiply", op: "*", a: 10, b: 5, want: 50},
		{name: "multiply by zero", op: "*", a: 10, b: 0, want: 0},
		{name: "divide", op: "/", a: 10, b: 5, want: 2},
		{name: "divide fractional", op: "/", a: 1, b: 4, want: 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.op, tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{8, -3.5, 0, math.MaxFloat64} {
		_, err := Divide(a, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero, "dividend %g", a)
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	for _, op := range []string{"x", "÷", "**", "", " +", "+ "} {
		_, err := Apply(op, 1, 2)
		assert.ErrorIs(t, err, ErrUnknownOperator, "operator %q", op)
	}
}

func TestValidOperator(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/"} {
		assert.True(t, ValidOperator(op), "operator %q", op)
	}
	for _, op := range []string{"x", "÷", "%", "", " ", "+ ", " -"} {
		assert.False(t, ValidOperator(op), "operator %q", op)
	}
}

// Algebraic round trips: inverse operations recover the original operand
// within floating-point tolerance.
func TestOperationRoundTrips(t *testing.T) {
	pairs := []struct{ a, b float64 }{
		{10, 5},
		{-3.25, 0.5},
		{1e10, 7},
		{0.1, 0.3},
	}

	for _, p := range pairs {
		assert.InDelta(t, p.a, Subtract(Add(p.a, p.b), p.b), math.Abs(p.a)*1e-12, "add/subtract %v", p)

		q, err := Divide(p.a, p.b)
		require.NoError(t, err)
		assert.InDelta(t, p.a, Multiply(q, p.b), math.Abs(p.a)*1e-12, "divide/multiply %v", p)

		assert.Equal(t, Multiply(p.a, p.b), Multiply(p.b, p.a), "commutativity %v", p)
	}
}

func TestNonFiniteOperandsPassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(Add(math.NaN(), 1)))
	assert.True(t, math.IsInf(Multiply(math.Inf(1), 2), 1))

	got, err := Divide(math.Inf(1), 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}
