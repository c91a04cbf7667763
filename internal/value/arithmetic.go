/*
File    : pyllow/internal/value/arithmetic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"math"

	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/token"
)

// combine implements the shared shape of +, -, *, ^: compute the payload
// with fn, then wrap it in the promoted result variant (resultKind).
func combine(opPos token.Position, lhs, rhs Value, fn func(l, r float64) float64) (Value, *perr.Error) {
	return makeLike(resultKind(lhs, rhs), fn(lhs.Payload(), rhs.Payload()), opPos), nil
}

// Add implements binary "+".
func Add(opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	return combine(opPos, lhs, rhs, func(l, r float64) float64 { return l + r })
}

// Sub implements binary "-".
func Sub(opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	return combine(opPos, lhs, rhs, func(l, r float64) float64 { return l - r })
}

// Mul implements binary "*".
func Mul(opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	return combine(opPos, lhs, rhs, func(l, r float64) float64 { return l * r })
}

// Pow implements binary "^". "^" is right-associative, but that's a
// parser-level concern, not an arithmetic one — this function just
// computes lhs**rhs for whatever operand order the parser built.
func Pow(opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	return combine(opPos, lhs, rhs, math.Pow)
}

// Div implements binary "/". Division always yields a Float, and
// division by zero is a ZeroDivision error regardless of operand kinds.
func Div(opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	if rhs.Payload() == 0 {
		return nil, perr.New(perr.ZeroDivision, opPos, "division by zero")
	}
	return &Float{Val: lhs.Payload() / rhs.Payload(), P: opPos}, nil
}

// Compare implements the six comparison operators, returning a Bool.
// Equality ("==", "!=") is payload equality across the value family.
func Compare(op string, opPos token.Position, lhs, rhs Value) (Value, *perr.Error) {
	l, r := lhs.Payload(), rhs.Payload()
	var result bool
	switch op {
	case "<":
		result = l < r
	case ">":
		result = l > r
	case "<=":
		result = l <= r
	case ">=":
		result = l >= r
	case "==":
		result = l == r
	case "!=":
		result = l != r
	default:
		return nil, perr.New(perr.Type, opPos, "unsupported comparison operator %q", op)
	}
	return NewBoolFromPayload(boolToFloat(result), opPos), nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// LogicalAnd implements "&" with Kleene-style, value-preserving
// semantics: returns the first falsy operand, or the second operand
// otherwise. Short-circuits on the left operand.
func LogicalAnd(lhs, rhs Value) Value {
	if !Truthy(lhs) {
		return lhs
	}
	return rhs
}

// LogicalOr implements "|": returns the first truthy operand, or the
// second operand otherwise. Short-circuits on the left operand.
func LogicalOr(lhs, rhs Value) Value {
	if Truthy(lhs) {
		return lhs
	}
	return rhs
}

// Negate implements unary "-": numeric negation, preserving the
// operand's variant.
func Negate(opPos token.Position, v Value) (Value, *perr.Error) {
	return makeLike(v.Kind(), -v.Payload(), opPos), nil
}

// Positive implements unary "+": numeric identity, preserving the
// operand's variant (matches original_source/src/Datatype.py's __pos__).
func Positive(opPos token.Position, v Value) (Value, *perr.Error) {
	return makeLike(v.Kind(), v.Payload(), opPos), nil
}

// Not implements unary "!": the boolean complement, always a Bool.
func Not(opPos token.Position, v Value) (Value, *perr.Error) {
	return NewBoolFromPayload(boolToFloat(!Truthy(v)), opPos), nil
}
