/*
File    : pyllow/internal/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value implements Pyllow's runtime value family: a tagged
// family of {Int, Float, Bool}. Grounded on the interface-plus-
// concrete-struct shape of akashmaji946-go-mix/objects/objects.go
// (GoMixObject / Integer / Float / Boolean), narrowed to the three kinds
// the language actually has, with the arithmetic/coercion rules taken
// from original_source/src/Datatype.py.
package value

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/token"
)

// Kind identifies a runtime value's variant.
type Kind string

const (
	IntKind   Kind = "int"
	FloatKind Kind = "float"
	BoolKind  Kind = "bool"
)

// Value is the interface every runtime value implements. Position is
// carried on every value so arithmetic/comparison failures can report
// where the offending value came from.
type Value interface {
	Kind() Kind
	Payload() float64
	Pos() token.Position
	ToString() string
	ToObject() string
}

// Int is a 64-bit signed integer runtime value.
type Int struct {
	Val int64
	P   token.Position
}

func (i *Int) Kind() Kind            { return IntKind }
func (i *Int) Payload() float64      { return float64(i.Val) }
func (i *Int) Pos() token.Position   { return i.P }
func (i *Int) ToString() string      { return strconv.FormatInt(i.Val, 10) }
func (i *Int) ToObject() string      { return fmt.Sprintf("<int(%d)>", i.Val) }

// Float is a 64-bit floating-point runtime value.
type Float struct {
	Val float64
	P   token.Position
}

func (f *Float) Kind() Kind          { return FloatKind }
func (f *Float) Payload() float64    { return f.Val }
func (f *Float) Pos() token.Position { return f.P }
func (f *Float) ToString() string    { return strconv.FormatFloat(f.Val, 'f', -1, 64) }
func (f *Float) ToObject() string    { return fmt.Sprintf("<float(%v)>", f.Val) }

// Bool is a boolean runtime value. It behaves as a subtype of Int: its
// payload (Val) is always normalized to 0 or 1.
type Bool struct {
	Val int64
	P   token.Position
}

func (b *Bool) Kind() Kind          { return BoolKind }
func (b *Bool) Payload() float64    { return float64(b.Val) }
func (b *Bool) Pos() token.Position { return b.P }
func (b *Bool) ToString() string {
	if b.Val != 0 {
		return "true"
	}
	return "false"
}
func (b *Bool) ToObject() string { return fmt.Sprintf("<bool(%t)>", b.Val != 0) }

// NewFloat coerces a decimal lexeme into a Float. Construction accepts
// the same grammar as standard decimal floating point; failure is a
// value error.
func NewFloat(lexeme string, pos token.Position) (*Float, *perr.Error) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, perr.New(perr.Value, pos, "cannot convert %q to float", lexeme)
	}
	return &Float{Val: f, P: pos}, nil
}

// NewInt coerces an integer lexeme into an Int. Construction additionally
// requires the text to parse as an integer (internally via a float pass
// first, matching
// original_source/src/Datatype.py's Integer(Float) inheritance, which
// always constructs the Float payload before truncating to int).
func NewInt(lexeme string, pos token.Position) (*Int, *perr.Error) {
	if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
		return nil, perr.New(perr.Value, pos, "cannot convert %q to int", lexeme)
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, perr.New(perr.Value, pos, "cannot convert %q to int", lexeme)
	}
	return &Int{Val: i, P: pos}, nil
}

// NewBoolFromLexeme coerces the literal spellings "true"/"false" into a
// Bool, normalizing the payload to 1/0.
func NewBoolFromLexeme(lexeme string, pos token.Position) (*Bool, *perr.Error) {
	switch lexeme {
	case "true":
		return &Bool{Val: 1, P: pos}, nil
	case "false":
		return &Bool{Val: 0, P: pos}, nil
	default:
		return nil, perr.New(perr.Value, pos, "cannot convert %q to bool", lexeme)
	}
}

// NewBoolFromPayload builds a Bool from any numeric payload, normalizing
// it to 0 or 1.
func NewBoolFromPayload(payload float64, pos token.Position) *Bool {
	if payload != 0 {
		return &Bool{Val: 1, P: pos}
	}
	return &Bool{Val: 0, P: pos}
}

// Truthy reports a value's boolean coercion by payload.
func Truthy(v Value) bool {
	return v.Payload() != 0
}

func makeLike(kind Kind, payload float64, pos token.Position) Value {
	switch kind {
	case IntKind:
		return &Int{Val: int64(payload), P: pos}
	case BoolKind:
		return NewBoolFromPayload(payload, pos)
	default:
		return &Float{Val: payload, P: pos}
	}
}

// resultKind implements the promotion rule for + - * ^: if operands
// share a variant, the result takes that variant; otherwise the result
// takes the variant of the left operand.
func resultKind(lhs, rhs Value) Kind {
	if lhs.Kind() == rhs.Kind() {
		return lhs.Kind()
	}
	return lhs.Kind()
}
