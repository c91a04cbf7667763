/*
File    : pyllow/internal/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/token"
	"github.com/akashmaji946/pyllow/internal/value"
)

// Expression is any node that produces a value when evaluated. It is
// just Node under another name — internal/eval type-switches on the
// concrete struct to decide how to evaluate it, so no separate marker
// method is needed to keep Expression and Statement apart.
type Expression = Node

// MonoExpression is a leaf expression bearing a literal token or an
// identifier reference.
type MonoExpression struct {
	base
	Token token.Token
}

// NewMonoExpression wraps tok as a leaf expression.
func NewMonoExpression(tok token.Token) *MonoExpression {
	return &MonoExpression{base: base{pos: tok.Position}, Token: tok}
}

// BinaryOp is a pure function from two evaluated operands to a result.
// BinaryExpression below is the single concrete struct backing every
// binary operator, and binaryOps is the dispatch table mapping an
// operator spelling to its behavior.
type BinaryOp func(pos token.Position, lhs, rhs value.Value) (value.Value, *perr.Error)

var binaryOps = map[string]BinaryOp{
	"+":  value.Add,
	"-":  value.Sub,
	"*":  value.Mul,
	"/":  value.Div,
	"^":  value.Pow,
	"<":  func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare("<", pos, l, r) },
	">":  func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare(">", pos, l, r) },
	"<=": func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare("<=", pos, l, r) },
	">=": func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare(">=", pos, l, r) },
	"==": func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare("==", pos, l, r) },
	"!=": func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.Compare("!=", pos, l, r) },
	"&":  func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.LogicalAnd(l, r), nil },
	"|":  func(pos token.Position, l, r value.Value) (value.Value, *perr.Error) { return value.LogicalOr(l, r), nil },
}

// IsKnownBinaryOp reports whether op has an entry in the dispatch table,
// i.e. whether Apply has behavior for it. The parser does not consult it:
// it builds a BinaryExpression for any operator in chars.Precedence.
// "." is deliberately absent: the source reserves it so it lexes and
// parses, but it has no evaluator behavior.
func IsKnownBinaryOp(op string) bool {
	_, ok := binaryOps[op]
	return ok
}

// BinaryExpression is the single concrete struct backing every binary
// operator variant; Op selects its behavior out of binaryOps at
// evaluation time.
type BinaryExpression struct {
	base
	Op          string
	Left, Right Expression
}

// NewBinaryExpression builds a binary node over lhs/rhs for the given
// operator spelling, ordered (lhs, rhs).
func NewBinaryExpression(op string, lhs, rhs Expression, pos token.Position) *BinaryExpression {
	return &BinaryExpression{
		base:  base{pos: pos, children: []Node{lhs, rhs}},
		Op:    op,
		Left:  lhs,
		Right: rhs,
	}
}

// Apply runs this node's operator over already-evaluated operands.
func (b *BinaryExpression) Apply(lhs, rhs value.Value) (value.Value, *perr.Error) {
	fn, ok := binaryOps[b.Op]
	if !ok {
		return nil, perr.New(perr.Type, b.pos, "operator %q has no evaluable behavior", b.Op)
	}
	return fn(b.pos, lhs, rhs)
}

// UnaryOp is the unary counterpart of BinaryOp.
type UnaryOp func(pos token.Position, v value.Value) (value.Value, *perr.Error)

var unaryOps = map[string]UnaryOp{
	"!": value.Not,
	"+": value.Positive,
	"-": value.Negate,
}

// IsKnownUnaryOp reports whether op has an entry in the unary dispatch
// table.
func IsKnownUnaryOp(op string) bool {
	_, ok := unaryOps[op]
	return ok
}

// UnaryExpression is the single concrete struct backing !, unary +, and
// unary -.
type UnaryExpression struct {
	base
	Op      string
	Operand Expression
}

// NewUnaryExpression builds a unary node.
func NewUnaryExpression(op string, operand Expression, pos token.Position) *UnaryExpression {
	return &UnaryExpression{
		base:    base{pos: pos, children: []Node{operand}},
		Op:      op,
		Operand: operand,
	}
}

// Apply runs this node's operator over an already-evaluated operand.
func (u *UnaryExpression) Apply(v value.Value) (value.Value, *perr.Error) {
	fn, ok := unaryOps[u.Op]
	if !ok {
		return nil, perr.New(perr.Type, u.pos, "operator %q has no evaluable behavior", u.Op)
	}
	return fn(u.pos, v)
}

// CallExpression is an identifier applied to an argument list. Parsed
// but never evaluated: call expressions always fail at evaluation time.
type CallExpression struct {
	base
	Identity string
	Args     []Expression
}

// NewCallExpression builds a call node over identity and args.
func NewCallExpression(identity string, args []Expression, pos token.Position) *CallExpression {
	children := make([]Node, len(args))
	for i, a := range args {
		children[i] = a
	}
	return &CallExpression{
		base:     base{pos: pos, children: children},
		Identity: identity,
		Args:     args,
	}
}
