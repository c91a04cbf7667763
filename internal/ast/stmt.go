/*
File    : pyllow/internal/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/pyllow/internal/token"

// Statement is any node evaluated purely for its effect on scope; it
// never substitutes a value into its parent's child list.
type Statement = Node

// AssignStatement binds Identity to the value Expr evaluates to. It is
// is-scope=false: the write targets the nearest enclosing scope-owning
// ancestor, which in this implementation is always TopNode.
type AssignStatement struct {
	base
	Identity string
	Expr     Expression
}

// NewAssignStatement builds an assignment node.
func NewAssignStatement(identity string, expr Expression, pos token.Position) *AssignStatement {
	return &AssignStatement{
		base:     base{pos: pos, children: []Node{expr}},
		Identity: identity,
		Expr:     expr,
	}
}

// IfStatement is a condition, a then-block, and an optional alternative:
// another IfStatement, for an else-if chain, or a BlockNode for a plain
// else; nil when absent.
type IfStatement struct {
	base
	Cond        Expression
	Then        *BlockNode
	Alternative Node
}

// NewIfStatement builds an if node. alternative is nil, an *IfStatement,
// or a *BlockNode.
func NewIfStatement(cond Expression, then *BlockNode, alternative Node, pos token.Position) *IfStatement {
	children := []Node{cond, then}
	if alternative != nil {
		children = append(children, alternative)
	}
	return &IfStatement{
		base:        base{pos: pos, children: children},
		Cond:        cond,
		Then:        then,
		Alternative: alternative,
	}
}
