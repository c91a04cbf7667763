/*
File    : pyllow/internal/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines Pyllow's tree representation: tagged node variants
// carrying a parent back-reference, an ordered child list, a position,
// and the is-scope/is-parent flags that govern scope ownership and
// structural attachment. Grounded on the interface-plus-concrete-struct
// shape of akashmaji946-go-mix/parser/node.go, re-targeted from go-mix's
// Visitor dispatch to a flag-driven attachment scheme, and on
// original_source/src/Node.py for the parent-link / scope-chain
// vocabulary (_set_parents, scope_get, _update_scope) that scheme
// generalizes.
//
// Node holds data only. Evaluation lives in internal/eval, which
// type-switches over these concrete structs the way
// akashmaji946-go-mix/eval/evaluator.go type-switches over go-mix's node
// hierarchy.
package ast

import (
	"github.com/akashmaji946/pyllow/internal/token"
	"github.com/akashmaji946/pyllow/internal/value"
)

// Node is the common interface every AST variant implements.
type Node interface {
	Position() token.Position
	Children() []Node
	Parent() Node
	SetParent(Node)
	// IsScope reports whether this node owns a variable-binding frame.
	IsScope() bool
	// IsParent reports whether this node becomes the structural parent of
	// the nodes attached to it, or forwards that role to its own parent.
	// BlockNode is the one is-parent=false variant, so statements inside
	// a block attach directly to the block's own parent instead of to
	// the block.
	IsParent() bool
}

// base is embedded by every concrete node and supplies the bookkeeping
// fields every variant shares. Its IsScope/IsParent defaults (false,
// true) match every node in the hierarchy except TopNode (is-scope=true)
// and BlockNode (is-parent=false) — both of which override explicitly.
type base struct {
	parent   Node
	pos      token.Position
	children []Node
}

func (b *base) Position() token.Position { return b.pos }
func (b *base) Children() []Node         { return b.children }
func (b *base) Parent() Node             { return b.parent }
func (b *base) SetParent(p Node)         { b.parent = p }
func (b *base) IsScope() bool            { return false }
func (b *base) IsParent() bool           { return true }

// TopNode is the tree's root: is-scope=true, is-parent=true. It is the
// only node that actually owns a scope dictionary in this
// implementation — Pyllow has no function or loop scoping, so the whole
// program shares one flat frame.
type TopNode struct {
	base
	Scope map[string]value.Value
}

// NewTopNode returns an empty root with a fresh scope.
func NewTopNode() *TopNode {
	return &TopNode{Scope: make(map[string]value.Value)}
}

func (t *TopNode) IsScope() bool { return true }

// AddChild appends a top-level statement or expression.
func (t *TopNode) AddChild(n Node) {
	t.children = append(t.children, n)
}

// SetChildren replaces the root's child list wholesale. eval.Run does not
// call it: evaluation leaves the child list unchanged and returns the
// top-level values as a separate slice.
func (t *TopNode) SetChildren(children []Node) {
	t.children = children
}

// SetParents walks the tree depth-first, assigning every node's parent
// per the is-parent flag of whichever ancestor it is attached under.
// Call once, after a full parse, before evaluation.
func SetParents(root *TopNode) {
	setParents(root, nil)
}

func setParents(n Node, inherited Node) {
	n.SetParent(inherited)
	childParent := inherited
	if n.IsParent() {
		childParent = n
	}
	for _, c := range n.Children() {
		setParents(c, childParent)
	}
}

// BlockNode is the body of an if/else: is-scope=false, is-parent=false —
// its statements attach to the enclosing scope rather than to the block
// itself.
type BlockNode struct {
	base
}

// NewBlockNode wraps statements into a block.
func NewBlockNode(pos token.Position, statements []Node) *BlockNode {
	return &BlockNode{base: base{pos: pos, children: statements}}
}

func (b *BlockNode) IsParent() bool { return false }
