/*
File    : pyllow/internal/ast/node_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/pyllow/internal/token"
	"github.com/stretchr/testify/assert"
)

var pos = token.Position{Line: 1, Column: 0, Path: "<test>"}

func TestSetParents_TopNodeHasNoParentAndOwnsItsChildren(t *testing.T) {
	root := NewTopNode()
	lit := NewMonoExpression(token.Token{Type: token.NUM, Value: "1", Position: pos})
	root.AddChild(lit)
	SetParents(root)

	assert.Nil(t, root.Parent())
	assert.Equal(t, Node(root), lit.Parent())
}

func TestSetParents_OrdinaryNodeAttachesToItsOwnParent(t *testing.T) {
	root := NewTopNode()
	cond := NewMonoExpression(token.Token{Type: token.BOOL, Value: "true", Position: pos})
	assign := NewAssignStatement("a", NewMonoExpression(token.Token{Type: token.NUM, Value: "1", Position: pos}), pos)
	then := NewBlockNode(pos, []Node{assign})
	ifStmt := NewIfStatement(cond, then, nil, pos)
	root.AddChild(ifStmt)
	SetParents(root)

	assert.Equal(t, Node(root), ifStmt.Parent())
	assert.Equal(t, Node(ifStmt), cond.Parent())
}

func TestSetParents_BlockNodeForwardsToItsInheritedParent(t *testing.T) {
	// BlockNode is is-parent=false: statements inside a block
	// attach to the block's own inherited parent, not to the block itself.
	root := NewTopNode()
	assign := NewAssignStatement("a", NewMonoExpression(token.Token{Type: token.NUM, Value: "1", Position: pos}), pos)
	cond := NewMonoExpression(token.Token{Type: token.BOOL, Value: "true", Position: pos})
	then := NewBlockNode(pos, []Node{assign})
	ifStmt := NewIfStatement(cond, then, nil, pos)
	root.AddChild(ifStmt)
	SetParents(root)

	assert.Equal(t, Node(ifStmt), assign.Parent())
	assert.False(t, then.IsParent())
}

func TestIsScope_OnlyTopNode(t *testing.T) {
	root := NewTopNode()
	block := NewBlockNode(pos, nil)
	assign := NewAssignStatement("a", NewMonoExpression(token.Token{Type: token.NUM, Value: "1", Position: pos}), pos)

	assert.True(t, root.IsScope())
	assert.False(t, block.IsScope())
	assert.False(t, assign.IsScope())
}

func TestBinaryExpression_ApplyUnknownOperatorIsTypeError(t *testing.T) {
	lhs := NewMonoExpression(token.Token{Type: token.NUM, Value: "1", Position: pos})
	rhs := NewMonoExpression(token.Token{Type: token.NUM, Value: "2", Position: pos})
	bin := NewBinaryExpression(".", lhs, rhs, pos)

	assert.False(t, IsKnownBinaryOp("."))
	_, err := bin.Apply(nil, nil)
	assert.NotNil(t, err)
}

func TestIsKnownUnaryOp(t *testing.T) {
	assert.True(t, IsKnownUnaryOp("!"))
	assert.True(t, IsKnownUnaryOp("-"))
	assert.True(t, IsKnownUnaryOp("+"))
	assert.False(t, IsKnownUnaryOp("/"))
}
