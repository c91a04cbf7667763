/*
File    : pyllow/internal/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks a parsed Pyllow program. Grounded on the
// dispatch-on-node-type idiom of
// akashmaji946-go-mix/eval/evaluator.go and eval/eval_conditionals.go,
// and on original_source/src/Node.py's Node.process family for the exact
// per-variant evaluation rules (scope_get/_update_scope, TopNode's
// substitute-or-remove root loop).
package eval

import (
	"github.com/akashmaji946/pyllow/internal/ast"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/token"
	"github.com/akashmaji946/pyllow/internal/value"
)

// Run executes every top-level statement/expression of root in order.
// It returns the sequence of values produced by bare top-level
// expressions (for a REPL to echo); assignments and if-statements
// contribute nothing to that sequence. This stands in for
// original_source's root loop, which literally spliced each child's
// process() result back into TopNode.children — a pretty-printing
// concern this implementation keeps as a plain result slice instead of
// forcing runtime values into the Node-typed child list.
func Run(root *ast.TopNode) ([]value.Value, *perr.Error) {
	ast.SetParents(root)

	var results []value.Value
	for _, child := range root.Children() {
		v, err := Process(child)
		if err != nil {
			return nil, err
		}
		if v != nil {
			results = append(results, v)
		}
	}
	return results, nil
}

// Process evaluates a single AST node. Expression nodes return their
// computed value; statement nodes return nil on success.
func Process(n ast.Node) (value.Value, *perr.Error) {
	switch node := n.(type) {

	case *ast.MonoExpression:
		return processMono(node)

	case *ast.BinaryExpression:
		lhs, err := Process(node.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := Process(node.Right)
		if err != nil {
			return nil, err
		}
		return node.Apply(lhs, rhs)

	case *ast.UnaryExpression:
		operand, err := Process(node.Operand)
		if err != nil {
			return nil, err
		}
		return node.Apply(operand)

	case *ast.CallExpression:
		return nil, perr.New(perr.Syntax, node.Position(),
			"function calls are not implemented")

	case *ast.AssignStatement:
		v, err := Process(node.Expr)
		if err != nil {
			return nil, err
		}
		scopeSet(node, node.Identity, v)
		return nil, nil

	case *ast.IfStatement:
		return nil, processIf(node)

	case *ast.BlockNode:
		return nil, processBlock(node)

	default:
		return nil, perr.New(perr.Syntax, n.Position(), "cannot evaluate node")
	}
}

func processMono(n *ast.MonoExpression) (value.Value, *perr.Error) {
	tok := n.Token
	switch tok.Type {
	case token.ID:
		return scopeGet(n, tok.Value, tok.Position)
	case token.NUM:
		if tok.Subtype == token.FloatSub {
			return value.NewFloat(tok.Value, tok.Position)
		}
		return value.NewInt(tok.Value, tok.Position)
	case token.BOOL:
		return value.NewBoolFromLexeme(tok.Value, tok.Position)
	case token.STR, token.NULL:
		// Reserved but unimplemented: str and null parse as literals but
		// have no runtime value variant.
		return nil, perr.New(perr.Type, tok.Position, "%s literals are not implemented", tok.Type)
	default:
		return nil, perr.New(perr.Type, tok.Position, "cannot evaluate token of type %s", tok.Type)
	}
}

func processIf(n *ast.IfStatement) *perr.Error {
	cond, err := Process(n.Cond)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return processBlock(n.Then)
	}
	switch alt := n.Alternative.(type) {
	case nil:
		return nil
	case *ast.IfStatement:
		return processIf(alt)
	case *ast.BlockNode:
		return processBlock(alt)
	default:
		return perr.New(perr.Syntax, n.Position(), "unrecognized if alternative")
	}
}

func processBlock(b *ast.BlockNode) *perr.Error {
	for _, stmt := range b.Children() {
		if _, err := Process(stmt); err != nil {
			return err
		}
	}
	return nil
}

// scopeGet walks n's own scope status, then its parent chain, looking
// for id — mirroring original_source/src/Node.py's Node.scope_get (the
// querying node is checked before its ancestors).
func scopeGet(n ast.Node, id string, origPos token.Position) (value.Value, *perr.Error) {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.IsScope() {
			if top, ok := cur.(*ast.TopNode); ok {
				if v, ok := top.Scope[id]; ok {
					return v, nil
				}
			}
		}
	}
	return nil, perr.New(perr.Name, origPos, "name %q is not defined", id)
}

// scopeSet walks starting at n's parent (original_source's
// Node.scope_set skips straight to self.parent._update_scope) until it
// finds the nearest is-scope ancestor and binds id there.
func scopeSet(n ast.Node, id string, v value.Value) {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if cur.IsScope() {
			if top, ok := cur.(*ast.TopNode); ok {
				top.Scope[id] = v
				return
			}
		}
	}
}
