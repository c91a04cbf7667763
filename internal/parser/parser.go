/*
File    : pyllow/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token sequence into an AST: recursive descent
// for statements and block structure, precedence
// climbing for expressions. Grounded on the struct shape and helper
// naming of akashmaji946-go-mix/parser/parser.go,
// parser_precedence.go, parser_expressions.go, parser_statements.go, and
// parser_helpers.go, with control flow for the trickier corners (paren
// round-tripping, unary-fold lookahead, call recognition) cross-checked
// against original_source/src/AST.py's _expression/_statement/_if/_call.
package parser

import (
	"github.com/akashmaji946/pyllow/internal/ast"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/stream"
	"github.com/akashmaji946/pyllow/internal/token"
)

// Parser drives a token stream into the root of an AST.
type Parser struct {
	tokens *stream.Stream[token.Token]
	tree   *ast.TopNode
}

// New returns a Parser over tokens, which must end with an EOF token
// (as internal/lexer always produces).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: stream.New(tokens), tree: ast.NewTopNode()}
}

// Parse drives the statement rule until it is exhausted, then requires
// the stream to have reached EOF, returning the populated root.
func Parse(tokens []token.Token) (*ast.TopNode, *perr.Error) {
	p := New(tokens)
	p.tokens.Next() // prime current, matching original_source's parse() priming next()
	for {
		ok, err := p.statement()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if cur, ok := p.tokens.Current(); ok && cur.Type != token.EOF {
		return nil, perr.New(perr.Syntax, cur.Position, "invalid syntax")
	}
	return p.tree, nil
}

func (p *Parser) current() (token.Token, bool) { return p.tokens.Current() }
func (p *Parser) peekNext() (token.Token, bool) { return p.tokens.PeekNext() }
func (p *Parser) peekPrev(n ...int) (token.Token, bool) { return p.tokens.PeekPrev(n...) }

// accept advances past current if it matches one of types, returning
// true on a match.
func (p *Parser) accept(types ...token.Type) bool {
	cur, ok := p.current()
	if !ok || !cur.Is(types...) {
		return false
	}
	p.tokens.Next()
	return true
}

// acceptValue is accept keyed off a token's literal spelling instead of
// its type (used for the "else" keyword, whose type already equals its
// spelling).
func (p *Parser) acceptValue(values ...string) bool {
	cur, ok := p.current()
	if !ok {
		return false
	}
	for _, v := range values {
		if cur.Value == v {
			p.tokens.Next()
			return true
		}
	}
	return false
}

// expect is accept but raises a Syntax error at the previous token's
// position on failure.
func (p *Parser) expect(types ...token.Type) *perr.Error {
	if p.accept(types...) {
		return nil
	}
	prev, _ := p.peekPrev()
	return perr.New(perr.Syntax, prev.Position, "invalid syntax")
}

// statement implements the statement rule: assignment, then an
// if-statement, then a bare expression (num/id/bool/op all fall
// through to the expression rule, which itself reports nil when none of
// those can start a valid expression).
func (p *Parser) statement() (bool, *perr.Error) {
	if assign, ok, err := p.assignment(); err != nil {
		return false, err
	} else if ok {
		p.tree.AddChild(assign)
		return true, nil
	}

	node, err := p.statementBody()
	if err != nil {
		return false, err
	}
	if node == nil {
		return false, nil
	}
	p.tree.AddChild(node)
	return true, nil
}

// statementBody is the non-assignment half of the statement rule,
// shared between top-level statements and block bodies.
func (p *Parser) statementBody() (ast.Node, *perr.Error) {
	if cur, ok := p.current(); ok && cur.Type == token.IF {
		return p.ifStatement()
	}
	return p.expression(nil, 0)
}

// assignment recognizes "id = expr". It returns ok=false (with the
// stream unwound) if current isn't an id followed by assign.
func (p *Parser) assignment() (ast.Node, bool, *perr.Error) {
	idTok, ok := p.current()
	if !ok || idTok.Type != token.ID {
		return nil, false, nil
	}
	save := p.tokens.Index()
	p.tokens.Next()
	if !p.accept(token.ASSIGN) {
		p.tokens.SetIndex(save)
		return nil, false, nil
	}
	expr, err := p.expression(nil, 0)
	if err != nil {
		return nil, false, err
	}
	if expr == nil {
		prev, _ := p.peekPrev()
		return nil, false, perr.New(perr.Syntax, prev.Position, "invalid syntax, missing expression")
	}
	return ast.NewAssignStatement(idTok.Value, expr, idTok.Position), true, nil
}

// block parses a brace-delimited statement list.
func (p *Parser) block() (*ast.BlockNode, *perr.Error) {
	startTok, _ := p.current()
	if err := p.expect(token.BLOCKSTART); err != nil {
		return nil, err
	}
	var statements []ast.Node
	for {
		cur, ok := p.current()
		if ok && cur.Type == token.BLOCKEND {
			break
		}
		stmtAdded, err := p.blockStatement()
		if err != nil {
			return nil, err
		}
		if stmtAdded != nil {
			statements = append(statements, stmtAdded)
			continue
		}
		break
	}
	if err := p.expect(token.BLOCKEND); err != nil {
		return nil, err
	}
	return ast.NewBlockNode(startTok.Position, statements), nil
}

// blockStatement is the statement rule, but it returns the parsed node
// directly instead of attaching it to the top-level tree, since block
// bodies attach to a BlockNode.
func (p *Parser) blockStatement() (ast.Node, *perr.Error) {
	if assign, ok, err := p.assignment(); err != nil {
		return nil, err
	} else if ok {
		return assign, nil
	}
	return p.statementBody()
}

// ifStatement parses "if" cond block ("else" (ifStatement | block))?.
// The leading "if" token must already be current.
func (p *Parser) ifStatement() (*ast.IfStatement, *perr.Error) {
	ifTok, _ := p.current()
	p.tokens.Next() // consume "if"

	cond, err := p.expression(nil, 0)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		prev, _ := p.peekPrev()
		return nil, perr.New(perr.Syntax, prev.Position, "invalid syntax: missing condition")
	}

	then, err := p.block()
	if err != nil {
		return nil, err
	}

	var alternative ast.Node
	if p.acceptValue("else") {
		if cur, ok := p.current(); ok && cur.Type == token.IF {
			nested, err := p.ifStatement()
			if err != nil {
				return nil, err
			}
			alternative = nested
		} else {
			elseBlock, err := p.block()
			if err != nil {
				return nil, err
			}
			alternative = elseBlock
		}
	}

	return ast.NewIfStatement(cond, then, alternative, ifTok.Position), nil
}

// isValueLike reports whether tok could stand as a complete operand
// (used for the unary-fold lookahead and for recognizing atoms in
// primary).
func isValueLike(tok token.Token) bool {
	return tok.Is(token.NUM, token.ID, token.BOOL)
}

func isUnaryOp(tok token.Token) bool {
	return tok.Type == token.OP && ast.IsKnownUnaryOp(tok.Value)
}
