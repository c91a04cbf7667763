/*
File    : pyllow/internal/parser/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pyllow/internal/ast"
	"github.com/akashmaji946/pyllow/internal/chars"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/token"
)

// expression implements the precedence-climbing expression rule. nlhs,
// when non-nil, is an already-parsed left operand (used by
// the recursive higher-precedence call below); precedence is the
// minimum binding power an operator needs to extend the current
// expression rather than be left for an enclosing call to consume.
func (p *Parser) expression(nlhs ast.Node, precedence int) (ast.Node, *perr.Error) {
	lhs := nlhs
	if lhs == nil {
		var err *perr.Error
		lhs, err = p.primary()
		if err != nil {
			return nil, err
		}
		if lhs == nil {
			return nil, nil
		}
	}

	for {
		opTok, ok := p.current()
		if !ok || opTok.Type != token.OP || !hasPrecedence(opTok.Value) {
			break
		}
		if chars.Precedence[opTok.Value] < precedence {
			break
		}
		p.tokens.Next() // consume operator

		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, operandlessError(p, opTok)
		}

		for {
			lookahead, ok := p.current()
			if !ok || lookahead.Type != token.OP || !hasPrecedence(lookahead.Value) {
				break
			}
			lp := chars.Precedence[lookahead.Value]
			op := chars.Precedence[opTok.Value]
			if !(lp > op || (lp == op && chars.RightAssociative[opTok.Value])) {
				break
			}
			rhs, err = p.expression(rhs, lp)
			if err != nil {
				return nil, err
			}
		}

		lhs = ast.NewBinaryExpression(opTok.Value, lhs, rhs, opTok.Position)
	}

	return lhs, nil
}

func operandlessError(p *Parser, opTok token.Token) *perr.Error {
	if cur, ok := p.current(); ok && cur.Type == token.EOF {
		if prev, ok2 := p.peekPrev(); ok2 {
			return perr.New(perr.Syntax, prev.Position, "invalid syntax")
		}
	}
	return perr.New(perr.Syntax, opTok.Position, "invalid syntax")
}

func hasPrecedence(op string) bool {
	_, ok := chars.Precedence[op]
	return ok
}

// primary parses one operand: a call, a parenthesized sub-expression, a
// folded unary expression, or a bare literal/identifier atom. It never
// consumes tokens on a non-match, so the caller can fall back to
// treating the current position as "no expression here."
func (p *Parser) primary() (ast.Node, *perr.Error) {
	cur, ok := p.current()
	if !ok || cur.Type == token.EOF {
		return nil, nil
	}

	if cur.Type == token.ID {
		if next, ok2 := p.peekNext(); ok2 && next.Type == token.LPAREN {
			return p.call()
		}
	}

	if cur.Type == token.LPAREN {
		p.tokens.Next()
		inner, err := p.expression(nil, 0)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, perr.New(perr.Syntax, cur.Position, "empty parenthesized expression")
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	if isUnaryOp(cur) {
		prev, hasPrev := p.peekPrev()
		next, hasNext := p.peekNext()
		prevIsValue := hasPrev && (isValueLike(prev) || prev.Type == token.RPAREN)
		nextIsValue := hasNext && isValueLike(next)
		if !prevIsValue && nextIsValue {
			p.tokens.Next() // consume operator
			operandTok, _ := p.current()
			p.tokens.Next() // consume operand atom
			operand := ast.NewMonoExpression(operandTok)
			return ast.NewUnaryExpression(cur.Value, operand, operandTok.Position), nil
		}
		return nil, nil
	}

	if isValueLike(cur) || cur.Type == token.NULL {
		p.tokens.Next()
		return ast.NewMonoExpression(cur), nil
	}

	return nil, nil
}

// call recognizes an identifier immediately followed by "(".
func (p *Parser) call() (ast.Node, *perr.Error) {
	idTok, _ := p.current()
	p.tokens.Next() // consume id
	p.tokens.Next() // consume (
	args, err := p.callArgs()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ast.NewCallExpression(idTok.Value, args, idTok.Position), nil
}

// callArgs parses a comma-separated, possibly empty argument list.
func (p *Parser) callArgs() ([]ast.Node, *perr.Error) {
	var args []ast.Node
	if cur, ok := p.current(); ok && cur.Type == token.RPAREN {
		return args, nil
	}
	for {
		arg, err := p.expression(nil, 0)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			prev, _ := p.peekPrev()
			return nil, perr.New(perr.Syntax, prev.Position, "invalid syntax")
		}
		args = append(args, arg)
		if !p.accept(token.SEP) {
			break
		}
	}
	return args, nil
}
