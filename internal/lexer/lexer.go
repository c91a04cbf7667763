/*
File    : pyllow/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns Pyllow source text into a flat token sequence.
// Grounded on the struct shape and doc-comment texture of
// akashmaji946-go-mix/lexer/lexer.go and lexer_utils.go, but table-driven
// off internal/chars rather than a hard-coded switch, and carrying all
// scan state as local fields on a per-call Lexer value rather than
// package-level state.
package lexer

import (
	"strings"

	"github.com/akashmaji946/pyllow/internal/chars"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/stream"
	"github.com/akashmaji946/pyllow/internal/token"
)

// Lexer holds the scan state for a single Lex call. A Lexer is not
// reused across calls — Lex constructs a fresh one every time, so there
// is nothing to "clear" between runs.
type Lexer struct {
	src       *stream.RawStream
	path      string
	inComment bool
}

// Lex tokenizes raw, attributing path to every emitted token's position,
// and returns the full token sequence terminated by a single EOF token.
// The only error a lexer can raise is an unterminated string literal
// (Syntax).
func Lex(raw, path string) ([]token.Token, *perr.Error) {
	l := &Lexer{src: stream.NewRawStream(raw, path), path: path}
	return l.run()
}

func (l *Lexer) run() ([]token.Token, *perr.Error) {
	var tokens []token.Token

	for {
		c, ok := l.src.PeekNext()
		if !ok {
			break
		}

		if c == '\n' {
			l.inComment = false
		}

		if l.inComment {
			l.src.Next()
			continue
		}

		if isAsciiWhitespaceRune(c) {
			l.src.Next()
			continue
		}

		switch {
		case c == chars.CommentIntroducer:
			l.src.Next()
			l.inComment = true

		case c == chars.StringDelimiter:
			tok, err := l.readString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isDigitRune(c):
			tokens = append(tokens, l.readNumber())

		case isSymbolStart(c):
			if sym, matched := l.readSymbol(); matched {
				tokens = append(tokens, sym)
			} else {
				l.src.Next()
			}

		default:
			tokens = append(tokens, l.readIdentifier())
		}
	}

	eofPos := l.src.Position(0, 0)
	eofPos.Column++
	tokens = append(tokens, token.Token{Type: token.EOF, Value: "EOF", Position: eofPos})
	return tokens, nil
}

func isAsciiWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v'
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSymbolStart reports whether r can begin one of the symbols in
// internal/chars.Symbols.
func isSymbolStart(r rune) bool {
	if r >= 128 {
		return false
	}
	return strings.ContainsRune("+-*/^=<>&|!.(){}[],", r)
}

// readSymbol greedily matches the longest known symbol starting at the
// cursor (">=" before ">", "!=" before "!", and so on), emitting it with
// its canonical type from internal/chars. The first rune of the match is
// consumed before the position is read so Position reflects the symbol's
// own location rather than the previously consumed character's.
func (l *Lexer) readSymbol() (token.Token, bool) {
	one, _ := l.src.PeekNext()
	oneStr := string(one)

	// Only attempt the two-character match when a genuine second rune
	// follows; testing IsKnownSymbol against oneStr padded with nothing
	// would let a single-char operator at the very end of input match
	// its own one-char spelling here and double-consume below.
	if twoRune, ok := l.src.PeekAt(2); ok {
		two := oneStr + string(twoRune)
		if chars.IsKnownSymbol(two) {
			l.src.Next()
			pos := l.src.Position(0, 0)
			l.src.Next()
			typ, _ := chars.TypeOf(two)
			return token.Token{Type: typ, Value: two, Position: pos}, true
		}
	}

	if chars.IsKnownSymbol(oneStr) {
		l.src.Next()
		pos := l.src.Position(0, 0)
		typ, _ := chars.TypeOf(oneStr)
		return token.Token{Type: typ, Value: oneStr, Position: pos}, true
	}
	return token.Token{}, false
}

// readIdentifier consumes a maximal run of characters that are neither
// whitespace nor the start of a known symbol, then classifies the run as
// a keyword, a boolean literal, or a plain identifier: reserved keywords
// and true/false are recognized once the lexeme boundary is reached.
func (l *Lexer) readIdentifier() token.Token {
	var sb strings.Builder
	first, _ := l.src.Next()
	sb.WriteRune(first)
	pos := l.src.Position(0, 0)
	for {
		c, ok := l.src.PeekNext()
		if !ok || isAsciiWhitespaceRune(c) || isSymbolStart(c) || c == chars.CommentIntroducer || c == chars.StringDelimiter {
			break
		}
		sb.WriteRune(c)
		l.src.Next()
	}
	lexeme := sb.String()
	if typ, ok := chars.Keywords[lexeme]; ok {
		return token.Token{Type: typ, Value: lexeme, Position: pos}
	}
	return token.Token{Type: token.ID, Value: lexeme, Position: pos}
}

// readNumber consumes digits with at most one decimal point and emits a
// num token with the int/float subtype.
func (l *Lexer) readNumber() token.Token {
	var sb strings.Builder
	first, _ := l.src.Next()
	sb.WriteRune(first)
	pos := l.src.Position(0, 0)
	sawDot := false
	for {
		c, ok := l.src.PeekNext()
		if !ok {
			break
		}
		if isDigitRune(c) {
			sb.WriteRune(c)
			l.src.Next()
			continue
		}
		if c == '.' && !sawDot {
			// Only consume the dot if it is followed by another digit;
			// otherwise it belongs to whatever comes next (e.g. a
			// standalone "." operator) rather than being swallowed as a
			// trailing decimal point.
			if next, ok := l.src.PeekAt(2); ok && isDigitRune(next) {
				sawDot = true
				sb.WriteRune(c)
				l.src.Next()
				continue
			}
		}
		break
	}
	subtype := token.IntSub
	if sawDot {
		subtype = token.FloatSub
	}
	return token.Token{Type: token.NUM, Value: sb.String(), Subtype: subtype, Position: pos}
}

// readString consumes a double-quoted string literal with no escape
// processing, returning a Syntax error if the closing quote is never
// found.
func (l *Lexer) readString() (token.Token, *perr.Error) {
	l.src.Next() // consume opening quote
	pos := l.src.Position(0, 0)
	var sb strings.Builder
	for {
		c, ok := l.src.PeekNext()
		if !ok {
			return token.Token{}, perr.New(perr.Syntax, pos, "unterminated string literal")
		}
		if c == chars.StringDelimiter {
			l.src.Next()
			break
		}
		sb.WriteRune(c)
		l.src.Next()
	}
	return token.Token{Type: token.STR, Value: sb.String(), Position: pos}, nil
}
