/*
File    : pyllow/internal/chars/chars.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package chars holds the canonical symbol and keyword definitions,
// operator precedence, and the right-associative operator set. It is
// pure data — the lexer and parser look symbol types, keywords and
// precedence up here, the way akashmaji946-go-mix/lexer/token.go
// centralizes its TokenType/KEYWORDS_MAP table. The lexer's
// isSymbolStart keeps its own copy of the symbols' first characters.
package chars

import "github.com/akashmaji946/pyllow/internal/token"

// Symbols lists every single- and multi-character symbol Pyllow
// recognizes, two-character symbols first. The lexer does not read this
// list: it matches symbols through SymbolType (IsKnownSymbol/TypeOf),
// trying a two-character spelling before a one-character one.
var Symbols = []string{
	"<=", ">=", "==", "!=",
	"+", "-", "*", "/", "^",
	"=",
	"<", ">",
	"&", "|", "!",
	".",
	"(", ")", "{", "}", "[", "]",
	",",
}

// SymbolType maps a recognized symbol's literal spelling to its token
// type. Single-character structural symbols (brackets, comma, assign)
// get their own dedicated Type; the remaining operators share token.OP
// and are disambiguated by Token.Value at the parser/evaluator layer.
var SymbolType = map[string]token.Type{
	"+": token.OP, "-": token.OP, "*": token.OP, "/": token.OP, "^": token.OP,
	"==": token.OP, "!=": token.OP, "<": token.OP, ">": token.OP,
	"<=": token.OP, ">=": token.OP, "&": token.OP, "|": token.OP, "!": token.OP,
	".": token.OP,
	"=": token.ASSIGN,
	",": token.SEP,
	"(": token.LPAREN, ")": token.RPAREN,
	"{": token.BLOCKSTART, "}": token.BLOCKEND,
	"[": token.LISTSTART, "]": token.LISTEND,
}

// Keywords maps a reserved word's spelling to its token type. if/else/null
// each emit a token of type equal to their own spelling, while
// true/false both emit the shared BOOL type.
var Keywords = map[string]token.Type{
	"if":    token.IF,
	"else":  token.ELSE,
	"null":  token.NULL,
	"true":  token.BOOL,
	"false": token.BOOL,
}

// Precedence is the binding-power table: higher binds tighter. Operators
// absent from this table (assign, brackets, comma,
// keywords) are never consulted during precedence climbing — the parser
// only indexes Precedence for tokens of type token.OP.
var Precedence = map[string]int{
	"|": 2,
	"&": 3,
	"!": 4,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "==": 7, "!=": 7,
	"+": 10, "-": 10,
	"*": 20, "/": 20,
	"^": 25,
	".": 30,
}

// RightAssociative is the set of operators that associate right-to-left
// during precedence climbing. Every other operator in Precedence is
// left-associative. Only "^" is right-associative, so that 1^2^3
// parses as 1^(2^3).
var RightAssociative = map[string]bool{
	"^": true,
}

// CommentIntroducer begins a line comment that runs to the next newline.
const CommentIntroducer = '#'

// StringDelimiter opens and closes a string literal.
const StringDelimiter = '"'

// Whitespace is the set of characters the lexer skips outside a string
// and outside a pending lexeme.
const Whitespace = " \t\n\r\v"

// IsDigit reports whether b is one of the ASCII decimal digits 0-9.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsWhitespace reports whether b is a member of the Whitespace set.
func IsWhitespace(b byte) bool {
	for i := 0; i < len(Whitespace); i++ {
		if Whitespace[i] == b {
			return true
		}
	}
	return false
}

// IsKnownSymbol reports whether s is a recognized multi- or single-
// character symbol (the ALLCHARSCLEAN membership test from
// original_source/src/chardef.py, restated over the Symbols table).
func IsKnownSymbol(s string) bool {
	_, ok := SymbolType[s]
	return ok
}

// TypeOf looks up the token.Type for a recognized symbol or keyword
// spelling. ok is false if value names neither.
func TypeOf(value string) (token.Type, bool) {
	if t, ok := Keywords[value]; ok {
		return t, true
	}
	if t, ok := SymbolType[value]; ok {
		return t, true
	}
	return "", false
}
