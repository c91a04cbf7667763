/*
File    : pyllow/internal/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package token defines the position and token representation shared by
// the lexer, parser, and evaluator. A Position is attached to every token
// and every AST node so that every diagnostic in Pyllow can point at a
// real place in the source.
package token

import "fmt"

// Position is the (line, column, path) triple used uniformly across the
// lexer, parser, and evaluator for diagnostics. Line is 1-indexed, column
// is 0-indexed, matching the RawStream bookkeeping in internal/stream.
type Position struct {
	Line   int
	Column int
	Path   string
}

// String renders a Position as "path:line:col", used when embedding a
// position in an ad-hoc debug string; the structured five-line rendering
// used for user-facing errors lives in internal/perr.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}

// Type is the coarse category of a token. It is a plain string over
// named categories (id, num, op, ...), rather than an int enum, so that
// table-driven lookups in internal/chars can key off it without a
// separate mapping layer.
type Type string

// Token categories. The reserved keywords and the structural symbols
// (assign, separator, brackets) each get their own Type so the parser can
// switch on Type directly; every operator, single- or multi-character,
// shares OP and is told apart by Value.
const (
	ID         Type = "id"
	NUM        Type = "num"
	STR        Type = "str"
	OP         Type = "op"
	ASSIGN     Type = "assign"
	BOOL       Type = "bool"
	IF         Type = "if"
	ELSE       Type = "else"
	NULL       Type = "null"
	SEP        Type = "sep"
	LPAREN     Type = "LPAREN"
	RPAREN     Type = "RPAREN"
	BLOCKSTART Type = "BLOCKSTART"
	BLOCKEND   Type = "BLOCKEND"
	LISTSTART  Type = "LISTSTART"
	LISTEND    Type = "LISTEND"
	EOF        Type = "EOF"
)

// Subtype distinguishes int from float literals within a NUM token.
type Subtype string

const (
	NoSubtype Subtype = ""
	IntSub    Subtype = "int"
	FloatSub  Subtype = "float"
)

// Token is an immutable record produced by the lexer. Equality is
// structural over all four fields; Token is a plain value type so
// comparing two tokens with == is sufficient and no custom Equal method
// is needed.
type Token struct {
	Type     Type
	Value    string
	Subtype  Subtype
	Position Position
}

// String renders a token for debugging, in the same "literal:type"
// texture as akashmaji946-go-mix/lexer/token.go's Token.Print.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s@%s", t.Value, t.Type, t.Position)
}

// Is reports whether the token's type is among the given set — a small
// convenience the parser leans on heavily for _accept/_expect-style checks.
func (t Token) Is(types ...Type) bool {
	for _, ty := range types {
		if t.Type == ty {
			return true
		}
	}
	return false
}
