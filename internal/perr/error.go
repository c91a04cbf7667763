/*
File    : pyllow/internal/perr/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package perr implements Pyllow's structured error family. Where the
// original Python raises a PyllowException subclass, Go has no
// exceptions, so every fallible core operation (lexer.Lex, parser.Parse,
// eval.Run, and value coercion/arithmetic) returns a *perr.Error instead.
package perr

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/pyllow/internal/token"
)

// Kind is one of the five error categories Pyllow distinguishes.
type Kind int

const (
	Syntax Kind = iota
	Name
	Type
	Value
	ZeroDivision
)

// String renders a Kind the way the formatted error template needs it —
// matching the Python class names (PyllowSyntaxError, etc.) minus the
// "Pyllow" prefix, since the template already reads "<Kind> occurred".
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "SyntaxError"
	case Name:
		return "NameError"
	case Type:
		return "TypeError"
	case Value:
		return "ValueError"
	case ZeroDivision:
		return "ZeroDivisionError"
	default:
		return "Error"
	}
}

// Error is Pyllow's single exception family, carrying a message and a
// position. It implements the standard error interface so it composes
// with ordinary Go error handling.
type Error struct {
	Kind     Kind
	Message  string
	Position token.Position
}

// New constructs an *Error of the given kind.
func New(kind Kind, position token.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Position: position}
}

// Error implements the error interface with a single-line summary; use
// Format for the full five-line diagnostic template.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Position)
}

// Format renders the five-line diagnostic template:
//
//	<path>
//	<ErrorKind> occurred on line <line>
//	<source line text>
//	<col spaces>^
//	<message>
//
// src is the full source text the error was raised against, used to
// recover the offending line for display.
func (e *Error) Format(src string) string {
	lines := strings.Split(src, "\n")
	lineText := ""
	if e.Position.Line >= 1 && e.Position.Line <= len(lines) {
		lineText = lines[e.Position.Line-1]
	}
	col := e.Position.Column
	if col < 0 {
		col = 0
	}
	caret := strings.Repeat(" ", col) + "^"
	return fmt.Sprintf("%s\n%s occurred on line %d\n%s\n%s\n%s",
		e.Position.Path, e.Kind, e.Position.Line, lineText, caret, e.Message)
}
