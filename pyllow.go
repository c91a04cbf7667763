/*
File    : pyllow/pyllow.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package pyllow is the package façade: the single entry point wiring
// lexer -> parser -> evaluator, grounded on
// akashmaji946-go-mix's top-level orchestration of
// parser.New(lexer.New(src)).Parse() then eval.New(tree).Run(). Run and
// RunFile return a plain error rather than go-mix's *eval.Program
// signature verbatim, since *perr.Error already implements error; callers
// that want the five-line diagnostic template type-assert to *perr.Error
// and call Format.
package pyllow

import (
	"github.com/akashmaji946/pyllow/internal/ast"
	"github.com/akashmaji946/pyllow/internal/eval"
	"github.com/akashmaji946/pyllow/internal/lexer"
	"github.com/akashmaji946/pyllow/internal/parser"
	"github.com/akashmaji946/pyllow/internal/source"
	"github.com/akashmaji946/pyllow/internal/value"
)

// Run lexes, parses, and evaluates src (whose diagnostics are attributed
// to path). It returns the populated root (so a REPL can keep reusing
// its scope across calls) and the sequence of values produced by bare
// top-level expressions.
func Run(src, path string) (*ast.TopNode, []value.Value, error) {
	tokens, err := lexer.Lex(src, path)
	if err != nil {
		return nil, nil, err
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	results, err := eval.Run(root)
	if err != nil {
		return root, nil, err
	}
	return root, results, nil
}

// RunFile loads path via internal/source, then runs it. A load failure
// (path does not exist, permission denied, ...) is returned as an
// ordinary Go error, distinct from the *perr.Error the core packages
// produce.
func RunFile(path string) (*ast.TopNode, []value.Value, error) {
	src, _, loadErr := source.Load(path)
	if loadErr != nil {
		return nil, nil, loadErr
	}
	return Run(src, path)
}
