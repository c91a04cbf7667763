/*
File    : pyllow/internal/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/pyllow/internal/ast"
	"github.com/akashmaji946/pyllow/internal/lexer"
	"github.com/akashmaji946/pyllow/internal/parser"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) ([]value.Value, *ast.TopNode, *perr.Error) {
	t.Helper()
	tokens, lexErr := lexer.Lex(src, "<test>")
	require.Nil(t, lexErr, "lex(%q)", src)
	root, parseErr := parser.Parse(tokens)
	require.Nil(t, parseErr, "parse(%q)", src)
	results, evalErr := Run(root)
	return results, root, evalErr
}

func TestRun_ArithmeticPrecedence(t *testing.T) {
	results, _, err := run(t, "1+2*3")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(7), results[0].Payload())
}

func TestRun_PowerIsRightAssociative(t *testing.T) {
	// 1^2^3 parses as 1^(2^3) = 1^8 = 1; (1^2)^3 would also be 1, so
	// 2^3^2 is checked too: 2^(3^2) = 512, whereas (2^3)^2 = 64.
	results, _, err := run(t, "1^2^3")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(1), results[0].Payload())

	results, _, err = run(t, "2^3^2")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(512), results[0].Payload())
}

func TestRun_ParenthesesOverridePrecedence(t *testing.T) {
	results, _, err := run(t, "(1+2)*3")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(9), results[0].Payload())
}

func TestRun_AssignmentBindsIntoTopScope(t *testing.T) {
	results, root, err := run(t, "a = 5\na")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(5), results[0].Payload())
	assert.Equal(t, int64(5), root.Scope["a"].(*value.Int).Val)
}

func TestRun_IfElseAssignsIntoTopScope(t *testing.T) {
	results, root, err := run(t, "if 1==1 {\na=1\n} else {\na=2\n}")
	require.Nil(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int64(1), root.Scope["a"].(*value.Int).Val)
}

func TestRun_ElseIfChainAssignsIntoTopScope(t *testing.T) {
	results, root, err := run(t, "if 1!=1 {\na=1\n} else if 2>1 {\na=3\n}")
	require.Nil(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int64(3), root.Scope["a"].(*value.Int).Val)
}

func TestRun_DivisionByZeroIsZeroDivisionError(t *testing.T) {
	_, _, err := run(t, "1/0")
	require.NotNil(t, err)
	assert.Equal(t, perr.ZeroDivision, err.Kind)
}

func TestRun_UnboundNameIsNameError(t *testing.T) {
	_, _, err := run(t, "unbound_name")
	require.NotNil(t, err)
	assert.Equal(t, perr.Name, err.Kind)
}

func TestRun_CallExpressionIsNotImplemented(t *testing.T) {
	_, _, err := run(t, "foo(1, 2)")
	require.NotNil(t, err)
	assert.Equal(t, perr.Syntax, err.Kind)
}

func TestRun_UnaryOperators(t *testing.T) {
	results, _, err := run(t, "-5")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(-5), results[0].Payload())

	results, _, err = run(t, "!false")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.True(t, value.Truthy(results[0]))
}

func TestRun_LogicalAndOrShortCircuitValue(t *testing.T) {
	// "&"/"|" return an operand, not a forced Bool.
	results, _, err := run(t, "0 & 9")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, value.IntKind, results[0].Kind())
	assert.Equal(t, float64(0), results[0].Payload())

	results, _, err = run(t, "5 | 9")
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(5), results[0].Payload())
}

func TestRun_DotOperatorHasNoEvaluatorBehavior(t *testing.T) {
	_, _, err := run(t, "1 . 2")
	require.NotNil(t, err)
	assert.Equal(t, perr.Type, err.Kind)
}

func TestRun_ReEvaluationRetainsScope(t *testing.T) {
	// A freshly parsed tree given an earlier root's Scope map sees that
	// root's bindings (the mechanism the REPL depends on).
	tokens, lexErr := lexer.Lex("a = 1", "<test>")
	require.Nil(t, lexErr)
	root, parseErr := parser.Parse(tokens)
	require.Nil(t, parseErr)
	_, err := Run(root)
	require.Nil(t, err)

	tokens2, lexErr2 := lexer.Lex("a", "<test>")
	require.Nil(t, lexErr2)
	root2, parseErr2 := parser.Parse(tokens2)
	require.Nil(t, parseErr2)
	root2.Scope = root.Scope

	results, err := Run(root2)
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, float64(1), results[0].Payload())
}
