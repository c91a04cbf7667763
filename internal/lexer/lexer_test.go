/*
File    : pyllow/internal/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/pyllow/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []token.Token
}

func expectTypesAndValues(t *testing.T, cases []tokenCase) {
	t.Helper()
	for _, c := range cases {
		toks, err := Lex(c.Input, "<test>")
		require.Nil(t, err, "Lex(%q) returned error: %v", c.Input, err)
		require.Len(t, toks, len(c.Expected), "Lex(%q)", c.Input)
		for i, want := range c.Expected {
			assert.Equal(t, want.Type, toks[i].Type, "token %d of %q", i, c.Input)
			assert.Equal(t, want.Value, toks[i].Value, "token %d of %q", i, c.Input)
		}
	}
}

func TestLex_ArithmeticAndOperators(t *testing.T) {
	expectTypesAndValues(t, []tokenCase{
		{
			Input: "1 + 2 * 3",
			Expected: []token.Token{
				{Type: token.NUM, Value: "1"},
				{Type: token.OP, Value: "+"},
				{Type: token.NUM, Value: "2"},
				{Type: token.OP, Value: "*"},
				{Type: token.NUM, Value: "3"},
				{Type: token.EOF, Value: "EOF"},
			},
		},
		{
			Input: "a <= b == c",
			Expected: []token.Token{
				{Type: token.ID, Value: "a"},
				{Type: token.OP, Value: "<="},
				{Type: token.ID, Value: "b"},
				{Type: token.OP, Value: "=="},
				{Type: token.ID, Value: "c"},
				{Type: token.EOF, Value: "EOF"},
			},
		},
	})
}

func TestLex_KeywordsAndLiterals(t *testing.T) {
	expectTypesAndValues(t, []tokenCase{
		{
			Input: "if true { x = 1 } else { x = 2 }",
			Expected: []token.Token{
				{Type: token.IF, Value: "if"},
				{Type: token.BOOL, Value: "true"},
				{Type: token.BLOCKSTART, Value: "{"},
				{Type: token.ID, Value: "x"},
				{Type: token.ASSIGN, Value: "="},
				{Type: token.NUM, Value: "1"},
				{Type: token.BLOCKEND, Value: "}"},
				{Type: token.ELSE, Value: "else"},
				{Type: token.BLOCKSTART, Value: "{"},
				{Type: token.ID, Value: "x"},
				{Type: token.ASSIGN, Value: "="},
				{Type: token.NUM, Value: "2"},
				{Type: token.BLOCKEND, Value: "}"},
				{Type: token.EOF, Value: "EOF"},
			},
		},
		{
			Input: "null",
			Expected: []token.Token{
				{Type: token.NULL, Value: "null"},
				{Type: token.EOF, Value: "EOF"},
			},
		},
	})
}

func TestLex_FloatVsIntSubtype(t *testing.T) {
	toks, err := Lex("1 2.5 3.", "<test>")
	require.Nil(t, err)
	require.Len(t, toks, 5) // 1, 2.5, 3, ., EOF -- trailing "." is the dot operator, not part of the number
	assert.Equal(t, token.IntSub, toks[0].Subtype)
	assert.Equal(t, token.FloatSub, toks[1].Subtype)
	assert.Equal(t, token.IntSub, toks[2].Subtype)
	assert.Equal(t, token.OP, toks[3].Type)
	assert.Equal(t, ".", toks[3].Value)
}

func TestLex_CommentsAreSkipped(t *testing.T) {
	toks, err := Lex("1 # this is a comment\n+ 2", "<test>")
	require.Nil(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "1", toks[0].Value)
	assert.Equal(t, "+", toks[1].Value)
	assert.Equal(t, "2", toks[2].Value)
	assert.Equal(t, token.EOF, toks[3].Type)
}

func TestLex_UnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := Lex(`"unterminated`, "<test>")
	require.NotNil(t, err)
}

func TestLex_TokenPositionTracksFirstCharacter(t *testing.T) {
	toks, err := Lex("  abc", "<test>")
	require.Nil(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, 1, toks[0].Position.Line)
	assert.Equal(t, 2, toks[0].Position.Column)
}

func TestLex_SingleCharOperatorAtEndOfInput(t *testing.T) {
	// A single-character operator as the very last rune must not be
	// mistaken for a degenerate two-character match and double-consumed.
	toks, err := Lex("1+", "<test>")
	require.Nil(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.OP, toks[1].Type)
	assert.Equal(t, "+", toks[1].Value)
	assert.Equal(t, 1, toks[1].Position.Column)
	assert.Equal(t, token.EOF, toks[2].Type)
}

func TestLex_EmitsTerminalEOF(t *testing.T) {
	toks, err := Lex("", "<test>")
	require.Nil(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}
