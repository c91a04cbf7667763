/*
File    : pyllow/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the Read-Eval-Print Loop for Pyllow. The REPL
// lets a user enter Pyllow code line by line, see each line's results
// immediately, and navigate history with the arrow keys. Grounded on
// akashmaji946-go-mix/repl/repl.go, which this package follows field for
// field (Banner/Version/Author/Line/License/Prompt, the same readline +
// color setup, the same PrintBannerInfo layout); the one behavioral
// change is scope persistence: each line is lexed and parsed into its
// own fresh *ast.TopNode, but that node's Scope map is replaced with one
// map kept alive for the whole session, so a name assigned on one line
// is visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/pyllow/internal/eval"
	"github.com/akashmaji946/pyllow/internal/lexer"
	"github.com/akashmaji946/pyllow/internal/parser"
	"github.com/akashmaji946/pyllow/internal/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching go-mix/repl/repl.go's
// palette: blue for separators, green for the banner, yellow for
// version/info and results, red for errors, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl from its display fields.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner, version/author/license line,
// and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Pyllow!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or 'quit' to leave, or press Ctrl-D")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits, EOF is reached, or
// readline itself fails to start.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	scope := make(map[string]value.Value)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, scope)
	}
}

// executeWithRecovery lexes, parses, and evaluates one line against the
// session's persistent scope, recovering from any panic so a single bad
// line can't take down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, scope map[string]value.Value) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	tokens, lexErr := lexer.Lex(line, "<repl>")
	if lexErr != nil {
		redColor.Fprintf(writer, "%s\n", lexErr.Format(line))
		return
	}

	root, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		redColor.Fprintf(writer, "%s\n", parseErr.Format(line))
		return
	}

	root.Scope = scope // reattach the session's persistent frame

	results, evalErr := eval.Run(root)
	if evalErr != nil {
		redColor.Fprintf(writer, "%s\n", evalErr.Format(line))
		return
	}

	for _, v := range results {
		yellowColor.Fprintf(writer, "%s\n", v.ToString())
	}
}
