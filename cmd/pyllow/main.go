/*
File    : pyllow/cmd/pyllow/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command pyllow is the CLI entry point: "pyllow <file.plw>" executes a
// file, "pyllow" alone starts the REPL, and --help/--version print and
// exit. Grounded on akashmaji946-go-mix/main/main.go's mode dispatch,
// package-level banner/version vars, and colored-output texture; its
// "server <port>" TCP-REPL mode is not carried (see DESIGN.md).
package main

import (
	"os"

	"github.com/akashmaji946/pyllow"
	"github.com/akashmaji946/pyllow/internal/perr"
	"github.com/akashmaji946/pyllow/internal/repl"
	"github.com/akashmaji946/pyllow/internal/source"
	"github.com/fatih/color"
)

// VERSION is the interpreter's reported version.
var VERSION = "0.1.0"

// AUTHOR is printed alongside VERSION in --version and the REPL banner.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is the software license named in --version and the REPL banner.
var LICENSE = "MIT"

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "pyllow >>> "

// LINE separates sections of help/banner output.
var LINE = "----------------------------------------"

// BANNER is the ASCII art shown at REPL startup and in --help.
var BANNER = `
  ____        _ _
 |  _ \ _   _| | | _____      __
 | |_) | | | | | |/ _ \ \ /\ / /
 |  __/| |_| | | | (_) \ V  V /
 |_|    \__, |_|_|\___/ \_/\_/
        |___/
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Pyllow - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pyllow                    Start interactive REPL mode")
	yellowColor.Println("  pyllow <path-to-file>     Execute a Pyllow file (.plw)")
	yellowColor.Println("  pyllow --help             Display this help message")
	yellowColor.Println("  pyllow --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  exit, quit                Leave the REPL (Ctrl-D also works)")
}

func showVersion() {
	cyanColor.Println("Pyllow - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes one source file, reporting the first error
// encountered. Wrapped in a panic-recovery net matching go-mix's
// executeFileWithRecovery — a panic inside the core packages shouldn't
// crash the process, just fail the run.
func runFile(path string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[runtime error] %v\n", recovered)
			os.Exit(1)
		}
	}()

	src, warning, loadErr := source.Load(path)
	if loadErr != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read %q: %v\n", path, loadErr)
		os.Exit(1)
	}
	if warning != "" {
		cyanColor.Fprintln(os.Stderr, warning)
	}

	_, results, err := pyllow.Run(src, path)
	if err != nil {
		if pe, ok := err.(*perr.Error); ok {
			redColor.Fprintf(os.Stderr, "%s\n", pe.Format(src))
		} else {
			redColor.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}

	for _, v := range results {
		yellowColor.Fprintf(os.Stdout, "%s\n", v.ToString())
	}
}
