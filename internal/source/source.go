/*
File    : pyllow/internal/source/source.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package source loads a Pyllow program from disk. It is narrowed from
// akashmaji946-go-mix/file/file.go's os.ReadFile-based reading path; the
// in-language I/O builtins that file also implements (fopen, fread,
// fwrite, fclose, fseek, ftell) are not carried — Pyllow exposes no file
// I/O operations reachable from inside a running program.
package source

import (
	"os"
	"path/filepath"
)

// Extension is the conventional Pyllow source file suffix.
const Extension = ".plw"

// Load reads the file at path and returns its contents. Matching
// go-mix/file/file.go's permissiveness, a non-.plw extension is not an
// error: Load returns a warning string (empty when the extension already
// matches) alongside the source text, leaving the caller to decide
// whether to surface it.
func Load(path string) (src string, warning string, err error) {
	if ext := filepath.Ext(path); ext != Extension {
		warning = "warning: " + path + " does not have the " + Extension + " extension"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", warning, err
	}
	return string(raw), warning, nil
}
