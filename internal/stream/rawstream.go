/*
File    : pyllow/internal/stream/rawstream.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stream

import "github.com/akashmaji946/pyllow/internal/token"

// RawStream specializes Stream[rune] for scanning source text: it tracks
// a 1-based line and 0-based column, corrected going forward by Next and
// going backward by Prev, exactly as original_source/src/Lexer.py's
// RawStream does. The newline rune is configurable (default '\n').
type RawStream struct {
	*Stream[rune]
	Line    int
	Column  int
	Path    string
	Newline rune
}

// NewRawStream returns a RawStream over src's runes, using '\n' as the
// newline character.
func NewRawStream(src, path string) *RawStream {
	return NewRawStreamWithNewline(src, path, '\n')
}

// NewRawStreamWithNewline is NewRawStream with an explicit newline rune.
func NewRawStreamWithNewline(src, path string, newline rune) *RawStream {
	return &RawStream{
		Stream:  New([]rune(src)),
		Line:    1,
		Column:  -1,
		Path:    path,
		Newline: newline,
	}
}

// Next advances the cursor, updating Line/Column. Column bookkeeping is
// resolved against the character being left behind, mirroring
// original_source/src/Lexer.py's RawStream.next (column increments and
// the newline check happen before the underlying cursor moves).
func (r *RawStream) Next() (rune, bool) {
	if cur, ok := r.Stream.Current(); ok {
		r.Column++
		if cur == r.Newline {
			r.Line++
			r.Column = 0
		}
	} else {
		r.Column++
	}
	return r.Stream.Next()
}

// Prev retreats the cursor by n (default 1), updating Line/Column to
// match, one step at a time so multi-step moves stay consistent with
// single-step moves.
func (r *RawStream) Prev(n ...int) (rune, bool) {
	step := 1
	if len(n) > 0 {
		step = n[0]
	}
	var cur rune
	var ok bool
	for i := 0; i < step; i++ {
		cur, ok = r.Stream.Prev()
		r.Column--
		if ok && cur == r.Newline {
			r.Line--
			r.Column = 0
		}
	}
	return cur, ok
}

// Runes returns the full source text backing this stream.
func (r *RawStream) Runes() []rune {
	return r.Stream.Items()
}

// Position returns the (line, column, path) triple at the cursor's
// current location, optionally backtracked by the given number of lines
// and columns, without moving the stream. The lexer calls it with (0, 0)
// to stamp each token's position.
func (r *RawStream) Position(backtrackLine, backtrackColumn int) token.Position {
	return token.Position{
		Line:   r.Line - backtrackLine,
		Column: r.Column - backtrackColumn,
		Path:   r.Path,
	}
}
