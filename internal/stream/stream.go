/*
File    : pyllow/internal/stream/stream.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package stream implements a generic bidirectional cursor, plus the
// RawStream specialization the lexer scans source runes with. Grounded
// on the cursor bookkeeping in
// akashmaji946-go-mix/lexer/lexer.go (Position/Current/Advance/Peek) and
// on original_source/src/Stream.py for the exact operation set.
package stream

// Stream is a bidirectional cursor over an indexed, in-memory sequence.
// The zero value is not usable; construct with New. The cursor starts
// "before the first item" (index -1), matching original_source's
// Stream.__init__ (self.i = -1), so that a stream's first Next() call
// lands on index 0.
type Stream[T any] struct {
	items []T
	i     int
}

// New returns a Stream positioned before the first item of items.
func New[T any](items []T) *Stream[T] {
	return &Stream[T]{items: items, i: -1}
}

func (s *Stream[T]) at(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

// Current returns the item at the cursor, or ok=false before the first
// Next() call or once the cursor has run past the end.
func (s *Stream[T]) Current() (T, bool) {
	return s.at(s.i)
}

// Next advances the cursor by one and returns the new current item.
func (s *Stream[T]) Next() (T, bool) {
	s.i++
	return s.at(s.i)
}

// Prev retreats the cursor by n (default 1 when called with no
// arguments) and returns the new current item.
func (s *Stream[T]) Prev(n ...int) (T, bool) {
	step := 1
	if len(n) > 0 {
		step = n[0]
	}
	s.i -= step
	return s.at(s.i)
}

// PeekNext observes the item one past the cursor without moving it.
func (s *Stream[T]) PeekNext() (T, bool) {
	return s.at(s.i + 1)
}

// PeekPrev observes the item n back from the cursor (default 1) without
// moving it.
func (s *Stream[T]) PeekPrev(n ...int) (T, bool) {
	step := 1
	if len(n) > 0 {
		step = n[0]
	}
	return s.at(s.i - step)
}

// PeekAt observes the item n steps past the cursor (PeekAt(1) is
// PeekNext) without moving it.
func (s *Stream[T]) PeekAt(n int) (T, bool) {
	return s.at(s.i + n)
}

// Items returns the underlying sequence. Callers must not mutate it.
func (s *Stream[T]) Items() []T {
	return s.items
}

// Skip advances the cursor by n steps (n may be negative) and returns
// the new current item. RawStream does not override Skip, so on a
// RawStream it also accepts a negative n and moves the cursor without
// updating Line/Column.
func (s *Stream[T]) Skip(n int) (T, bool) {
	s.i += n
	return s.at(s.i)
}

// IsNotFinished reports whether the cursor has not yet passed the last
// index of the underlying sequence.
func (s *Stream[T]) IsNotFinished() bool {
	return s.i < len(s.items)-1
}

// Index returns the cursor's raw position; the parser pairs it with
// SetIndex to save and restore a position when backtracking.
func (s *Stream[T]) Index() int {
	return s.i
}

// SetIndex repositions the cursor directly; used by the parser to save
// and restore a position when backtracking across a failed sub-parse.
func (s *Stream[T]) SetIndex(i int) {
	s.i = i
}

// Len reports the number of items in the underlying sequence.
func (s *Stream[T]) Len() int {
	return len(s.items)
}
