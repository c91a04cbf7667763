/*
File    : pyllow/internal/stream/stream_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestStream mirrors original_source/test/Stream_test.py's STREAM_ITEMS
// fixture ('A', 'B', 'C').
func newTestStream() *Stream[string] {
	return New([]string{"A", "B", "C"})
}

func TestStream_Current(t *testing.T) {
	s := newTestStream()
	_, ok := s.Current()
	assert.False(t, ok)
	s.Next()
	v, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "A", v)
}

func TestStream_IsNotFinished(t *testing.T) {
	s := newTestStream()
	assert.True(t, s.IsNotFinished())
	s.SetIndex(2)
	assert.False(t, s.IsNotFinished())
}

func TestStream_Next(t *testing.T) {
	s := newTestStream()
	v, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	v, _ = s.Next()
	assert.Equal(t, "B", v)
	v, _ = s.Next()
	assert.Equal(t, "C", v)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestStream_Prev(t *testing.T) {
	s := newTestStream()
	s.SetIndex(3)
	v, ok := s.Prev()
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	v, ok = s.Prev(2)
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	_, ok = s.Prev()
	assert.False(t, ok)
}

func TestStream_PeekNext(t *testing.T) {
	s := newTestStream()
	v, ok := s.PeekNext()
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	s.SetIndex(1)
	v, ok = s.PeekNext()
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	s.SetIndex(2)
	_, ok = s.PeekNext()
	assert.False(t, ok)
}

func TestStream_PeekPrev(t *testing.T) {
	s := newTestStream()
	s.SetIndex(3)
	v, ok := s.PeekPrev()
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	v, ok = s.PeekPrev(2)
	assert.True(t, ok)
	assert.Equal(t, "B", v)
	v, ok = s.PeekPrev(3)
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	_, ok = s.PeekPrev(4)
	assert.False(t, ok)
}

func TestStream_Skip(t *testing.T) {
	s := newTestStream()
	v, ok := s.Skip(1)
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	v, ok = s.Skip(2)
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	v, ok = s.Skip(-1)
	assert.True(t, ok)
	assert.Equal(t, "B", v)
	_, ok = s.Skip(2)
	assert.False(t, ok)
}

func TestStream_PeekAt(t *testing.T) {
	s := newTestStream()
	v, ok := s.PeekAt(1)
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	v, ok = s.PeekAt(3)
	assert.True(t, ok)
	assert.Equal(t, "C", v)
	_, ok = s.PeekAt(4)
	assert.False(t, ok)
}

func TestStream_Items(t *testing.T) {
	s := newTestStream()
	assert.Equal(t, []string{"A", "B", "C"}, s.Items())
}

func TestRawStream_TracksLineAndColumn(t *testing.T) {
	rs := NewRawStream("ab\ncd", "<test>")
	r, _ := rs.Next()
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, rs.Line)
	assert.Equal(t, 0, rs.Column)

	rs.Next() // 'b'
	rs.Next() // '\n'
	r, _ = rs.Next()
	assert.Equal(t, 'c', r)
	assert.Equal(t, 2, rs.Line)
	assert.Equal(t, 0, rs.Column)
}

func TestRawStream_PrevRetreatsLineAndColumn(t *testing.T) {
	rs := NewRawStream("ab\ncd", "<test>")
	for i := 0; i < 5; i++ {
		rs.Next()
	}
	// cursor now on 'd' (line 2, column 1)
	assert.Equal(t, 2, rs.Line)
	assert.Equal(t, 1, rs.Column)

	r, ok := rs.Prev()
	assert.True(t, ok)
	assert.Equal(t, 'c', r)
	assert.Equal(t, 2, rs.Line)
	assert.Equal(t, 0, rs.Column)
}

func TestRawStream_Runes(t *testing.T) {
	rs := NewRawStream("xy", "<test>")
	assert.Equal(t, []rune{'x', 'y'}, rs.Runes())
}
