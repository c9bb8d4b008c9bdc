// Package cursor provides the seekable byte sources parsers read from.
package cursor

import (
	"fmt"
	"io"
)

// Cursor is a seekable source of bytes. Parsers only ever seek back to
// offsets they have observed through Offset.
type Cursor interface {
	// Peek returns the next byte without consuming it. ok is false at the
	// end of input.
	Peek() (b byte, ok bool)
	// Next consumes and returns the next byte.
	Next() (b byte, ok bool)
	Offset() int
	Seek(offset int)
}

// Position represents a location in the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Buffer is a Cursor over an in-memory byte slice.
type Buffer struct {
	input []byte
	pos   int
}

func New(input []byte) *Buffer {
	return &Buffer{input: input}
}

func FromString(s string) *Buffer {
	return New([]byte(s))
}

func (b *Buffer) Peek() (byte, bool) {
	if b.pos >= len(b.input) {
		return 0, false
	}
	return b.input[b.pos], true
}

func (b *Buffer) Next() (byte, bool) {
	if b.pos >= len(b.input) {
		return 0, false
	}
	ch := b.input[b.pos]
	b.pos++
	return ch, true
}

func (b *Buffer) Offset() int { return b.pos }

// Seek moves the read offset. Offsets outside the input are a programming
// error and panic.
func (b *Buffer) Seek(offset int) {
	if offset < 0 || offset > len(b.input) {
		panic(fmt.Sprintf("cursor: seek to %d outside [0,%d]", offset, len(b.input)))
	}
	b.pos = offset
}

func (b *Buffer) Len() int { return len(b.input) }

// Remaining returns the unread part of the input.
func (b *Buffer) Remaining() []byte { return b.input[b.pos:] }

// AtEOF reports whether all input has been consumed.
func (b *Buffer) AtEOF() bool { return b.pos >= len(b.input) }

// Position returns the line and column of the current offset.
func (b *Buffer) Position() Position {
	return b.PositionOf(b.pos)
}

// PositionOf returns the 1-based line and column of offset.
func (b *Buffer) PositionOf(offset int) Position {
	if offset > len(b.input) {
		offset = len(b.input)
	}
	p := Position{Offset: offset, Line: 1, Column: 1}
	for _, ch := range b.input[:offset] {
		if ch == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// Seeker adapts an io.ReadSeeker to the Cursor contract. The first read or
// seek error is kept in Err and the source is treated as exhausted from
// then on.
type Seeker struct {
	rs   io.ReadSeeker
	pos  int
	head byte
	full bool
	err  error
	buf  [1]byte
}

// FromReadSeeker returns a cursor reading rs from its current offset.
func FromReadSeeker(rs io.ReadSeeker) *Seeker {
	s := &Seeker{rs: rs}
	off, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		s.err = fmt.Errorf("locate start: %w", err)
		return s
	}
	s.pos = int(off)
	return s
}

func (s *Seeker) fill() bool {
	if s.full {
		return true
	}
	if s.err != nil {
		return false
	}
	for {
		n, err := s.rs.Read(s.buf[:])
		if n == 1 {
			s.head = s.buf[0]
			s.full = true
			return true
		}
		if err == nil {
			continue
		}
		if err != io.EOF {
			s.err = fmt.Errorf("read at %d: %w", s.pos, err)
		}
		return false
	}
}

func (s *Seeker) Peek() (byte, bool) {
	if !s.fill() {
		return 0, false
	}
	return s.head, true
}

func (s *Seeker) Next() (byte, bool) {
	if !s.fill() {
		return 0, false
	}
	s.full = false
	s.pos++
	return s.head, true
}

func (s *Seeker) Offset() int { return s.pos }

func (s *Seeker) Seek(offset int) {
	if offset == s.pos {
		return
	}
	if _, err := s.rs.Seek(int64(offset), io.SeekStart); err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("seek to %d: %w", offset, err)
		}
		return
	}
	s.pos = offset
	s.full = false
}

// Err returns the first I/O error encountered, if any.
func (s *Seeker) Err() error { return s.err }
