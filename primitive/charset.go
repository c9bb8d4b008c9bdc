package primitive

import (
	"fmt"
	"math/bits"
	"strings"
)

// Charset is an immutable set of byte values.
type Charset struct {
	words [4]uint64
}

func CharsetByte(b byte) Charset {
	var s Charset
	s.words[b>>6] |= 1 << (b & 63)
	return s
}

// CharsetOf returns the set of all bytes in s.
func CharsetOf(s string) Charset {
	var set Charset
	for i := 0; i < len(s); i++ {
		b := s[i]
		set.words[b>>6] |= 1 << (b & 63)
	}
	return set
}

// CharsetRange returns the bytes from first to last inclusive.
func CharsetRange(first, last byte) Charset {
	var set Charset
	for c := int(first); c <= int(last); c++ {
		set.words[c>>6] |= 1 << (c & 63)
	}
	return set
}

func (s Charset) Has(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

func (s Charset) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s Charset) Union(o Charset) Charset {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	return s
}

func (s Charset) Intersect(o Charset) Charset {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
	return s
}

// Difference returns the bytes of s that are not in o.
func (s Charset) Difference(o Charset) Charset {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
	return s
}

func (s Charset) SymmetricDifference(o Charset) Charset {
	for i := range s.words {
		s.words[i] ^= o.words[i]
	}
	return s
}

func (s Charset) Complement() Charset {
	for i := range s.words {
		s.words[i] = ^s.words[i]
	}
	return s
}

// String renders the set as {'a','b',\n,0x00}.
func (s Charset) String() string {
	switch s.Len() {
	case 0:
		return "{}"
	case 256:
		return "{all}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for c := 0; c < 256; c++ {
		if !s.Has(byte(c)) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(escapeByte(byte(c)))
	}
	sb.WriteByte('}')
	return sb.String()
}

func escapeByte(c byte) string {
	switch c {
	case ' ':
		return "' '"
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\v':
		return `\v`
	}
	if c > ' ' && c < 0x7f {
		return fmt.Sprintf("'%c'", c)
	}
	return fmt.Sprintf("0x%02x", c)
}
