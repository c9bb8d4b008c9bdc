package primitive

import (
	"sort"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
	"github.com/dhamidi/tokenize/parse"
)

// Entry maps a literal to the value a TagMapper returns for it.
type Entry[T any] struct {
	Literal string
	Value   T
}

type trieNode[T any] struct {
	terminal bool
	value    T
	next     [256]*trieNode[T]
}

// TagMapper matches the longest literal of a table and returns the value
// mapped to it. The table is built once; copies of a TagMapper share it.
// The zero value is an empty table that matches nothing.
type TagMapper[T any] struct {
	root *trieNode[T]
	size int
}

// NewTagMapper builds a mapper from entries. A literal listed twice keeps
// the last value.
func NewTagMapper[T any](entries ...Entry[T]) TagMapper[T] {
	m := TagMapper[T]{root: &trieNode[T]{}}
	for _, e := range entries {
		m.insert(e.Literal, e.Value)
	}
	return m
}

// MapperFromMap builds a mapper from a Go map.
func MapperFromMap[T any](table map[string]T) TagMapper[T] {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry[T], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry[T]{Literal: k, Value: table[k]})
	}
	return NewTagMapper(entries...)
}

// TagList matches the longest of literals and returns it.
func TagList(literals ...string) TagMapper[string] {
	entries := make([]Entry[string], len(literals))
	for i, l := range literals {
		entries[i] = Entry[string]{Literal: l, Value: l}
	}
	return NewTagMapper(entries...)
}

func (m *TagMapper[T]) insert(literal string, value T) {
	n := m.root
	for i := 0; i < len(literal); i++ {
		b := literal[i]
		if n.next[b] == nil {
			n.next[b] = &trieNode[T]{}
		}
		n = n.next[b]
	}
	if !n.terminal {
		m.size++
	}
	n.terminal = true
	n.value = value
}

// Parse walks the table one byte at a time and returns the value of the
// last terminal literal seen, leaving the cursor right after it.
func (m TagMapper[T]) Parse(c cursor.Cursor) either.Either[T, parse.Unit] {
	start := c.Offset()
	rollback := start
	matched := false
	var value T

	n := m.root
	if n == nil {
		return either.MakeLeft[T](parse.Unit{})
	}
	if n.terminal {
		matched, value = true, n.value
	}
	for {
		b, ok := c.Peek()
		if !ok || n.next[b] == nil {
			break
		}
		c.Next()
		n = n.next[b]
		if n.terminal {
			matched, value = true, n.value
			rollback = c.Offset()
		}
	}

	if !matched {
		c.Seek(start)
		return either.MakeLeft[T](parse.Unit{})
	}
	c.Seek(rollback)
	return either.MakeRight[T, parse.Unit](value)
}

// Len returns the number of literals in the table.
func (m TagMapper[T]) Len() int { return m.size }

// Lookup returns the value mapped to exactly literal.
func (m TagMapper[T]) Lookup(literal string) (T, bool) {
	n := m.root
	for i := 0; i < len(literal) && n != nil; i++ {
		n = n.next[literal[i]]
	}
	if n == nil || !n.terminal {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Literals returns the table's literals in byte order.
func (m TagMapper[T]) Literals() []string {
	var out []string
	if m.root == nil {
		return out
	}
	var walk func(n *trieNode[T], prefix []byte)
	walk = func(n *trieNode[T], prefix []byte) {
		if n.terminal {
			out = append(out, string(prefix))
		}
		for b, child := range n.next {
			if child != nil {
				walk(child, append(prefix, byte(b)))
			}
		}
	}
	walk(m.root, nil)
	return out
}
