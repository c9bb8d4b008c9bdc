// Package table loads literal tables for TagMapper from YAML or TOML
// files. A table maps literals to names:
//
//	marks:
//	  "==": eq
//	  "=": assign
package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/tokenize/primitive"
	"github.com/dhamidi/tokenize/token"
)

type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var ErrEmptyLiteral = errors.New("empty literal")

type file struct {
	Marks map[string]string `yaml:"marks" toml:"marks"`
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("table %s: unknown extension %q", path, filepath.Ext(path))
	}
}

// Load reads the table at path.
func Load(path string) ([]primitive.Entry[string], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	entries, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return entries, nil
}

// Decode parses a table and returns its entries sorted by literal.
func Decode(data []byte, format Format) ([]primitive.Entry[string], error) {
	var f file
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("decode table: unsupported format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	entries := make([]primitive.Entry[string], 0, len(f.Marks))
	for literal, name := range f.Marks {
		if literal == "" {
			return nil, fmt.Errorf("mark %q: %w", name, ErrEmptyLiteral)
		}
		entries = append(entries, primitive.Entry[string]{Literal: literal, Value: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Literal < entries[j].Literal
	})
	return entries, nil
}

// Marks resolves the names of entries to token IDs.
func Marks(entries []primitive.Entry[string]) ([]primitive.Entry[token.ID], error) {
	out := make([]primitive.Entry[token.ID], 0, len(entries))
	for _, e := range entries {
		id, ok := token.ByName(e.Value)
		if !ok {
			return nil, fmt.Errorf("mark %q: unknown token name %q", e.Literal, e.Value)
		}
		if !token.IsMark(id) {
			return nil, fmt.Errorf("mark %q: %s is not a mark", e.Literal, id)
		}
		out = append(out, primitive.Entry[token.ID]{Literal: e.Literal, Value: id})
	}
	return out, nil
}
