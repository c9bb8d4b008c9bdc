package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tokenize/primitive"
	"github.com/dhamidi/tokenize/token"
)

const yamlTable = `
marks:
  "==": eq
  "=": assign
  ":=": assign
`

const tomlTable = `
[marks]
"==" = "eq"
"=" = "assign"
":=" = "assign"
`

var wantEntries = []primitive.Entry[string]{
	{Literal: ":=", Value: "assign"},
	{Literal: "=", Value: "assign"},
	{Literal: "==", Value: "eq"},
}

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"marks.yaml", yamlTable},
		{"marks.yml", yamlTable},
		{"marks.toml", tomlTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Load(writeTable(t, tt.name, tt.content))
			require.NoError(t, err)
			require.Equal(t, wantEntries, entries)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeTable(t, "marks.json", "{}"))
	require.ErrorContains(t, err, "unknown extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeTable(t, "bad.toml", "marks = ["))
	require.Error(t, err)

	_, err = Load(writeTable(t, "empty.yaml", "marks:\n  \"\": eq\n"))
	require.ErrorIs(t, err, ErrEmptyLiteral)
}

func TestMarks(t *testing.T) {
	marks, err := Marks(wantEntries)
	require.NoError(t, err)
	require.Equal(t, token.Eq, marks[2].Value)

	m := primitive.NewTagMapper(marks...)
	v, ok := m.Lookup(":=")
	require.True(t, ok)
	require.Equal(t, token.Assign, v)

	_, err = Marks([]primitive.Entry[string]{{Literal: "?", Value: "what"}})
	require.ErrorContains(t, err, "unknown token name")

	_, err = Marks([]primitive.Entry[string]{{Literal: "x", Value: "variable"}})
	require.ErrorContains(t, err, "is not a mark")
}
