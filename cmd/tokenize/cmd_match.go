package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/parse"
	"github.com/dhamidi/tokenize/primitive"
	"github.com/dhamidi/tokenize/token/table"
)

func newMatchCmd() *cobra.Command {
	var tableFile string

	cmd := &cobra.Command{
		Use:   "match --table <file> [file]",
		Short: "Print every longest match of a literal table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := table.Load(tableFile)
			if err != nil {
				return err
			}
			mapper := primitive.NewTagMapper(entries...)
			log.Debugf("loaded %d literals from %s", mapper.Len(), tableFile)

			data, name, err := readInput(args)
			if err != nil {
				return err
			}

			n := scan(os.Stdout, data, mapper)
			log.Infof("%d matches in %s", n, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&tableFile, "table", "", "YAML or TOML literal table")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

// scan writes one line per match and skips bytes no literal starts with.
func scan(w io.Writer, data []byte, mapper primitive.TagMapper[string]) int {
	matcher := parse.Positioned[string, parse.Unit](mapper)
	c := cursor.New(data)
	n := 0
	for !c.AtEOF() {
		m, ok := matcher.Parse(c).OptRight()
		if !ok || m.Pos.Size() == 0 {
			c.Next()
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Pos, m.Value, data[m.Pos.Begin:m.Pos.End])
		n++
	}
	return n
}
