package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/format"
	"github.com/dhamidi/tokenize/token"
	"github.com/dhamidi/tokenize/token/table"
)

func newLexCmd() *cobra.Command {
	var outputFormat string
	var marksFile string
	var trace bool

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a file or of stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.New(outputFormat, os.Stdout)
			if err != nil {
				return err
			}

			var opts []token.Option
			if marksFile != "" {
				entries, err := table.Load(marksFile)
				if err != nil {
					return err
				}
				marks, err := table.Marks(entries)
				if err != nil {
					return fmt.Errorf("table %s: %w", marksFile, err)
				}
				opts = append(opts, token.WithMarks(marks...))
			}
			if trace {
				opts = append(opts, token.WithTrace())
			}

			data, name, err := readInput(args)
			if err != nil {
				return err
			}

			buf := cursor.New(data)
			tokens, err := token.NewLexer(opts...).All(buf)
			if err != nil {
				var lexErr *token.Error
				if errors.As(err, &lexErr) {
					return fmt.Errorf("%s:%s: %s", name, buf.PositionOf(lexErr.Offset), lexErr.Message)
				}
				return fmt.Errorf("lex %s: %w", name, err)
			}
			log.Infof("lexed %d tokens from %s", len(tokens), name)

			if err := encoder.Encode(tokens); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
	cmd.Flags().StringVar(&marksFile, "marks", "", "YAML or TOML table replacing the default marks")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every component parser at debug level (needs -vv)")

	return cmd
}
