package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/primitive"
)

func newIntCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "int <literal>...",
		Short: "Parse integer literals with an optional 0b, 0q, 0o, 0d or 0x prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var read func(string) (string, error)
			switch bits {
			case 8:
				read = readInteger[int8]
			case 16:
				read = readInteger[int16]
			case 32:
				read = readInteger[int32]
			case 64:
				read = readInteger[int64]
			default:
				return fmt.Errorf("unsupported width: %d", bits)
			}

			failures := 0
			for _, literal := range args {
				value, err := read(literal)
				if err != nil {
					failures++
					fmt.Fprintf(os.Stdout, "%s\terror: %v\n", literal, err)
					continue
				}
				fmt.Fprintf(os.Stdout, "%s\t%s\n", literal, value)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d literals failed", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 64, "integer width (8, 16, 32, 64)")

	return cmd
}

// readInteger parses the whole of literal as a T.
func readInteger[T constraints.Signed](literal string) (string, error) {
	c := cursor.FromString(literal)
	r := primitive.Integer[T]().Parse(c)
	if nerr, failed := r.OptLeft(); failed {
		return "", nerr
	}
	if !c.AtEOF() {
		return "", fmt.Errorf("trailing input at offset %d", c.Offset())
	}
	return fmt.Sprint(r.GetRight()), nil
}
