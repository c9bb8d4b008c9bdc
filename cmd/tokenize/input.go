package main

import (
	"fmt"
	"io"
	"os"
)

// readInput returns the contents of the single file argument, or of stdin
// when there is none.
func readInput(args []string) (data []byte, name string, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return data, args[0], nil
}
