package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// processLine returns line unchanged unless it starts with a map field
// declaration, in which case it returns the five-line replacement block.
func processLine(line string) string {
	d, ok := parseMapDeclaration(line)
	if !ok {
		return line
	}
	var b strings.Builder
	if err := writeEntryBlock(&b, d); err != nil {
		panic(err)
	}
	return b.String()
}

// preprocess copies input to output line by line, expanding map field
// declarations as it goes.
func preprocess(output io.Writer, input io.Reader) error {
	r := bufio.NewReader(input)
	w := bufio.NewWriter(output)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if _, werr := w.WriteString(processLine(line)); werr != nil {
				return fmt.Errorf("error writing output: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
