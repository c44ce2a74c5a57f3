//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// FileAccessError is returned when the input file cannot be opened for reading.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

var (
	// errUsage is returned by run when the command line is malformed.
	errUsage = errors.New("expected exactly one input file")
	errIsDir = errors.New("is a directory")
	// errTerminal is returned when asked to read stdin from a terminal.
	errTerminal = errors.New("expects input on stdin")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s FILE\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Rewrites map fields in FILE as repeated entry messages and prints the result.")
		fmt.Fprintln(flag.CommandLine.Output(), "Use - to read from stdin. FILE may start with -; with more arguments, put -- before it.")
	}

	args, err := commandArgs(flag.CommandLine, os.Args[1:])
	if err == nil {
		err = run(os.Stdout, os.Stdin, args)
	}
	if err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, errTerminal) {
			flag.Usage()
		}
		fmt.Fprintln(os.Stderr, "protobuf-preprocess:", err)
		os.Exit(1)
	}
}

// commandArgs returns the positional arguments. A lone argument other than
// a help flag or -- is always a file name, even when it starts with -.
func commandArgs(flags *flag.FlagSet, args []string) ([]string, error) {
	if len(args) == 1 {
		switch args[0] {
		case "-h", "-help", "--help", "--":
		default:
			return args, nil
		}
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return flags.Args(), nil
}

// run preprocesses the single file named in args and writes it to stdout.
func run(stdout io.Writer, stdin *os.File, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	path := args[0]
	if path == "-" {
		if isInteractive(stdin) {
			return errTerminal
		}
		return preprocess(stdout, stdin)
	}

	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return preprocess(stdout, f)
}

// openInput opens path for reading. Directories are rejected up front.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	fileInfo, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if fileInfo.IsDir() {
		f.Close()
		return nil, &FileAccessError{Path: path, Err: errIsDir}
	}
	return f, nil
}

// Return true if f appears to be an interactive terminal
func isInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
