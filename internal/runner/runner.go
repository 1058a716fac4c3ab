// Package runner orchestrates deb822fmt's whole-file operations: parse,
// optionally validate, and either report or diff the round-tripped text.
// Field-level operations (get/set/fmt) work against a single named field
// and live directly in their cmd_*.go command, since they need a field
// name argument runner.Options has no use for.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior.
type Options struct {
	Files   []string
	Check   bool
	Diff    bool
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run parses each file (or stdin, if no files are given), re-serializes
// it, and either checks that round-tripping the input is lossless
// (Check), prints a unified diff of any drift (Diff), or just prints the
// round-tripped text. A non-empty diff always indicates a round-trip bug:
// unlike a Makefile formatter, deb822fmt's whole-file pass never changes
// well-formed input.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if len(opts.Files) == 0 {
		return runStdin(opts)
	}

	exitCode := ExitOK
	for _, path := range opts.Files {
		code := runFile(opts, path)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

func runStdin(opts *Options) int {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "deb822fmt: reading stdin: %v\n", err)
		return ExitError
	}
	return process(opts, "<stdin>", string(src))
}

func runFile(opts *Options, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		writeErr(opts.Stderr, "deb822fmt: %v\n", err)
		return ExitError
	}
	if opts.Verbose {
		writeErr(opts.Stderr, "%s\n", path)
	}
	return process(opts, path, string(src))
}

func process(opts *Options, label, input string) int {
	output, err := roundTrip(input)
	if err != nil {
		writeErr(opts.Stderr, "deb822fmt: %s: %v\n", label, err)
		return ExitError
	}

	if opts.Check {
		if input != output {
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s\n", label)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diff.Unified(label, input, output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	writeOut(opts.Stdout, output)
	return ExitOK
}

// roundTrip parses input with no error tolerance and re-serializes it.
// A document with a syntax problem is returned as an error; one that
// parses should always come back unchanged, so drift here means a
// round-trip bug.
func roundTrip(input string) (string, error) {
	doc, err := deb822.Parse(input, deb822.AcceptErrorTokens(false))
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
