package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/internal/runner"
)

func newGetCmd() *cobra.Command {
	var paragraph int

	cmd := &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Print one field's value from a control file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1], paragraph)
		},
	}
	cmd.Flags().IntVarP(&paragraph, "paragraph", "p", 0, "index of the paragraph to read from")
	return cmd
}

func runGet(path, field string, paragraph int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: runner.ExitError, err: err}
	}

	doc, err := deb822.Parse(string(src))
	if err != nil {
		return &exitError{code: runner.ExitError, err: err}
	}

	views := doc.Paragraphs()
	if paragraph < 0 || paragraph >= len(views) {
		return &exitError{code: runner.ExitError, err: errors.Errorf("paragraph index %d out of range (file has %d)", paragraph, len(views))}
	}

	value, err := views[paragraph].Get(field)
	if err != nil {
		return &exitError{code: runner.ExitError, err: errors.Wrapf(err, "field %q", field)}
	}
	fmt.Println(value)
	return nil
}
