package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/internal/runner"
)

func newSetCmd() *cobra.Command {
	var paragraph int

	cmd := &cobra.Command{
		Use:   "set <file> <field> <value>",
		Short: "Rewrite one field's value in place, preserving everything else",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2], paragraph)
		},
	}
	cmd.Flags().IntVarP(&paragraph, "paragraph", "p", 0, "index of the paragraph to modify")
	return cmd
}

func runSet(path, field, value string, paragraph int) error {
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

	if err := views[paragraph].Set(field, value); err != nil {
		return &exitError{code: runner.ExitError, err: errors.Wrapf(err, "field %q", field)}
	}

	if err := os.WriteFile(path, []byte(doc.Text()), 0o644); err != nil {
		return &exitError{code: runner.ExitError, err: errors.Wrapf(err, "writing %s", path)}
	}
	return nil
}
