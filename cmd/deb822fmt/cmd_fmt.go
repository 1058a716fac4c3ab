package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/deb822/list"
	"github.com/mbrt/deb822repro/internal/runner"
)

func newFmtCmd() *cobra.Command {
	var paragraph int
	var interpFlag string

	cmd := &cobra.Command{
		Use:   "fmt <file> <field>",
		Short: "Reformat a list-valued field's value (one item per line when configured)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0], args[1], paragraph, interpFlag)
		},
	}
	cmd.Flags().IntVarP(&paragraph, "paragraph", "p", 0, "index of the paragraph to modify")
	cmd.Flags().StringVar(&interpFlag, "interpretation", "", `"whitespace" or "comma"; defaults to the configured field lists`)
	return cmd
}

func runFmt(path, field string, paragraph int, interpFlag string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: runner.ExitError, err: err}
	}

	cfg, err := loadConfig()
	if err != nil {
		return &exitError{code: runner.ExitError, err: err}
	}

	kind := interpFlag
	if kind == "" {
		kind = cfg.InterpretationFor(field)
		if kind == "" {
			kind = cfg.Reformat.Default
		}
	}
	var interp list.Interpretation
	switch kind {
	case "comma":
		interp = list.CommaSeparated
	case "whitespace":
		interp = list.WhitespaceSeparated
	default:
		return &exitError{code: runner.ExitError, err: errors.Errorf("unknown interpretation %q", kind)}
	}

	doc, err := deb822.Parse(string(src))
	if err != nil {
		return &exitError{code: runner.ExitError, err: err}
	}

	paras := doc.File().Paragraphs()
	if paragraph < 0 || paragraph >= len(paras) {
		return &exitError{code: runner.ExitError, err: errors.Errorf("paragraph index %d out of range (file has %d)", paragraph, len(paras))}
	}

	view := deb822.NewInterpretedView(paras[paragraph], interp)
	tokens, err := view.Get(field)
	if err != nil {
		return &exitError{code: runner.ExitError, err: errors.Wrapf(err, "field %q", field)}
	}

	if cfg.Reformat.OneValuePerLine {
		tokens.ReformatWhenFinished()
	}
	// A stable, always-false comparator forces Commit to regenerate the
	// field's content without actually reordering its values.
	tokens.Sort(func(a, b string) bool { return false })

	if err := tokens.Commit(); err != nil {
		return &exitError{code: runner.ExitError, err: errors.Wrapf(err, "field %q", field)}
	}

	fmt.Print(doc.Text())
	return nil
}
