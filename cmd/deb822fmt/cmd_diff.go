package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mbrt/deb822repro/internal/runner"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [files...]",
		Short: "Print a unified diff between a file and its round-tripped text",
		Long: "diff parses each file and re-serializes it, printing a unified diff\n" +
			"of any drift. A well-formed file should always produce an empty diff;\n" +
			"a non-empty one indicates a round-trip bug. A file that fails to parse\n" +
			"is reported as an error instead of a diff.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var buf strings.Builder
			code := runner.Run(&runner.Options{
				Files:   args,
				Diff:    true,
				Quiet:   flagQuiet,
				Verbose: flagVerbose,
				Stdout:  &buf,
				Stderr:  cmd.ErrOrStderr(),
			})
			writeDiff(out, buf.String())
			if code != runner.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
}

// writeDiff prints a unified diff, colorizing +/- lines when w is a
// terminal. Piped output (e.g. to a file or another tool) stays plain, the
// usual convention fatih/color itself follows via color.NoColor.
func writeDiff(w io.Writer, d string) {
	if d == "" {
		return
	}
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(w, d)
		return
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)

	for _, line := range strings.SplitAfter(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			fmt.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			add.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			del.Fprint(w, line)
		case strings.HasPrefix(line, "@@"):
			hunk.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
