package main

import (
	"github.com/spf13/cobra"

	"github.com/mbrt/deb822repro/internal/runner"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Exit non-zero if any file fails to parse or round-trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return &exitError{code: runner.ExitError, err: err}
			}
			defer func() { _ = log.Sync() }()
			log.Debugf("checking %d file(s)", len(args))

			code := runner.Run(&runner.Options{
				Files:   args,
				Check:   true,
				Quiet:   flagQuiet,
				Verbose: flagVerbose,
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
			})
			if code != runner.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
}
