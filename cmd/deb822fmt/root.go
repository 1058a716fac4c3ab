package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbrt/deb822repro/internal/config"
	"github.com/mbrt/deb822repro/internal/logging"
	"github.com/mbrt/deb822repro/internal/runner"
)

var (
	flagConfigPath string
	flagQuiet      bool
	flagVerbose    bool
)

// exitError carries a specific process exit code through cobra's error
// return path, so a subcommand can signal "formatting drift found" (1)
// distinctly from "something went wrong" (2) without calling os.Exit
// itself, which would make the command untestable.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "deb822fmt",
		Short:         "Inspect, edit, and validate deb822-format control files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostic trace to stderr")

	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "deb822fmt %s (%s) %s\n", version, commit, date)
			return nil
		},
	}
}

func run() int {
	root := newRootCmd()
	err := root.Execute()
	if err == nil {
		return runner.ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(os.Stderr, "deb822fmt: %v\n", ee.err)
		}
		return ee.code
	}

	fmt.Fprintf(os.Stderr, "deb822fmt: %v\n", err)
	return runner.ExitError
}

func loadConfig() (*config.Config, error) {
	return config.Load(flagConfigPath)
}

func newLogger() (*zap.SugaredLogger, error) {
	return logging.New(flagVerbose)
}
