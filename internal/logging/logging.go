// Package logging wires structured logging for the deb822fmt CLI's
// diagnostic output (debug-level messages, shown under the -v flag). The core
// deb822 library never logs; it returns errors and leaves the decision of
// what to do with them to the caller.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger appropriate for CLI use: human-readable console
// output, with debug-level messages enabled only when verbose is true.
func New(verbose bool) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    consoleEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = ""
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return enc
}

// Noop returns a logger that discards everything, for library callers and
// tests that don't want CLI-style diagnostic output.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
