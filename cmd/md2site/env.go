package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ptools/md2site/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config // Loaded once, shared across workers
}

// DefaultEnv returns the production environment. The logger level is
// derived from the quiet/verbose flags.
func DefaultEnv(flags *cliFlags) *Environment {
	level := slog.LevelInfo
	switch {
	case flags.quiet:
		level = slog.LevelError
	case flags.verbose:
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
		Config: config.DefaultConfig(),
	}
}
