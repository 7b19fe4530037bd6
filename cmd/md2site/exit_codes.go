package main

import (
	"errors"
	"os"

	md2site "github.com/ptools/md2site"
	"github.com/ptools/md2site/internal/config"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitList    = 4 // Article list update errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// List update errors (exit 4)
	if errors.Is(err, md2site.ErrNoArticles) ||
		errors.Is(err, md2site.ErrPlaceholderNotFound) ||
		errors.Is(err, md2site.ErrListParse) ||
		errors.Is(err, md2site.ErrCardFragments) {
		return ExitList
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrReadList) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWriteList) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrListNotHTML) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
