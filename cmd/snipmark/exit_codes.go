package main

import (
	"errors"
	"os"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/config"
)

// Exit codes for the snipmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Input not found, unreadable, or output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, snipmark.ErrDocumentNotFound) ||
		errors.Is(err, snipmark.ErrDocumentRead) ||
		errors.Is(err, snipmark.ErrPathTraversal) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrRenderFailed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, ErrNoBaseURL) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, snipmark.ErrUnknownStyle) ||
		errors.Is(err, snipmark.ErrInvalidDocumentName) ||
		errors.Is(err, snipmark.ErrInvalidDocumentsRoot) {
		return ExitUsage
	}

	return ExitGeneral
}
