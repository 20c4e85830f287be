package main

import (
	"errors"
	"os"

	idx2docx "github.com/alnah/go-idx2docx"
	"github.com/alnah/go-idx2docx/internal/config"
)

// Exit codes for idx2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, preconditions, or row data
	ExitIO      = 3 // Unreadable input, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrPermission) ||
		errors.Is(err, idx2docx.ErrReadInput) ||
		errors.Is(err, idx2docx.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/precondition/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrBadExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, idx2docx.ErrInputNotFound) ||
		errors.Is(err, idx2docx.ErrEmptyInput) ||
		errors.Is(err, idx2docx.ErrOutputExists) ||
		errors.Is(err, idx2docx.ErrMalformedRow) ||
		errors.Is(err, idx2docx.ErrInvalidMargin) ||
		errors.Is(err, idx2docx.ErrInvalidColumns) ||
		errors.Is(err, idx2docx.ErrInvalidFontSize) ||
		errors.Is(err, idx2docx.ErrInvalidColor) ||
		errors.Is(err, idx2docx.ErrInvalidIndent) ||
		errors.Is(err, idx2docx.ErrEmptyFontName) {
		return ExitUsage
	}

	return ExitGeneral
}
